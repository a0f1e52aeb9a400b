package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ID identifies a menu item or an order. Identifiers are assigned sequentially
// starting at 1 by the collection that owns the entity, so the zero value is invalid.
type ID int64

// NewID converts a raw integer into an ID, rejecting zero and negative values.
//
// Example:
//
//	id, err := kernel.NewID(7)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the identifier is positive.
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	return nil
}

// Next returns the identifier that follows id in a sequence.
func (id ID) Next() ID {
	return id + 1
}

// Int64 returns the raw value for transport layers.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

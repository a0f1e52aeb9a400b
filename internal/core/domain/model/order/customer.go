package order

import (
	"errors"
	"strings"

	"fooddelivery/internal/pkg/errs"
)

// ErrCustomerIsIncomplete is the cause attached to missing customer fields.
var ErrCustomerIsIncomplete = errors.New("customer information is required")

// Customer is the recipient of an order. It has no identity of its own.
type Customer struct {
	name    string
	address string
}

// NewCustomer requires both a name and an address; blank strings count as missing.
func NewCustomer(name, address string) (Customer, error) {
	var err error
	if strings.TrimSpace(name) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("customer.name", ErrCustomerIsIncomplete))
	}
	if strings.TrimSpace(address) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("customer.address", ErrCustomerIsIncomplete))
	}
	if err != nil {
		return Customer{}, err
	}

	return Customer{name: name, address: address}, nil
}

func (c Customer) Name() string {
	return c.name
}

func (c Customer) Address() string {
	return c.address
}

// Validate fails for the zero value.
func (c Customer) Validate() error {
	if c.name == "" || c.address == "" {
		return errs.NewValueIsRequiredErrorWithCause("customer", ErrCustomerIsIncomplete)
	}
	return nil
}

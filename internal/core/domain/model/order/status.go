package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"
)

// ErrStatusIsTerminal is returned when advancing an order that was already delivered.
var ErrStatusIsTerminal = errors.New("status is terminal")

// Status represents the delivery stage of an order.
//
// State transitions:
//
//	Preparing ──> OutForDelivery ──> Delivered
//
// Transitions only move forward, one step at a time.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Preparing is the initial status when an order is placed.
	Preparing

	// OutForDelivery indicates the kitchen is done and the order is on its way.
	OutForDelivery

	// Delivered is the final state. No further transitions are allowed.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// Validate checks if the Status value is one of Preparing, OutForDelivery or Delivered.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, e.g. "Out for Delivery".
// Invalid values render as "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition exists from s.
func (s Status) IsTerminal() bool {
	return s == Delivered
}

// Advance returns the status that follows s.
//
// Valid transitions:
//   - Preparing -> OutForDelivery
//   - OutForDelivery -> Delivered
//
// Delivered returns ErrStatusIsTerminal; Unknown and out-of-range values
// return a ValueIsInvalidError.
func (s Status) Advance() (Status, error) {
	switch s {
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	case Delivered:
		return 0, ErrStatusIsTerminal
	case Unknown:
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%d is not a valid status to advance", int(s)),
	)
}

package order

import (
	"errors"
	"slices"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Factory builds an Order once the order collection has chosen its identifier.
// It runs inside the collection's critical section and must not block.
type Factory func(id kernel.ID) (*Order, error)

// Order is a customer's purchase tracked through the delivery lifecycle.
//
// Order follows these invariants:
//   - Must have a valid positive identifier
//   - Must have at least one line and a complete customer, both fixed at creation
//   - Status only moves forward and only through Advance
//
// Order is not safe for concurrent use; the collection that owns it serializes access.
type Order struct {
	id        kernel.ID
	lines     []Line
	customer  Customer
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Preparing status.
//
// Example:
//
//	lines, _ := order.NewLines([]int64{1, 3})
//	customer, _ := order.NewCustomer("Ada", "12 Analytical St")
//	o, err := order.NewOrder(1, lines, customer, time.Now())
func NewOrder(id kernel.ID, lines []Line, customer Customer, createdAt time.Time) (*Order, error) {
	return build(id, lines, customer, Preparing, createdAt)
}

// RestoreOrder reconstructs an order from recorded state, e.g. to hand out a snapshot.
// The status is taken as recorded and is not validated, so that a corrupted value
// stays visible to the lifecycle instead of being rejected here.
func RestoreOrder(id kernel.ID, lines []Line, customer Customer, status Status, createdAt time.Time) (*Order, error) {
	return build(id, lines, customer, status, createdAt)
}

// NewFactory returns a Factory that stamps the order with the clock's current time.
func NewFactory(lines []Line, customer Customer, clock kernel.Clock) Factory {
	return func(id kernel.ID) (*Order, error) {
		return NewOrder(id, lines, customer, clock.Now())
	}
}

func build(id kernel.ID, lines []Line, customer Customer, status Status, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setCustomer(customer),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// Snapshot returns an independent copy of the order's current state.
func (o *Order) Snapshot() (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return RestoreOrder(o.id, o.lines, o.customer, o.status, o.createdAt)
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Customer() Customer {
	return o.customer
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Advance moves the order one step along its lifecycle.
// It returns ErrStatusIsTerminal for delivered orders and leaves the status
// unchanged on any error.
func (o *Order) Advance() error {
	next, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", ErrLinesAreRequired)
	}
	for _, line := range lines {
		if err := line.MenuItemID().Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("items", err)
		}
	}
	o.lines = slices.Clone(lines)
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a customer's request to order menu items.
// Each id in the request is one line; repeating an id orders it again.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand([]int64{1, 1, 4}, "Ada", "12 Analytical St")
//	if err != nil {
//	    return fmt.Errorf("invalid order: %w", err)
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	lines    []order.Line
	customer order.Customer

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the customer and the line ids. Customer
// errors are reported before line errors.
func NewPlaceOrderCommand(menuItemIDs []int64, customerName, customerAddress string) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customerName, customerAddress),
		cmd.setLines(menuItemIDs),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Lines returns a copy of the requested lines.
func (c PlaceOrderCommand) Lines() []order.Line {
	return append([]order.Line(nil), c.lines...)
}

func (c PlaceOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c *PlaceOrderCommand) setCustomer(name, address string) error {
	customer, err := order.NewCustomer(name, address)
	if err != nil {
		return err
	}
	c.customer = customer
	return nil
}

func (c *PlaceOrderCommand) setLines(menuItemIDs []int64) error {
	lines, err := order.NewLines(menuItemIDs)
	if err != nil {
		return err
	}
	c.lines = lines
	return nil
}

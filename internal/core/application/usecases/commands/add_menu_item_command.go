package commands

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrAddMenuItemCommandIsNotConstructed = errors.New(
	"AddMenuItemCommand must be created via NewAddMenuItemCommand constructor",
)

// AddMenuItemCommand represents a request to add an item to the menu.
//
// Example:
//
//	cmd, err := NewAddMenuItemCommand("Pizza", 9.99, "Main Course")
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
//	item, err := handler.Handle(ctx, cmd)
type AddMenuItemCommand struct { //nolint:recvcheck //using for validation
	name     string
	price    float64
	category menu.Category

	guard guard.ConstructorGuard
}

// NewAddMenuItemCommand validates the raw request fields. The category is given
// by its display name, e.g. "Main Course".
func NewAddMenuItemCommand(name string, price float64, category string) (AddMenuItemCommand, error) {
	cmd := AddMenuItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
		cmd.setCategory(category),
	); err != nil {
		return AddMenuItemCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemCommandIsNotConstructed)
}

func (c AddMenuItemCommand) Name() string {
	return c.name
}

func (c AddMenuItemCommand) Price() float64 {
	return c.price
}

func (c AddMenuItemCommand) Category() menu.Category {
	return c.category
}

func (c *AddMenuItemCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *AddMenuItemCommand) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	c.price = price
	return nil
}

func (c *AddMenuItemCommand) setCategory(name string) error {
	category, err := menu.ParseCategory(name)
	if err != nil {
		return err
	}
	c.category = category
	return nil
}

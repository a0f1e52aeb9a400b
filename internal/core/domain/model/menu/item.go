package menu

import (
	"errors"
	"fmt"
	"math"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Factory builds an Item once the catalog has chosen its identifier.
// The catalog calls it inside its critical section, so it must not block.
type Factory func(id kernel.ID) (*Item, error)

// Item is a purchasable product on the menu. All fields are set once by NewItem.
type Item struct {
	id       kernel.ID
	name     string
	price    float64
	category Category

	isConstructed bool
}

// NewItem validates every field and returns the item. All validation failures
// are reported together.
//
// Example:
//
//	item, err := menu.NewItem(1, "Pizza", 9.99, menu.MainCourse)
//	if err != nil {
//	    return fmt.Errorf("invalid menu item: %w", err)
//	}
func NewItem(id kernel.ID, name string, price float64, category Category) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setID(id),
		item.setName(name),
		item.setPrice(price),
		item.setCategory(category),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// NewFactory returns a Factory that builds an item with the given details.
func NewFactory(name string, price float64, category Category) Factory {
	return func(id kernel.ID) (*Item, error) {
		return NewItem(id, name, price, category)
	}
}

// Validate ensures the item was created through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() float64 {
	return i.price
}

func (i *Item) Category() Category {
	return i.category
}

func (i *Item) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	i.category = category
	return nil
}

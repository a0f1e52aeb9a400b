package queries

import (
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/guard"
)

var ErrListMenuItemsQueryIsNotConstructed = errors.New(
	"ListMenuItemsQuery must be created via NewListMenuItemsQuery constructor",
)

// ListMenuItemsQuery retrieves the whole menu in the order items were added.
//
// Example:
//
//	query := NewListMenuItemsQuery()
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list menu: %w", err)
//	}
type ListMenuItemsQuery struct {
	guard guard.ConstructorGuard
}

// NewListMenuItemsQuery creates a parameterless menu query.
func NewListMenuItemsQuery() ListMenuItemsQuery {
	return ListMenuItemsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListMenuItemsQuery) Validate() error {
	return q.guard.Validate(ErrListMenuItemsQueryIsNotConstructed)
}

// ListMenuItemsQueryResponse describes one menu item.
type ListMenuItemsQueryResponse struct {
	ID       kernel.ID
	Name     string
	Price    float64
	Category menu.Category
}

// Package ports defines repository interfaces for the menu and order domains.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
)

// MenuRepository defines the storage contract for the menu catalog.
// Implementations must be safe for concurrent use.
type MenuRepository interface {
	// Add assigns the next item id, builds the item with it and stores it.
	// Returns an ErrObjectAlreadyExists error if an item with the same name is
	// already stored. A failed add consumes no id and leaves the catalog unchanged.
	Add(ctx context.Context, build menu.Factory) (*menu.Item, error)

	// List returns all items in insertion order.
	List(ctx context.Context) ([]*menu.Item, error)

	// Exists reports whether an item with the given id is in the catalog.
	Exists(ctx context.Context, id kernel.ID) (bool, error)
}

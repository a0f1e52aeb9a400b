package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for order aggregates.
// Implementations must be safe for concurrent use.
type OrderRepository interface {
	// Add assigns the next order id, builds the order with it and stores it.
	// The order becomes visible to readers and to UpdateAll only once fully built.
	Add(ctx context.Context, build order.Factory) (*order.Order, error)

	// Get returns a snapshot of the order with the given id, or an
	// ErrObjectNotFound error.
	Get(ctx context.Context, id kernel.ID) (*order.Order, error)

	// UpdateAll calls update once with every stored order while holding exclusive
	// access to the collection. update may change order status in place and
	// must not block.
	UpdateAll(ctx context.Context, update func(orders []*order.Order)) error
}

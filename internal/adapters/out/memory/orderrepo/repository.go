// Package orderrepo stores order aggregates in memory and serializes the
// lifecycle sweep against order placement and lookups.
package orderrepo

import (
	"context"
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository over process memory.
// All methods are safe for concurrent use.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order             // insertion order, ids strictly increasing
	byID   map[kernel.ID]*order.Order // id -> order
	lastID kernel.ID
}

// NewMemoryOrderRepository creates an empty order collection.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID: make(map[kernel.ID]*order.Order),
	}
}

// Add builds the order with the next id and appends it. The order is built and
// inserted under the same lock, so no reader or sweep sees it half constructed.
func (r *MemoryOrderRepository) Add(ctx context.Context, build order.Factory) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.lastID.Next()
	o, err := build(id)
	if err != nil {
		return nil, err
	}
	if err = o.Validate(); err != nil {
		return nil, err
	}

	r.lastID = id
	r.orders = append(r.orders, o)
	r.byID[id] = o

	return o.Snapshot()
}

// Get returns a snapshot of the order, or an ObjectNotFoundError.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.Int64())
	}
	return o.Snapshot()
}

// UpdateAll hands the live orders to update under the exclusive lock.
func (r *MemoryOrderRepository) UpdateAll(ctx context.Context, update func(orders []*order.Order)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	update(r.orders)
	return nil
}

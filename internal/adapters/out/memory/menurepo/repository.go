// Package menurepo stores the menu catalog in memory.
package menurepo

import (
	"context"
	"slices"
	"sync"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/pkg/errs"
)

// MemoryMenuRepository implements ports.MenuRepository over process memory.
// All methods are safe for concurrent use.
type MemoryMenuRepository struct {
	mu     sync.RWMutex
	items  []*menu.Item             // insertion order
	byID   map[kernel.ID]*menu.Item // id -> item
	byName map[string]kernel.ID     // name -> id
	lastID kernel.ID
}

// NewMemoryMenuRepository creates an empty catalog.
func NewMemoryMenuRepository() *MemoryMenuRepository {
	return &MemoryMenuRepository{
		byID:   make(map[kernel.ID]*menu.Item),
		byName: make(map[string]kernel.ID),
	}
}

// Add builds the item with the next id and stores it unless its name is taken.
func (r *MemoryMenuRepository) Add(ctx context.Context, build menu.Factory) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.lastID.Next()
	item, err := build(id)
	if err != nil {
		return nil, err
	}
	if err = item.Validate(); err != nil {
		return nil, err
	}

	if _, taken := r.byName[item.Name()]; taken {
		return nil, errs.NewObjectAlreadyExistsError("name", item.Name())
	}

	r.lastID = id
	r.items = append(r.items, item)
	r.byID[id] = item
	r.byName[item.Name()] = id

	return item, nil
}

// List returns the items in insertion order. Items are immutable, so the
// returned slice shares them but not the backing array.
func (r *MemoryMenuRepository) List(ctx context.Context) ([]*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := slices.Clone(r.items)
	if items == nil {
		items = []*menu.Item{}
	}
	return items, nil
}

// Exists reports whether an item with id is in the catalog.
func (r *MemoryMenuRepository) Exists(ctx context.Context, id kernel.ID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

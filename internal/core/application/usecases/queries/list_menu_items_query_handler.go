package queries

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// ListMenuItemsQueryHandler reads the menu catalog.
type ListMenuItemsQueryHandler struct {
	menuRepo ports.MenuRepository
}

// NewListMenuItemsQueryHandler creates a handler over the given catalog.
func NewListMenuItemsQueryHandler(menuRepo ports.MenuRepository) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{menuRepo: menuRepo}
}

// Handle returns every menu item in insertion order. An empty menu yields an
// empty, non-nil slice.
func (h ListMenuItemsQueryHandler) Handle(
	ctx context.Context,
	query ListMenuItemsQuery,
) ([]ListMenuItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	items, err := h.menuRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	response := make([]ListMenuItemsQueryResponse, 0, len(items))
	for _, item := range items {
		response = append(response, ListMenuItemsQueryResponse{
			ID:       item.ID(),
			Name:     item.Name(),
			Price:    item.Price(),
			Category: item.Category(),
		})
	}

	return response, nil
}

package queries

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
)

// GetOrderQueryHandler looks up orders by id.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler over the given order collection.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle returns the order's state as of the call, including whatever status
// the lifecycle has advanced it to. Unknown ids yield an ErrObjectNotFound error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	o, err := h.orderRepo.Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	lines := o.Lines()
	response := GetOrderQueryResponse{
		ID:              o.ID(),
		CustomerName:    o.Customer().Name(),
		CustomerAddress: o.Customer().Address(),
		Status:          o.Status(),
		CreatedAt:       o.CreatedAt(),
	}
	response.MenuItemIDs = make([]kernel.ID, len(lines))
	for i, line := range lines {
		response.MenuItemIDs[i] = line.MenuItemID()
	}

	return response, nil
}

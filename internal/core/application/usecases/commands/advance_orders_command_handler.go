package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/core/ports"
)

// AdvanceOrdersCommandHandler runs one sweep of the order lifecycle:
// Preparing orders go out for delivery, orders out for delivery are delivered,
// delivered orders stay as they are.
//
// The whole sweep runs under the order collection's exclusive lock, so an
// order being placed concurrently is either swept completely or not at all.
type AdvanceOrdersCommandHandler struct {
	orderRepo  ports.OrderRepository
	progressor services.OrderProgressor
}

// NewAdvanceOrdersCommandHandler creates a handler over the order collection.
func NewAdvanceOrdersCommandHandler(orderRepo ports.OrderRepository) AdvanceOrdersCommandHandler {
	return AdvanceOrdersCommandHandler{
		orderRepo:  orderRepo,
		progressor: services.NewOrderProgressor(),
	}
}

// Handle performs the sweep and reports what happened. Orders that could not be
// advanced are listed in the result's Failures and do not stop the sweep.
func (h *AdvanceOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceOrdersCommand) (services.Progress, error) {
	if err := cmd.Validate(); err != nil {
		return services.Progress{}, err
	}

	var progress services.Progress
	err := h.orderRepo.UpdateAll(ctx, func(orders []*order.Order) {
		progress = h.progressor.Progress(orders)
	})
	if err != nil {
		return services.Progress{}, err
	}

	return progress, nil
}

package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"
)

// PlaceOrderCommandHandler validates menu references and records new orders
// in Preparing status.
//
// References are checked against the catalog before the order collection is
// locked. Menu items are never removed or changed, so an id that exists at
// check time still exists when the order is stored.
type PlaceOrderCommandHandler struct {
	menuRepo  ports.MenuRepository
	orderRepo ports.OrderRepository
	clock     kernel.Clock
}

// NewPlaceOrderCommandHandler creates a handler. clock stamps the order's creation time.
func NewPlaceOrderCommandHandler(
	menuRepo ports.MenuRepository,
	orderRepo ports.OrderRepository,
	clock kernel.Clock,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		menuRepo:  menuRepo,
		orderRepo: orderRepo,
		clock:     clock,
	}
}

// Handle stores the order and returns its id. It returns an ErrReferenceIsInvalid
// error naming every unknown menu item id, in which case no order is created.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	lines := cmd.Lines()
	if err := h.checkReferences(ctx, lines); err != nil {
		return 0, err
	}

	placed, err := h.orderRepo.Add(ctx, order.NewFactory(lines, cmd.Customer(), h.clock))
	if err != nil {
		return 0, err
	}

	return placed.ID(), nil
}

func (h *PlaceOrderCommandHandler) checkReferences(ctx context.Context, lines []order.Line) error {
	checked := make(map[kernel.ID]bool, len(lines))
	var missing []any

	for _, line := range lines {
		id := line.MenuItemID()
		if checked[id] {
			continue
		}
		checked[id] = true

		exists, err := h.menuRepo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			missing = append(missing, id.Int64())
		}
	}

	if len(missing) > 0 {
		return errs.NewReferenceIsInvalidError("items", missing...)
	}
	return nil
}

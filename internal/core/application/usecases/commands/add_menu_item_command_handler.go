package commands

import (
	"context"

	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/ports"
)

// AddMenuItemCommandHandler adds items to the menu catalog.
// The catalog assigns the id and rejects duplicate names.
type AddMenuItemCommandHandler struct {
	menuRepo ports.MenuRepository
}

// NewAddMenuItemCommandHandler creates a handler backed by the given catalog.
func NewAddMenuItemCommandHandler(menuRepo ports.MenuRepository) AddMenuItemCommandHandler {
	return AddMenuItemCommandHandler{menuRepo: menuRepo}
}

// Handle stores the item and returns it with its assigned id.
func (h *AddMenuItemCommandHandler) Handle(ctx context.Context, cmd AddMenuItemCommand) (*menu.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return h.menuRepo.Add(ctx, menu.NewFactory(cmd.Name(), cmd.Price(), cmd.Category()))
}

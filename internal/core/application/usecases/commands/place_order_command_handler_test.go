package commands_test

import (
	"errors"
	"testing"
	"time"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedClock = kernel.ClockFunc(func() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
})

func TestPlaceOrderCommandHandler_Handle_FactoryBuildsPreparingOrder(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand([]int64{1, 2, 1}, "A", "B")

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Exists", ctx, kernel.ID(1)).Return(true, nil).Once()
	menuRepo.On("Exists", ctx, kernel.ID(2)).Return(true, nil).Once()

	var built *order.Order
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("order.Factory")).
		Run(func(args mock.Arguments) {
			o, err := args.Get(1).(order.Factory)(7)
			require.NoError(t, err)
			built = o
		}).
		Return(nil, errors.New("storage full")).Once()

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "storage full")
	require.NotNil(t, built)
	assert.Equal(t, order.Preparing, built.Status())
	assert.Equal(t, fixedClock.Now(), built.CreatedAt())
	assert.Len(t, built.Lines(), 3)
	menuRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_ReturnsAssignedID(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand([]int64{1}, "A", "B")
	lines, _ := order.NewLines([]int64{1})
	customer, _ := order.NewCustomer("A", "B")
	placed, _ := order.NewOrder(12, lines, customer, fixedClock.Now())

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Exists", ctx, kernel.ID(1)).Return(true, nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("Add", ctx, mock.AnythingOfType("order.Factory")).Return(placed, nil).Once()

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo, fixedClock)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.ID(12), id)
	orderRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_UnknownMenuItem(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand([]int64{1, 5, 6, 5}, "A", "B")

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Exists", ctx, kernel.ID(1)).Return(true, nil).Once()
	menuRepo.On("Exists", ctx, kernel.ID(5)).Return(false, nil).Once()
	menuRepo.On("Exists", ctx, kernel.ID(6)).Return(false, nil).Once()
	orderRepo := new(MockOrderRepository)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo, fixedClock)
	id, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrReferenceIsInvalid)
	assert.Contains(t, err.Error(), "[5, 6]")
	assert.Zero(t, id)
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	menuRepo.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_CatalogError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand([]int64{1}, "A", "B")

	menuRepo := new(MockMenuRepository)
	menuRepo.On("Exists", ctx, kernel.ID(1)).Return(false, errors.New("catalog unavailable")).Once()
	orderRepo := new(MockOrderRepository)

	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo, fixedClock)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "catalog unavailable")
	orderRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	menuRepo := new(MockMenuRepository)
	orderRepo := new(MockOrderRepository)
	h := commands.NewPlaceOrderCommandHandler(menuRepo, orderRepo, fixedClock)

	_, err := h.Handle(t.Context(), commands.PlaceOrderCommand{})

	require.ErrorIs(t, err, commands.ErrPlaceOrderCommandIsNotConstructed)
	menuRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
}

package queries_test

import (
	"context"
	"testing"
	"time"

	"fooddelivery/internal/adapters/out/memory/menurepo"
	"fooddelivery/internal/adapters/out/memory/orderrepo"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/menu"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

func TestListMenuItemsQueryHandler_Handle_EmptyMenu(t *testing.T) {
	h := queries.NewListMenuItemsQueryHandler(menurepo.NewMemoryMenuRepository())

	items, err := h.Handle(t.Context(), queries.NewListMenuItemsQuery())

	require.NoError(t, err)
	require.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListMenuItemsQueryHandler_Handle_InsertionOrder(t *testing.T) {
	ctx := t.Context()
	repo := menurepo.NewMemoryMenuRepository()
	_, err := repo.Add(ctx, menu.NewFactory("Pizza", 9.99, menu.MainCourse))
	require.NoError(t, err)
	_, err = repo.Add(ctx, menu.NewFactory("Cola", 1.5, menu.Beverage))
	require.NoError(t, err)

	h := queries.NewListMenuItemsQueryHandler(repo)
	items, err := h.Handle(ctx, queries.NewListMenuItemsQuery())

	require.NoError(t, err)
	assert.Equal(t, []queries.ListMenuItemsQueryResponse{
		{ID: 1, Name: "Pizza", Price: 9.99, Category: menu.MainCourse},
		{ID: 2, Name: "Cola", Price: 1.5, Category: menu.Beverage},
	}, items)
}

func TestListMenuItemsQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewListMenuItemsQueryHandler(menurepo.NewMemoryMenuRepository())

	_, err := h.Handle(t.Context(), queries.ListMenuItemsQuery{})

	require.ErrorIs(t, err, queries.ErrListMenuItemsQueryIsNotConstructed)
}

func TestListMenuItemsQueryHandler_Handle_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	h := queries.NewListMenuItemsQueryHandler(menurepo.NewMemoryMenuRepository())

	_, err := h.Handle(ctx, queries.NewListMenuItemsQuery())

	require.ErrorIs(t, err, context.Canceled)
}

func placeOrder(t *testing.T, repo *orderrepo.MemoryOrderRepository, itemIDs ...int64) kernel.ID {
	t.Helper()
	lines, err := order.NewLines(itemIDs)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ada", "12 Analytical St")
	require.NoError(t, err)
	clock := kernel.ClockFunc(func() time.Time { return placedAt })

	o, err := repo.Add(t.Context(), order.NewFactory(lines, customer, clock))
	require.NoError(t, err)
	return o.ID()
}

func TestNewGetOrderQuery_InvalidID(t *testing.T) {
	for _, id := range []int64{0, -3} {
		_, err := queries.NewGetOrderQuery(id)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestGetOrderQueryHandler_Handle_Found(t *testing.T) {
	repo := orderrepo.NewMemoryOrderRepository()
	id := placeOrder(t, repo, 2, 1, 2)

	query, err := queries.NewGetOrderQuery(id.Int64())
	require.NoError(t, err)
	got, err := queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), query)

	require.NoError(t, err)
	assert.Equal(t, queries.GetOrderQueryResponse{
		ID:              id,
		MenuItemIDs:     []kernel.ID{2, 1, 2},
		CustomerName:    "Ada",
		CustomerAddress: "12 Analytical St",
		Status:          order.Preparing,
		CreatedAt:       placedAt,
	}, got)
}

func TestGetOrderQueryHandler_Handle_ReflectsLifecycle(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewMemoryOrderRepository()
	id := placeOrder(t, repo, 1)
	require.NoError(t, repo.UpdateAll(ctx, func(orders []*order.Order) {
		for _, o := range orders {
			require.NoError(t, o.Advance())
		}
	}))

	query, _ := queries.NewGetOrderQuery(id.Int64())
	got, err := queries.NewGetOrderQueryHandler(repo).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, order.OutForDelivery, got.Status)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	repo := orderrepo.NewMemoryOrderRepository()
	placeOrder(t, repo, 1)

	query, _ := queries.NewGetOrderQuery(42)
	_, err := queries.NewGetOrderQueryHandler(repo).Handle(t.Context(), query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_NotConstructed(t *testing.T) {
	h := queries.NewGetOrderQueryHandler(orderrepo.NewMemoryOrderRepository())

	_, err := h.Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

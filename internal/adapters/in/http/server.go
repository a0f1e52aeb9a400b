package http

import (
	"errors"
	"net/http"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/generated/servers"
	"fooddelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidMenuItem    = "Invalid menu item details"
	msgMenuItemExists     = "Menu item already exists"
	msgCustomerRequired   = "Customer information is required"
	msgOrderItemsRequired = "Order items are required"
	msgUnknownMenuItems   = "One or more items do not exist in the menu"
	msgOrderNotFound      = "Order not found"
	msgOrderPlaced        = "Order placed successfully"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	addMenuItemHandler commands.AddMenuItemCommandHandler
	placeOrderHandler  commands.PlaceOrderCommandHandler

	// Query handlers
	listMenuItemsHandler queries.ListMenuItemsQueryHandler
	getOrderHandler      queries.GetOrderQueryHandler
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addMenuItemHandler commands.AddMenuItemCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	listMenuItemsHandler queries.ListMenuItemsQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		addMenuItemHandler:   addMenuItemHandler,
		placeOrderHandler:    placeOrderHandler,
		listMenuItemsHandler: listMenuItemsHandler,
		getOrderHandler:      getOrderHandler,
	}
}

// ListMenu handles GET /menu - retrieves every menu item.
func (s *Server) ListMenu(ctx echo.Context) error {
	items, err := s.listMenuItemsHandler.Handle(ctx.Request().Context(), queries.NewListMenuItemsQuery())
	if err != nil {
		return err
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		response[i] = servers.MenuItem{
			Id:       item.ID.Int64(),
			Name:     item.Name,
			Price:    item.Price,
			Category: servers.MenuItemCategory(item.Category.String()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddMenuItem handles POST /menu - adds an item to the catalog.
func (s *Server) AddMenuItem(ctx echo.Context) error {
	var body servers.AddMenuItemJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	cmd, err := commands.NewAddMenuItemCommand(body.Name, body.Price, body.Category)
	if err != nil {
		return badRequest(ctx, msgInvalidMenuItem)
	}

	item, err := s.addMenuItemHandler.Handle(ctx.Request().Context(), cmd)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return badRequest(ctx, msgMenuItemExists)
	case errs.IsValidation(err):
		return badRequest(ctx, msgInvalidMenuItem)
	default:
		return err
	}

	return ctx.JSON(http.StatusCreated, servers.MenuItem{
		Id:       item.ID().Int64(),
		Name:     item.Name(),
		Price:    item.Price(),
		Category: servers.MenuItemCategory(item.Category().String()),
	})
}

// PlaceOrder handles POST /orders - places an order for existing menu items.
func (s *Server) PlaceOrder(ctx echo.Context) error {
	var body servers.PlaceOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	menuItemIDs := make([]int64, len(body.Items))
	for i, line := range body.Items {
		menuItemIDs[i] = line.Id
	}

	cmd, err := commands.NewPlaceOrderCommand(menuItemIDs, body.Customer.Name, body.Customer.Address)
	if err != nil {
		return placeOrderError(ctx, err)
	}

	orderID, err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return placeOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderPlaced{
		Message: msgOrderPlaced,
		OrderId: orderID.Int64(),
	})
}

// GetOrder handles GET /orders/{id} - retrieves an order with its current status.
func (s *Server) GetOrder(ctx echo.Context, id int64) error {
	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		// ids are positive, so no order can match
		return notFound(ctx, msgOrderNotFound)
	}

	o, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return notFound(ctx, msgOrderNotFound)
	}
	if err != nil {
		return err
	}

	items := make([]servers.OrderLine, len(o.MenuItemIDs))
	for i, menuItemID := range o.MenuItemIDs {
		items[i] = servers.OrderLine{Id: menuItemID.Int64()}
	}

	return ctx.JSON(http.StatusOK, servers.Order{
		Id:    o.ID.Int64(),
		Items: items,
		Customer: servers.Customer{
			Name:    o.CustomerName,
			Address: o.CustomerAddress,
		},
		Status:    servers.OrderStatus(o.Status.String()),
		Timestamp: o.CreatedAt,
	})
}

// placeOrderError reports the first problem in the order the fields are checked:
// customer, then items, then menu references.
func placeOrderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrCustomerIsIncomplete):
		return badRequest(ctx, msgCustomerRequired)
	case errors.Is(err, order.ErrLinesAreRequired):
		return badRequest(ctx, msgOrderItemsRequired)
	case errors.Is(err, errs.ErrReferenceIsInvalid), errs.IsValidation(err):
		return badRequest(ctx, msgUnknownMenuItems)
	default:
		return err
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Error: message})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, servers.Error{Error: message})
}

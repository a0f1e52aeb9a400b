package cmd

import (
	"log/slog"

	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/memory/menurepo"
	"fooddelivery/internal/adapters/out/memory/orderrepo"
	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/application/usecases/queries"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot owns the process-wide collections and builds everything that uses them.
type CompositionRoot struct {
	configs   Config
	logger    *slog.Logger
	clock     kernel.Clock
	menuRepo  *menurepo.MemoryMenuRepository
	orderRepo *orderrepo.MemoryOrderRepository
}

func NewCompositionRoot(configs Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		configs:   configs,
		logger:    logger,
		clock:     kernel.SystemClock{},
		menuRepo:  menurepo.NewMemoryMenuRepository(),
		orderRepo: orderrepo.NewMemoryOrderRepository(),
	}
}

func (c *CompositionRoot) CreateAddMenuItemCommandHandler() commands.AddMenuItemCommandHandler {
	return commands.NewAddMenuItemCommandHandler(c.menuRepo)
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.menuRepo, c.orderRepo, c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrdersCommandHandler() commands.AdvanceOrdersCommandHandler {
	return commands.NewAdvanceOrdersCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.menuRepo)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateHTTPRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		c.CreateAddMenuItemCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateListMenuItemsQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
	return httpin.NewRouter(server, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	advanceOrdersHandler := c.CreateAdvanceOrdersCommandHandler()
	return jobs.NewJobManager(&advanceOrdersHandler, c.configs.OrderTickInterval, c.logger)
}

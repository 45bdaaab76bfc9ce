package cmd

import (
	"log/slog"
	"time"

	httpin "foodorders/internal/adapters/in/http"
	"foodorders/internal/adapters/out/memory"
	"foodorders/internal/core/application/usecases/commands"
	"foodorders/internal/core/application/usecases/queries"
	"foodorders/internal/jobs"
	"foodorders/internal/platform/observability"

	"github.com/labstack/echo/v4"
)

const instrumentationName = "foodorders"

type CompositionRoot struct {
	config      Config
	store       *memory.Store
	uowFactory  *memory.UnitOfWorkFactory
	instruments *observability.Instruments
	now         func() time.Time
}

// NewCompositionRoot owns the single in-memory store shared by the HTTP
// handlers and the scheduler. A nil instruments value disables telemetry and
// logging.
func NewCompositionRoot(config Config, instruments *observability.Instruments) CompositionRoot {
	if instruments == nil {
		instruments = &observability.Instruments{Logger: observability.DiscardLogger()}
	}
	store := memory.NewStore()
	return CompositionRoot{
		config:      config,
		store:       store,
		uowFactory:  memory.NewUnitOfWorkFactory(store),
		instruments: instruments,
		now:         time.Now,
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.instruments.Logger
}

func (c *CompositionRoot) CreateUpsertMenuItemCommandHandler() commands.UpsertMenuItemCommandHandler {
	return commands.NewUpsertMenuItemCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.createUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusesCommandHandler() commands.AdvanceOrderStatusesCommandHandler {
	return commands.NewAdvanceOrderStatusesCommandHandler(c.createUoWFactory())
}

func (c *CompositionRoot) CreateListMenuItemsQueryHandler() queries.ListMenuItemsQueryHandler {
	return queries.NewListMenuItemsQueryHandler(c.store.MenuRepository())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.store.OrderRepository())
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateUpsertMenuItemCommandHandler(),
		c.CreatePlaceOrderCommandHandler(),
		c.CreateListMenuItemsQueryHandler(),
		c.CreateGetOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpin.NewRouter(c.CreateHTTPServer(), httpin.RouterOptions{
		Logger: c.instruments.Logger,
		Tracer: c.instruments.Tracer(instrumentationName + "/http"),
		Meter:  c.instruments.Meter(instrumentationName + "/http"),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateAdvanceOrderStatusesCommandHandler(),
		c.config.OrderStatusSchedule,
		c.instruments.Logger,
		jobs.WithTracer(c.instruments.Tracer(instrumentationName+"/jobs")),
		jobs.WithMeter(c.instruments.Meter(instrumentationName+"/jobs")),
	)
}

func (c *CompositionRoot) createUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"log/slog"

	httpadapter "salesdesk/internal/adapters/in/http"
	"salesdesk/internal/adapters/out/broadcast"
	"salesdesk/internal/adapters/out/pgnotify"
	"salesdesk/internal/adapters/out/postgres"
	"salesdesk/internal/core/application/notifications"
	"salesdesk/internal/core/application/usecases/commands"
	"salesdesk/internal/core/application/usecases/queries"
	"salesdesk/internal/core/domain/services"
	"salesdesk/internal/core/ports"
	"salesdesk/internal/jobs"
	"salesdesk/internal/pkg/clock"
	"salesdesk/internal/pkg/fanout"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	readModel  *postgres.GormReadModel
	hub        *fanout.Hub
	publisher  notifications.Publisher
	relay      *pgnotify.Relay
	policy     services.VisibilityPolicy
	clock      clock.Clock
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters around one database handle. With a
// NOTIFY channel configured, events travel through Postgres and every
// instance relays them to its own listeners; otherwise they go straight to
// the local hub.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		readModel:  postgres.NewGormReadModel(gormDB),
		hub:        fanout.NewHub(cfg.ListenerQueueSize, logger),
		policy:     services.NewVisibilityPolicy(),
		clock:      clock.NewSystem(),
		logger:     logger,
	}

	if cfg.NotifyChannel != "" {
		c.publisher = pgnotify.NewPublisher(gormDB, cfg.NotifyChannel, logger)
		loader := notifications.NewLoader(c.readModel, c.clock)
		c.relay = pgnotify.NewRelay(cfg.DSN(), cfg.NotifyChannel, loader, c.hub, logger)
	} else {
		c.publisher = broadcast.NewPublisher(c.hub, logger)
	}

	return c
}

// Hub is the listener registry of this process.
func (c *CompositionRoot) Hub() *fanout.Hub {
	return c.hub
}

// Relay is the cross-instance notification relay, or nil when notifications
// stay in-process.
func (c *CompositionRoot) Relay() *pgnotify.Relay {
	return c.relay
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uowFactoryFunc(), c.publisher, c.clock)
}

func (c *CompositionRoot) CreateUpdateConfirmationCommandHandler() commands.UpdateConfirmationCommandHandler {
	return commands.NewUpdateConfirmationCommandHandler(c.uowFactoryFunc(), c.publisher, c.policy, c.clock)
}

func (c *CompositionRoot) CreateUpdateFulfillmentCommandHandler() commands.UpdateFulfillmentCommandHandler {
	return commands.NewUpdateFulfillmentCommandHandler(c.uowFactoryFunc(), c.publisher, c.policy, c.clock)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactoryFunc(), c.policy)
}

func (c *CompositionRoot) CreateNormalizeFulfillmentCommandHandler() commands.NormalizeFulfillmentCommandHandler {
	return commands.NewNormalizeFulfillmentCommandHandler(c.orderUoWFactoryFunc(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.readModel, c.policy)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.readModel, c.policy, c.clock)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		UpdateConfirmation: c.CreateUpdateConfirmationCommandHandler(),
		UpdateFulfillment:  c.CreateUpdateFulfillmentCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
	}, c.hub, c.clock)
}

func (c *CompositionRoot) CreateRouterConfig(server *httpadapter.Server) (httpadapter.RouterConfig, error) {
	doc, err := httpadapter.LoadOpenAPI()
	if err != nil {
		return httpadapter.RouterConfig{}, err
	}

	return httpadapter.RouterConfig{
		Server:         server,
		Users:          c.readModel.UserRepository(),
		Doc:            doc,
		AllowedOrigins: c.cfg.AllowedOrigins,
		Logger:         c.logger,
	}, nil
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.hub, c.cfg.HeartbeatSchedule, c.logger)
}

// Users gives the seed command direct access to the user directory.
func (c *CompositionRoot) Users() ports.UserRepository {
	return c.readModel.UserRepository()
}

func (c *CompositionRoot) uowFactoryFunc() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactoryFunc() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

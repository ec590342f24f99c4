package cmd

import (
	"log/slog"

	httpadapter "kitchenpos/internal/adapters/in/http"
	"kitchenpos/internal/adapters/out/postgres"
	"kitchenpos/internal/adapters/out/rabbitmq"
	"kitchenpos/internal/core/application/usecases/commands"
	"kitchenpos/internal/core/application/usecases/queries"
	"kitchenpos/internal/core/ports"
	"kitchenpos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config         Config
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	deliveryClient ports.DeliveryClient
	eventPublisher ports.EventPublisher
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, broker *rabbitmq.Client, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:         config,
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		deliveryClient: rabbitmq.NewDeliveryClient(broker, config.DeliveryExchange, config.DeliveryRoutingKey),
		eventPublisher: rabbitmq.NewEventPublisher(broker, config.OrderEventsExchange),
		logger:         logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderTableUoWFactory() commands.OrderTableUoWFactory {
	return FuncOrderTableUoWFactory(func() commands.OrderTableUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	return commands.NewAcceptOrderCommandHandler(c.orderUoWFactory(), c.deliveryClient)
}

func (c *CompositionRoot) CreateServeOrderCommandHandler() commands.ServeOrderCommandHandler {
	return commands.NewServeOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateStartDeliveryCommandHandler() commands.StartDeliveryCommandHandler {
	return commands.NewStartDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	return commands.NewCompleteDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderTableCommandHandler() commands.CreateOrderTableCommandHandler {
	return commands.NewCreateOrderTableCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateSitOrderTableCommandHandler() commands.SitOrderTableCommandHandler {
	return commands.NewSitOrderTableCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateClearOrderTableCommandHandler() commands.ClearOrderTableCommandHandler {
	return commands.NewClearOrderTableCommandHandler(c.uoWFactory())
}

func (c *CompositionRoot) CreateChangeNumberOfGuestsCommandHandler() commands.ChangeNumberOfGuestsCommandHandler {
	return commands.NewChangeNumberOfGuestsCommandHandler(c.orderTableUoWFactory())
}

func (c *CompositionRoot) CreateSyncMenuCommandHandler() commands.SyncMenuCommandHandler {
	return commands.NewSyncMenuCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreatePublishOutboxEventsCommandHandler() commands.PublishOutboxEventsCommandHandler {
	return commands.NewPublishOutboxEventsCommandHandler(c.outboxUoWFactory(), c.eventPublisher)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllOrderTablesQueryHandler() queries.GetAllOrderTablesQueryHandler {
	return queries.NewGetAllOrderTablesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:          c.CreateCreateOrderCommandHandler(),
		AcceptOrder:          c.CreateAcceptOrderCommandHandler(),
		ServeOrder:           c.CreateServeOrderCommandHandler(),
		StartDelivery:        c.CreateStartDeliveryCommandHandler(),
		CompleteDelivery:     c.CreateCompleteDeliveryCommandHandler(),
		CompleteOrder:        c.CreateCompleteOrderCommandHandler(),
		GetAllOrders:         c.CreateGetAllOrdersQueryHandler(),
		CreateOrderTable:     c.CreateCreateOrderTableCommandHandler(),
		SitOrderTable:        c.CreateSitOrderTableCommandHandler(),
		ClearOrderTable:      c.CreateClearOrderTableCommandHandler(),
		ChangeNumberOfGuests: c.CreateChangeNumberOfGuestsCommandHandler(),
		GetAllOrderTables:    c.CreateGetAllOrderTablesQueryHandler(),
		SyncMenu:             c.CreateSyncMenuCommandHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePublishOutboxEventsCommandHandler(),
		c.config.OutboxSchedule,
		c.config.OutboxBatchSize,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncOrderTableUoWFactory func() commands.OrderTableUoW

func (f FuncOrderTableUoWFactory) Create() commands.OrderTableUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"log/slog"
	"time"

	httpadapter "fnbpos/internal/adapters/in/http"
	"fnbpos/internal/adapters/out/postgres"
	"fnbpos/internal/adapters/out/postgres/orderrepo"
	"fnbpos/internal/core/application/usecases/commands"
	"fnbpos/internal/core/application/usecases/queries"
	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/ports"
	"fnbpos/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	fnbConfig  fnb.Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
	now        commands.Clock
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (CompositionRoot, error) {
	fnbConfig, err := configs.FnBConfig()
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		configs:    configs,
		fnbConfig:  fnbConfig,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		now:        time.Now,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateExecuteOrderActionCommandHandler() commands.ExecuteOrderActionCommandHandler {
	return commands.NewExecuteOrderActionCommandHandler(c.orderUoWFactory(), c.now)
}

func (c *CompositionRoot) CreateAddLineItemCommandHandler() commands.AddLineItemCommandHandler {
	return commands.NewAddLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeLineItemQuantityCommandHandler() commands.ChangeLineItemQuantityCommandHandler {
	return commands.NewChangeLineItemQuantityCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveLineItemCommandHandler() commands.RemoveLineItemCommandHandler {
	return commands.NewRemoveLineItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderOverviewQueryHandler() queries.GetOrderOverviewQueryHandler {
	return queries.NewGetOrderOverviewQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.fnbConfig)
}

func (c *CompositionRoot) CreatePreviewOrderQueryHandler() queries.PreviewOrderQueryHandler {
	return queries.NewPreviewOrderQueryHandler(c.fnbConfig)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDailyRevenueQueryHandler() queries.GetDailyRevenueQueryHandler {
	return queries.NewGetDailyRevenueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCapabilityProbe() ports.CapabilityProbe {
	return postgres.NewGormCapabilityProbe(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateOrder:    c.CreateCreateOrderCommandHandler(),
		ExecuteAction:  c.CreateExecuteOrderActionCommandHandler(),
		AddLineItem:    c.CreateAddLineItemCommandHandler(),
		ChangeQuantity: c.CreateChangeLineItemQuantityCommandHandler(),
		RemoveLineItem: c.CreateRemoveLineItemCommandHandler(),
		Overview:       c.CreateGetOrderOverviewQueryHandler(),
		Preview:        c.CreatePreviewOrderQueryHandler(),
		OpenOrders:     c.CreateGetOpenOrdersQueryHandler(),
		DailyRevenue:   c.CreateGetDailyRevenueQueryHandler(),
	}, c.CreateCapabilityProbe(), c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetDailyRevenueQueryHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		jobs.Schedules{
			DailyRevenue: c.configs.RevenueReportSchedule,
			OpenOrders:   c.configs.OpenOrdersSchedule,
		},
		c.now,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

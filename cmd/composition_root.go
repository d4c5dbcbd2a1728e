package cmd

import (
	"log/slog"

	"sellerhub/internal/adapters/out/postgres"
	"sellerhub/internal/adapters/out/postgres/orderrepo"
	"sellerhub/internal/core/application/usecases/commands"
	"sellerhub/internal/core/application/usecases/queries"
	"sellerhub/internal/core/ports"
	"sellerhub/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// orderRepository returns a repository outside any transaction, for read-only
// consumers such as queries and jobs.
func (c *CompositionRoot) orderRepository() ports.OrderRepository {
	return c.uowFactory.Create().OrderRepository()
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCommandHandler() commands.AssignDeliveryCommandHandler {
	return commands.NewAssignDeliveryCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetItemPackedCommandHandler() commands.SetItemPackedCommandHandler {
	return commands.NewSetItemPackedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetPaymentStatusCommandHandler() commands.SetPaymentStatusCommandHandler {
	return commands.NewSetPaymentStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderCommandHandler() commands.RemoveOrderCommandHandler {
	return commands.NewRemoveOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateWalletSummaryQueryHandler() queries.WalletSummaryQueryHandler {
	return queries.NewWalletSummaryQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateCustomerStatsQueryHandler() queries.CustomerStatsQueryHandler {
	return queries.NewCustomerStatsQueryHandler(c.orderRepository())
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.orderRepository(), c.CreateWalletSummaryQueryHandler(), logger)
}

// AutoMigrate creates or updates the order tables.
func (c *CompositionRoot) AutoMigrate() error {
	return c.gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TimelineEventDTO{},
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

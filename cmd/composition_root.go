package cmd

import (
	"orders/internal/adapters/out/postgres"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateCancelStaleOrdersCommandHandler() commands.CancelStaleOrdersCommandHandler {
	return commands.NewCancelStaleOrdersCommandHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.uowFactory)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.uowFactory)
}

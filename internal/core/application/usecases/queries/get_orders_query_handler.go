package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrdersQueryHandler lists orders with the query's filter and limit.
// Absence is not an error: an empty store yields an empty slice.
type GetOrdersQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrdersQueryHandler creates a handler for order listing.
func NewGetOrdersQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the matching orders in creation order.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.OrderRepository().GetAll(ctx, query.Cancelled(), query.Limit())
}

package queries

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// GetOrderQueryHandler fetches one order by identifier.
type GetOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderQueryHandler {
	return GetOrderQueryHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the order with its items, or a not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
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

	return uow.OrderRepository().Get(ctx, query.OrderID())
}

package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// CancelOrderCommandHandler moves an order to "cancelled".
type CancelOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation and returns the cancelled order.
// Returns a not-found error if the order does not exist.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	aggregate.Cancel()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

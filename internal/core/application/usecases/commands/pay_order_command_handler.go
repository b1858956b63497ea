package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// PayOrderCommandHandler moves an order to "progress" after payment.
type PayOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewPayOrderCommandHandler creates a handler for order payment.
func NewPayOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment and returns the order in "progress" status.
// Returns a not-found error if the order does not exist.
func (h *PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
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

	aggregate.Pay()

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

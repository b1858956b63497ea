package commands

import (
	"context"

	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// UpdateOrderCommandHandler replaces the line items of an existing order.
// Fetches the order first so a missing order surfaces as a not-found error
// before any write happens.
type UpdateOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewUpdateOrderCommandHandler creates a handler for order item updates.
func NewUpdateOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command and returns the updated order.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) (*order.Order, error) {
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

	if err = aggregate.ChangeItems(cmd.Items()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"context"

	"orders/internal/core/ports"
)

// DeleteOrderCommandHandler removes an order from storage.
type DeleteOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle fetches the order to confirm it exists, then deletes it together
// with its items. Returns a not-found error if the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	if _, err := orderRepo.Get(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := orderRepo.Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

package commands

import (
	"context"
	"time"

	"orders/internal/core/ports"
)

// CancelStaleOrdersCommandHandler cancels abandoned orders in bulk.
// All cancellations of one run happen in a single transaction.
type CancelStaleOrdersCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewCancelStaleOrdersCommandHandler creates a handler for the stale-order sweep.
func NewCancelStaleOrdersCommandHandler(uowFactory ports.UnitOfWorkFactory) CancelStaleOrdersCommandHandler {
	return CancelStaleOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every order still in "created" status older than the
// command's age threshold and returns how many orders were cancelled.
func (h *CancelStaleOrdersCommandHandler) Handle(ctx context.Context, cmd CancelStaleOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	stale, err := orderRepo.GetAllInCreatedStatusBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		aggregate.Cancel()
		if err = orderRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}

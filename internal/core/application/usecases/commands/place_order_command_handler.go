package commands

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for placing orders.
// Generates the order identifier and creation timestamp server-side and
// persists the new order in "created" status.
type PlaceOrderCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
func NewPlaceOrderCommandHandler(uowFactory ports.UnitOfWorkFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the placed order.
// Uses a transaction to ensure the order is fully persisted or rolled back.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := order.NewOrder(kernel.NewUUID(), time.Now().UTC(), cmd.Items())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to remove an order and its items
// from storage entirely.
type DeleteOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete the given order.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return DeleteOrderCommand{}, err
	}

	return DeleteOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

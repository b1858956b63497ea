package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand represents a request to mark an order as paid, which moves
// it to "progress". No payment gateway is involved; only the status flag is
// toggled. Like cancellation, the transition is unconditional.
type PayOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPayOrderCommand creates a command to pay the given order.
func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PayOrderCommand{}, err
	}

	return PayOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c PayOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

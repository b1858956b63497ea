package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to replace the line items of an
// existing order. The order's status is not affected.
type UpdateOrderCommand struct {
	orderID kernel.UUID
	items   []order.Item

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's items.
// The order ID must be valid and the item list non-empty.
func NewUpdateOrderCommand(orderID kernel.UUID, items []order.Item) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement line items.
func (c UpdateOrderCommand) Items() []order.Item {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}

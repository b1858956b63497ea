// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations: each command is a
// guarded value object and its handler owns one unit of work per call,
// committing on success and rolling back on every other exit path.
package commands

import (
	"errors"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a request to place a new order with the given
// line items.
//
// Example:
//
//	item, _ := order.NewItem("cappuccino", order.Small, 2)
//	cmd, err := NewPlaceOrderCommand([]order.Item{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	placed, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct {
	items []order.Item

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place a new order.
// The item list must be non-empty and every item must be constructed via
// order.NewItem.
func NewPlaceOrderCommand(items []order.Item) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setItems(items); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Items returns the line items of the order to place.
func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

func (c *PlaceOrderCommand) setItems(items []order.Item) error {
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

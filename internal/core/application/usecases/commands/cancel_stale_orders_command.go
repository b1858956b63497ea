package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrCancelStaleOrdersCommandIsNotConstructed = errors.New(
	"CancelStaleOrdersCommand must be created via NewCancelStaleOrdersCommand constructor",
)

// CancelStaleOrdersCommand represents a request to cancel every order that
// has stayed in "created" status longer than the given age. Used by the
// background cleanup job to reclaim abandoned orders.
type CancelStaleOrdersCommand struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleOrdersCommand creates a command to cancel orders older than
// the given duration. The duration must be positive.
func NewCancelStaleOrdersCommand(olderThan time.Duration) (CancelStaleOrdersCommand, error) {
	if olderThan <= 0 {
		return CancelStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause("olderThan is invalid",
			fmt.Errorf("%s is not greater than 0", olderThan))
	}

	return CancelStaleOrdersCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleOrdersCommandIsNotConstructed)
}

// OlderThan returns the minimum age of orders to cancel.
func (c CancelStaleOrdersCommand) OlderThan() time.Duration {
	return c.olderThan
}

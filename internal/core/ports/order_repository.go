// Package ports defines the contracts between the application core and its
// adapters: the order repository and the unit of work.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations are bound to the transactional session supplied by the
// unit of work that created them.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll retrieves orders in creation order. A non-nil cancelled filter
	// restricts the result to cancelled (true) or non-cancelled (false)
	// orders; a non-nil limit truncates the result to the first limit
	// entries after filtering.
	GetAll(ctx context.Context, cancelled *bool, limit *int) ([]*order.Order, error)

	// GetAllInCreatedStatusBefore retrieves orders still in Created status
	// whose creation timestamp is before the cutoff. Used by the stale-order
	// cleanup job.
	GetAllInCreatedStatusBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// Update persists changes to an existing order aggregate, replacing its
	// item rows. Returns errs.ObjectNotFoundError if no such order exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order and its items.
	// Returns errs.ObjectNotFoundError if no such order exists.
	Delete(ctx context.Context, id kernel.UUID) error
}

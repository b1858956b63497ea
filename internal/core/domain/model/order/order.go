package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods. This ensures all
	// orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents one customer purchase request. It is the aggregate root
// managing the order lifecycle from placement through payment or cancellation.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Must have a non-zero creation timestamp
//   - Must contain at least one line item
//   - Identifier and creation timestamp are immutable after creation
//   - Can only be created through NewOrder or RestoreOrder
//
// Status transitions are unconditional overwrites: Cancel and Pay do not
// inspect the current status before replacing it (see Status).
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// createdAt is the server-assigned creation timestamp
	createdAt time.Time

	// status represents the current state in the order lifecycle
	status Status

	// items are the ordered line items, at least one
	items []Item

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Created status.
//
// Parameters:
//   - id: unique identifier for the order (must be a valid UUID)
//   - createdAt: server-assigned creation timestamp (must be non-zero)
//   - items: line items (must be non-empty, each constructed via NewItem)
//
// Returns a validation error if any parameter is invalid.
func NewOrder(id kernel.UUID, createdAt time.Time, items []Item) (*Order, error) {
	order := &Order{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with an arbitrary
// status. Unlike NewOrder it does not reset the status to Created.
func RestoreOrder(id kernel.UUID, createdAt time.Time, status Status, items []Item) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCreatedAt(createdAt),
		order.setStatus(status),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. It should be called when accepting orders from callers
// that could have instantiated the struct directly.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Cancel moves the order to Cancelled.
//
// The transition is unconditional: any order in any status can be cancelled,
// including orders that are already cancelled or in progress. The operation
// is therefore idempotent.
func (o *Order) Cancel() {
	o.status = Cancelled
}

// Pay moves the order to Progress, reflecting that payment was received and
// preparation has started.
//
// The transition is unconditional: the current status is overwritten without
// inspection, mirroring Cancel.
func (o *Order) Pay() {
	o.status = Progress
}

// ChangeItems replaces the order's line items. The replacement list must be
// non-empty and every item must be constructed via NewItem. The order's
// status is not affected.
func (o *Order) ChangeItems(items []Item) error {
	return o.setItems(items)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCreatedAt validates and sets the creation timestamp.
// This is a private method used only during construction.
func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

// setStatus validates and sets the order status.
// This is a private method used only during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

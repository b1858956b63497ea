package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The statuses reachable through the current API are created, progress and
// cancelled. Paid, dispatched and delivered exist in the model for upcoming
// fulfilment operations but no operation produces them yet.
//
// Transitions are deliberately unconditional: paying or cancelling an order
// overwrites its status regardless of the previous one. Guard conditions are
// a product decision that has not been made, so none are enforced here.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when an order is placed.
	Created

	// Paid is reserved for the upcoming payment confirmation flow.
	Paid

	// Progress indicates the order has been paid and is being prepared.
	Progress

	// Cancelled indicates the order was cancelled by the customer.
	Cancelled

	// Dispatched is reserved for the upcoming delivery flow.
	Dispatched

	// Delivered is reserved for the upcoming delivery flow.
	Delivered
)

// getStatusStrings returns the wire representation of every Status value,
// including Unknown, to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Created:    "created",
		Paid:       "paid",
		Progress:   "progress",
		Cancelled:  "cancelled",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns only valid Status values to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:    "created",
		Paid:       "paid",
		Progress:   "progress",
		Cancelled:  "cancelled",
		Dispatched: "dispatched",
		Delivered:  "delivered",
	}
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses a wire status name into a Status value.
// Returns an error for names that do not match a valid status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

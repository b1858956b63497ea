package queries

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders in creation order with optional filters.
//
// A nil cancelled filter returns all orders; true restricts the result to
// cancelled orders and false to non-cancelled ones. A nil limit returns
// everything; otherwise the result is truncated to the first limit entries
// after filtering.
type GetOrdersQuery struct {
	cancelled *bool
	limit     *int

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a list query. A non-nil limit must not be
// negative; a limit of zero yields an empty result.
func NewGetOrdersQuery(cancelled *bool, limit *int) (GetOrdersQuery, error) {
	if limit != nil && *limit < 0 {
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("limit is invalid",
			fmt.Errorf("%d is negative", *limit))
	}

	return GetOrdersQuery{
		cancelled: cancelled,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Cancelled returns the optional cancellation filter.
func (q GetOrdersQuery) Cancelled() *bool {
	return q.cancelled
}

// Limit returns the optional result size limit.
func (q GetOrdersQuery) Limit() *int {
	return q.limit
}

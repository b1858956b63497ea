package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request or job run,
// ensuring isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Handlers open it
// with Begin, perform repository operations through it, and must call Commit
// for changes to persist; every exit path without a commit rolls back.
// One unit of work is active per request; nesting is not supported.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	// Calling Begin on an already started unit of work is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction started by Begin.
	OrderRepository() OrderRepository
}

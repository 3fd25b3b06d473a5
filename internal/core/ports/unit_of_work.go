package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Changes staged through its repositories become visible to others only after Save.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction. Calling it twice is a no-op.
	Begin(ctx context.Context) error

	// Save atomically commits every staged change. A failed commit leaves nothing
	// visible and returns errs.ErrPersistence. Save without an open transaction
	// has nothing to commit and returns nil.
	Save(ctx context.Context) error

	// Rollback discards staged changes. It is harmless after Save.
	Rollback(ctx context.Context) error

	CategoryRepository() CategoryRepository
	ProductRepository() ProductRepository
	UserRepository() UserRepository
	OrderHeaderRepository() OrderHeaderRepository
	OrderDetailRepository() OrderDetailRepository
}

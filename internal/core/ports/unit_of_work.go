package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary over the catalog.
// Writes made through CatalogRepository become visible to later reads in
// the same unit and reach the store only on Commit.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit flushes buffered writes in one atomic store call.
	// Returns error if no active transaction or the flush fails.
	Commit(ctx context.Context) error

	// Rollback discards buffered writes.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// CatalogRepository returns a repository bound to the current transaction.
	CatalogRepository() CatalogRepository
}

// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"deliverydesk/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
type (
	// TxManager handles transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// CatalogUoW manages transactions for catalog operations.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   repo := uow.CatalogRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	CatalogUoW interface {
		TxManager
		CatalogRepoFactory
	}

	// CatalogUoWFactory creates new catalog unit of work instances.
	CatalogUoWFactory interface {
		Create() CatalogUoW
	}
)

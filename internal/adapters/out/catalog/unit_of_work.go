package catalog

import (
	"context"
	"errors"
	"maps"
	"sync"

	"deliverydesk/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates UnitOfWork instances bound to one store.
//
// Example:
//
//	factory := catalog.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	ledger, err := uow.CatalogRepository().Deliveries(ctx)
//	// ... mutate and save
//	return uow.Commit(ctx)
type UnitOfWorkFactory struct {
	store ports.KeyValueStore
}

func NewUnitOfWorkFactory(store ports.KeyValueStore) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork buffers writes between Begin and Commit and flushes them with a
// single SetMany, so a failed command leaves the store untouched. Reads see
// the buffered writes first. Without an active transaction writes go
// straight to the store.
type UnitOfWork struct {
	store ports.KeyValueStore

	mu      sync.Mutex
	pending map[string]string
}

var (
	_ ports.UnitOfWork    = (*UnitOfWork)(nil)
	_ ports.KeyValueStore = (*UnitOfWork)(nil)
)

// Begin starts buffering. Calling it twice keeps the existing buffer.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.pending == nil {
		uow.pending = make(map[string]string)
	}
	return nil
}

// Commit writes every buffered key in one atomic store call and ends the
// transaction. On failure the buffer is dropped as well.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	uow.mu.Lock()
	pending := uow.pending
	uow.pending = nil
	uow.mu.Unlock()

	if pending == nil {
		return ErrNoActiveTransaction
	}
	if len(pending) == 0 {
		return nil
	}
	return uow.store.SetMany(ctx, pending)
}

// Rollback discards buffered writes.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	uow.mu.Lock()
	defer uow.mu.Unlock()

	if uow.pending == nil {
		return ErrNoActiveTransaction
	}
	uow.pending = nil
	return nil
}

func (uow *UnitOfWork) CatalogRepository() ports.CatalogRepository {
	return NewRepository(uow)
}

func (uow *UnitOfWork) Get(ctx context.Context, key string) (string, bool, error) {
	uow.mu.Lock()
	value, ok := uow.pending[key]
	uow.mu.Unlock()

	if ok {
		return value, true, nil
	}
	return uow.store.Get(ctx, key)
}

func (uow *UnitOfWork) Set(ctx context.Context, key, value string) error {
	return uow.SetMany(ctx, map[string]string{key: value})
}

func (uow *UnitOfWork) SetMany(ctx context.Context, entries map[string]string) error {
	uow.mu.Lock()
	if uow.pending != nil {
		maps.Copy(uow.pending, entries)
		uow.mu.Unlock()
		return nil
	}
	uow.mu.Unlock()

	return uow.store.SetMany(ctx, entries)
}

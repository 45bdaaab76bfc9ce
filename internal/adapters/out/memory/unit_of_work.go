package memory

import (
	"context"
	"errors"

	"foodorders/internal/adapters/out/memory/menurepo"
	"foodorders/internal/adapters/out/memory/orderrepo"
	"foodorders/internal/core/ports"
)

// ErrNoActiveTransaction is returned by Commit and Rollback outside Begin.
var ErrNoActiveTransaction = errors.New("no active transaction")

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

// UnitOfWork serializes commands against the store. Begin takes the write lock
// and snapshots both tables; Commit keeps the changes and Rollback puts the
// snapshot back. Either one releases the lock.
//
// A UnitOfWork is used by one goroutine. Calling Rollback after Commit is
// harmless and returns ErrNoActiveTransaction, which lets handlers defer it.
type UnitOfWork struct {
	store  *Store
	active bool
	before snapshot
}

// Begin blocks until no other unit of work or reader holds the store.
// A second Begin on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.before = uow.store.takeSnapshot()
	uow.active = true
	return nil
}

func (uow *UnitOfWork) Commit(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.finish()
	return nil
}

func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrNoActiveTransaction
	}

	uow.store.restore(uow.before)
	uow.finish()
	return nil
}

func (uow *UnitOfWork) finish() {
	uow.active = false
	uow.before = snapshot{}
	uow.store.mu.Unlock()
}

// MenuRepository must only be used between Begin and Commit/Rollback.
func (uow *UnitOfWork) MenuRepository() ports.MenuRepository {
	return menurepo.NewRepository(uow.store.menu, nopLocker{})
}

// OrderRepository must only be used between Begin and Commit/Rollback.
func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewRepository(uow.store.orders, nopLocker{})
}

// Package memory holds the process-lifetime application state: the menu and
// order tables behind one lock, plus the unit of work that gives commands
// exclusive, all-or-nothing access to them.
//
// A Store is created once by the composition root and passed by reference to
// the HTTP handlers and the status scheduler:
//
//	store := memory.NewStore()
//	factory := memory.NewUnitOfWorkFactory(store)
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	// ... use uow.MenuRepository() / uow.OrderRepository()
//
//	return uow.Commit(ctx)
//
// Queries that only read use MenuRepository and OrderRepository on the Store,
// which take the read lock per call.
package memory

import (
	"sync"

	"foodorders/internal/adapters/out/memory/menurepo"
	"foodorders/internal/adapters/out/memory/orderrepo"
	"foodorders/internal/core/ports"
)

// Store owns the menu and order tables.
type Store struct {
	mu     sync.RWMutex
	menu   *menurepo.Table
	orders *orderrepo.Table
}

func NewStore() *Store {
	return &Store{
		menu:   menurepo.NewTable(),
		orders: orderrepo.NewTable(),
	}
}

// MenuRepository returns a menu store that locks per call.
func (s *Store) MenuRepository() ports.MenuRepository {
	return menurepo.NewRepository(s.menu, &s.mu)
}

// OrderRepository returns an order store that locks per call.
func (s *Store) OrderRepository() ports.OrderRepository {
	return orderrepo.NewRepository(s.orders, &s.mu)
}

type snapshot struct {
	menu   []menurepo.ItemDTO
	orders []orderrepo.OrderDTO
}

// takeSnapshot must be called with the write lock held.
func (s *Store) takeSnapshot() snapshot {
	return snapshot{
		menu:   s.menu.Snapshot(),
		orders: s.orders.Snapshot(),
	}
}

// restore must be called with the write lock held.
func (s *Store) restore(snap snapshot) {
	s.menu.Restore(snap.menu)
	s.orders.Restore(snap.orders)
}

// nopLocker is used by repositories bound to a unit of work, which already
// holds the store's write lock.
type nopLocker struct{}

func (nopLocker) Lock()    {}
func (nopLocker) Unlock()  {}
func (nopLocker) RLock()   {}
func (nopLocker) RUnlock() {}

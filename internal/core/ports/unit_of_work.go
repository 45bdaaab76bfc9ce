package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the atomicity boundary of a command. Between Begin and
// Commit/Rollback the caller has exclusive access to both stores; Rollback
// discards every change made since Begin.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// MenuRepository returns the menu store bound to the current unit of work.
	MenuRepository() MenuRepository

	// OrderRepository returns the order store bound to the current unit of work.
	OrderRepository() OrderRepository
}

// Package commands contains the operations that modify the menu and order stores.
// Every command follows the same pattern: a constructor-guarded command value,
// and a handler that validates it, opens a unit of work, mutates the stores and
// commits.
package commands

import (
	"context"

	"foodorders/internal/core/ports"
)

// Unit of work interfaces narrowed to what command handlers need.
type (
	// TxManager controls the unit of work lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// MenuRepoFactory provides the menu store bound to the unit of work.
	MenuRepoFactory interface {
		MenuRepository() ports.MenuRepository
	}

	// OrderRepoFactory provides the order store bound to the unit of work.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UoW gives exclusive access to both stores until Commit or Rollback.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   menuRepo := uow.MenuRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MenuRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates a fresh unit of work per command.
	UoWFactory interface {
		Create() UoW
	}
)

// Package menurepo implements the menu store on top of an in-memory Table.
package menurepo

import (
	"context"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"
)

// RWLocker is satisfied by *sync.RWMutex.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// Repository implements ports.MenuRepository.
type Repository struct {
	table *Table
	lock  RWLocker
}

// NewRepository returns a repository guarded by lock. A repository bound to a
// unit of work that already holds the lock is built with a no-op locker.
func NewRepository(table *Table, lock RWLocker) *Repository {
	return &Repository{table: table, lock: lock}
}

func (r *Repository) Add(ctx context.Context, item *menu.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.table.indexOf(item.ID().Int64()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("menuItemID", fmt.Errorf("id %s is already in use", item.ID()))
	}
	r.table.rows = append(r.table.rows, fromDomain(item))
	return nil
}

func (r *Repository) Update(ctx context.Context, item *menu.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := item.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	idx := r.table.indexOf(item.ID().Int64())
	if idx < 0 {
		return errs.NewObjectNotFoundError("menuItemID", item.ID())
	}
	r.table.rows[idx] = fromDomain(item)
	return nil
}

func (r *Repository) Get(ctx context.Context, id kernel.ID) (*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	idx := r.table.indexOf(id.Int64())
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("menuItemID", id)
	}
	return toDomain(r.table.rows[idx])
}

func (r *Repository) List(ctx context.Context) ([]*menu.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	items := make([]*menu.Item, 0, len(r.table.rows))
	for _, row := range r.table.rows {
		item, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *Repository) NextID(ctx context.Context) (kernel.ID, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	ids := make([]kernel.ID, len(r.table.rows))
	for i, row := range r.table.rows {
		ids[i] = kernel.ID(row.ID)
	}
	return kernel.NextID(ids), nil
}

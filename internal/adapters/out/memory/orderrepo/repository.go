// Package orderrepo implements the order store on top of an in-memory Table.
package orderrepo

import (
	"context"
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/pkg/errs"
)

// RWLocker is satisfied by *sync.RWMutex.
type RWLocker interface {
	Lock()
	Unlock()
	RLock()
	RUnlock()
}

// Repository implements ports.OrderRepository.
type Repository struct {
	table *Table
	lock  RWLocker
}

func NewRepository(table *Table, lock RWLocker) *Repository {
	return &Repository{table: table, lock: lock}
}

func (r *Repository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	if r.table.indexOf(aggregate.ID().Int64()) >= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderID", fmt.Errorf("id %s is already in use", aggregate.ID()))
	}
	r.table.rows = append(r.table.rows, fromDomain(aggregate))
	return nil
}

func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	idx := r.table.indexOf(aggregate.ID().Int64())
	if idx < 0 {
		return errs.NewObjectNotFoundError("orderID", aggregate.ID())
	}
	r.table.rows[idx] = fromDomain(aggregate)
	return nil
}

func (r *Repository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	idx := r.table.indexOf(id.Int64())
	if idx < 0 {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return toDomain(r.table.rows[idx])
}

func (r *Repository) List(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.lock.RLock()
	defer r.lock.RUnlock()

	orders := make([]*order.Order, 0, len(r.table.rows))
	for _, row := range r.table.rows {
		o, err := toDomain(row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
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

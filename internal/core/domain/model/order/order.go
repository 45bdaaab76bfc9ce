package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned for an Order that did not come from
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is a customer request for menu items, tracked through delivery.
//
// Invariants:
//   - id is positive and assigned by the order store
//   - items is non-empty and every entry is a positive menu item id
//   - status only moves forward, one step per Advance
type Order struct {
	id kernel.ID

	// items keeps the order and duplicates of the request.
	items []kernel.ID

	status Status

	// placedAt is the creation instant.
	placedAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Preparing status. The items slice is copied.
// Checking that the items exist on the menu is the caller's job; see
// services.ItemReferenceChecker.
func NewOrder(id kernel.ID, items []kernel.ID, placedAt time.Time) (*Order, error) {
	return RestoreOrder(id, items, Preparing, placedAt)
}

// RestoreOrder rebuilds an order with a known status.
func RestoreOrder(id kernel.ID, items []kernel.ID, status Status, placedAt time.Time) (*Order, error) {
	o := &Order{
		placedAt:      placedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

// Items returns a copy of the referenced menu item ids in request order.
func (o *Order) Items() []kernel.ID {
	return slices.Clone(o.items)
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// Advance moves the order one step along the status progression and reports
// whether the status changed. A Delivered order is left as it is.
func (o *Order) Advance() (bool, error) {
	if o.status.IsFinal() {
		return false, nil
	}

	next, err := o.status.Next()
	if err != nil {
		return false, err
	}

	o.status = next
	return true, nil
}

func (o *Order) setID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setItems(items []kernel.ID) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("an order must contain at least one item"))
	}
	for i, item := range items {
		if err := item.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

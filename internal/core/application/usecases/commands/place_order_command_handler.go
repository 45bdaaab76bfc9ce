package commands

import (
	"context"
	"time"

	"foodorders/internal/core/domain/model/order"
	"foodorders/internal/core/domain/services"
)

// PlaceOrderCommandHandler creates orders in Preparing status.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	checker    services.ItemReferenceChecker
	now        func() time.Time
}

// NewPlaceOrderCommandHandler uses now to stamp new orders; nil means time.Now.
func NewPlaceOrderCommandHandler(uowFactory UoWFactory, now func() time.Time) PlaceOrderCommandHandler {
	if now == nil {
		now = time.Now
	}
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		checker:    services.NewItemReferenceChecker(),
		now:        now,
	}
}

// Handle checks every requested item against the menu and stores the order under
// the next free id. When items are unknown it returns *services.UnknownItemsError
// naming all of them and nothing is stored.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	catalog, err := uow.MenuRepository().List(ctx)
	if err != nil {
		return nil, err
	}

	if err = h.checker.Check(cmd.Items(), catalog); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	id, err := orderRepo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	placed, err := order.NewOrder(id, cmd.Items(), h.now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, placed); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}

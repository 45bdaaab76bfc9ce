package commands

import (
	"context"

	"foodorders/internal/core/domain/model/menu"
)

// UpsertMenuItemResult is the stored item and whether it was newly created.
type UpsertMenuItemResult struct {
	Item    *menu.Item
	Created bool
}

// UpsertMenuItemCommandHandler writes menu items.
type UpsertMenuItemCommandHandler struct {
	uowFactory UoWFactory
}

func NewUpsertMenuItemCommandHandler(uowFactory UoWFactory) UpsertMenuItemCommandHandler {
	return UpsertMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the item under the next free id when the command has no id,
// and otherwise replaces name, price and category of the existing item.
// An unknown id returns errs.ErrObjectNotFound and leaves the store unchanged.
func (h *UpsertMenuItemCommandHandler) Handle(ctx context.Context, cmd UpsertMenuItemCommand) (UpsertMenuItemResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpsertMenuItemResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpsertMenuItemResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var (
		result UpsertMenuItemResult
		err    error
	)
	if cmd.IsCreate() {
		result, err = h.create(ctx, uow, cmd)
	} else {
		result, err = h.update(ctx, uow, cmd)
	}
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpsertMenuItemResult{}, err
	}

	return result, nil
}

func (h *UpsertMenuItemCommandHandler) create(ctx context.Context, uow UoW, cmd UpsertMenuItemCommand) (UpsertMenuItemResult, error) {
	menuRepo := uow.MenuRepository()

	id, err := menuRepo.NextID(ctx)
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	item, err := menu.NewItem(id, cmd.Details())
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	if err = menuRepo.Add(ctx, item); err != nil {
		return UpsertMenuItemResult{}, err
	}

	return UpsertMenuItemResult{Item: item, Created: true}, nil
}

func (h *UpsertMenuItemCommandHandler) update(ctx context.Context, uow UoW, cmd UpsertMenuItemCommand) (UpsertMenuItemResult, error) {
	menuRepo := uow.MenuRepository()

	item, err := menuRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return UpsertMenuItemResult{}, err
	}

	if err = item.Update(cmd.Details()); err != nil {
		return UpsertMenuItemResult{}, err
	}

	if err = menuRepo.Update(ctx, item); err != nil {
		return UpsertMenuItemResult{}, err
	}

	return UpsertMenuItemResult{Item: item}, nil
}

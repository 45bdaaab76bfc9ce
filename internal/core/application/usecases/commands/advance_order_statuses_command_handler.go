package commands

import (
	"context"

	"foodorders/internal/core/domain/services"
)

// AdvanceOrderStatusesCommandHandler moves every undelivered order one status
// step forward. The whole tick runs in one unit of work, so requests never see
// a half-applied tick and two ticks never interleave.
type AdvanceOrderStatusesCommandHandler struct {
	uowFactory  UoWFactory
	progression services.StatusProgression
}

func NewAdvanceOrderStatusesCommandHandler(uowFactory UoWFactory) AdvanceOrderStatusesCommandHandler {
	return AdvanceOrderStatusesCommandHandler{
		uowFactory:  uowFactory,
		progression: services.NewStatusProgression(),
	}
}

// Handle returns the transitions applied by this tick.
func (h *AdvanceOrderStatusesCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusesCommand,
) ([]services.Transition, error) {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	transitions, err := h.progression.Tick(orders)
	if err != nil {
		return nil, err
	}

	changed := make(map[int64]struct{}, len(transitions))
	for _, tr := range transitions {
		changed[tr.OrderID.Int64()] = struct{}{}
	}

	for _, o := range orders {
		if _, ok := changed[o.ID().Int64()]; !ok {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return transitions, nil
}

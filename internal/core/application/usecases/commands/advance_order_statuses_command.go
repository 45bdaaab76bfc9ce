package commands

import (
	"errors"

	"foodorders/internal/pkg/guard"
)

// AdvanceOrderStatusesCommand is one tick of the status scheduler.
//
// Example:
//
//	cmd := NewAdvanceOrderStatusesCommand()
//	transitions, err := handler.Handle(ctx, cmd)
type AdvanceOrderStatusesCommand struct {
	guard guard.ConstructorGuard
}

var (
	ErrAdvanceOrderStatusesCommandIsNotConstructed = errors.New(
		"AdvanceOrderStatusesCommand must be created via NewAdvanceOrderStatusesCommand constructor",
	)
)

func NewAdvanceOrderStatusesCommand() AdvanceOrderStatusesCommand {
	return AdvanceOrderStatusesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AdvanceOrderStatusesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusesCommandIsNotConstructed)
}

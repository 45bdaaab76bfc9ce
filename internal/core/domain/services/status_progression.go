package services

import (
	"fmt"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/order"
)

// Transition records one status change made during a tick.
type Transition struct {
	OrderID kernel.ID
	From    order.Status
	To      order.Status
}

// StatusProgression applies one scheduler tick to a set of orders.
//
// Every order moves at most one step, judged by the status it had when the tick
// began: Preparing becomes Out for Delivery, Out for Delivery becomes Delivered,
// Delivered stays put. An order that was Preparing at the start of the tick never
// reaches Delivered within the same tick.
type StatusProgression struct{}

func NewStatusProgression() StatusProgression {
	return StatusProgression{}
}

// Tick advances the orders in place and returns the transitions it made, in the
// order of the input slice.
func (StatusProgression) Tick(orders []*order.Order) ([]Transition, error) {
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}

	transitions := make([]Transition, 0, len(orders))
	for _, o := range orders {
		from := o.Status()

		changed, err := o.Advance()
		if err != nil {
			return nil, fmt.Errorf("advance order %s: %w", o.ID(), err)
		}
		if !changed {
			continue
		}

		transitions = append(transitions, Transition{
			OrderID: o.ID(),
			From:    from,
			To:      o.Status(),
		})
	}

	return transitions, nil
}

package kernel

import (
	"fmt"
	"math"

	"foodorders/internal/pkg/errs"
)

// Price is the amount charged for a menu item. It must be greater than zero.
type Price struct {
	amount float64
}

func NewPrice(amount float64) (Price, error) {
	p := Price{amount: amount}
	if err := p.Validate(); err != nil {
		return Price{}, err
	}
	return p, nil
}

// Validate rejects zero, negative and non-finite amounts.
func (p Price) Validate() error {
	if math.IsNaN(p.amount) || math.IsInf(p.amount, 0) {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a finite number", p.amount))
	}
	if p.amount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not greater than 0", p.amount))
	}
	return nil
}

func (p Price) Float64() float64 {
	return p.amount
}

func (p Price) IsEqual(other Price) bool {
	return p.amount == other.amount
}

func (p Price) String() string {
	return fmt.Sprintf("%.2f", p.amount)
}

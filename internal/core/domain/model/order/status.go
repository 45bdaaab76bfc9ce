package order

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Status is the delivery state of an order.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Preparing is the initial status of every placed order.
	Preparing

	// OutForDelivery means the kitchen has handed the order to delivery.
	OutForDelivery

	// Delivered is final.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Preparing:      "Preparing",
		OutForDelivery: "Out for Delivery",
		Delivered:      "Delivered",
	}
}

// ParseStatus maps a wire name such as "Out for Delivery" to its Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out of range values.
func (s Status) Validate() error {
	if s < Preparing || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition exists.
func (s Status) IsFinal() bool {
	return s == Delivered
}

// Next returns the status one step further along the progression.
//
//	Preparing      -> Out for Delivery
//	OutForDelivery -> Delivered
//
// Delivered and invalid statuses have no next step and return an error.
func (s Status) Next() (Status, error) {
	switch s {
	case Preparing:
		return OutForDelivery, nil
	case OutForDelivery:
		return Delivered, nil
	case Unknown, Delivered:
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s has no next status", s.String()),
	)
}

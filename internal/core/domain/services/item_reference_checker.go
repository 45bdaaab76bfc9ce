package services

import (
	"fmt"
	"strings"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/core/domain/model/menu"
	"foodorders/internal/pkg/errs"
)

// UnknownItemsError lists the order items that are not on the menu, in request
// order and including repeats.
type UnknownItemsError struct {
	IDs []kernel.ID
}

func (e *UnknownItemsError) Error() string {
	return fmt.Sprintf("%s: unknown menu item ids %s", errs.ErrValueIsInvalid, e.Joined())
}

func (e *UnknownItemsError) Unwrap() error {
	return errs.ErrValueIsInvalid
}

// Joined renders the ids as "1, 2, 3".
func (e *UnknownItemsError) Joined() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = id.String()
	}
	return strings.Join(parts, ", ")
}

// ItemReferenceChecker verifies that an order only references existing menu items.
//
//	err := services.NewItemReferenceChecker().Check(cmd.Items(), menuItems)
//	var unknown *services.UnknownItemsError
//	if errors.As(err, &unknown) {
//	    // unknown.IDs holds every offending id
//	}
type ItemReferenceChecker struct{}

func NewItemReferenceChecker() ItemReferenceChecker {
	return ItemReferenceChecker{}
}

// Check scans all items instead of stopping at the first miss, so the error
// names every unknown id.
func (ItemReferenceChecker) Check(items []kernel.ID, catalog []*menu.Item) error {
	known := make(map[kernel.ID]struct{}, len(catalog))
	for _, item := range catalog {
		known[item.ID()] = struct{}{}
	}

	var unknown []kernel.ID
	for _, id := range items {
		if _, ok := known[id]; !ok {
			unknown = append(unknown, id)
		}
	}

	if len(unknown) > 0 {
		return &UnknownItemsError{IDs: unknown}
	}
	return nil
}

// Package menu provides the menu catalog entity.
//
// An Item is a purchasable entry with a name, a price and a Category. Item details
// are validated as a unit by NewDetails before any store is touched, so an invalid
// request never creates or modifies an item:
//
//	details, err := menu.NewDetails("Soup", 5, "Starter")
//	if err != nil {
//	    return err // errs.ErrValueIsRequired or errs.ErrValueIsInvalid
//	}
//	item, err := menu.NewItem(nextID, details)
//
// Items are never deleted; Update replaces the details in place and keeps the id.
package menu

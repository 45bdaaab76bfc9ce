package menu

import (
	"fmt"

	"foodorders/internal/pkg/errs"
)

// Category is the section of the menu an item belongs to.
type Category int

const (
	// UnknownCategory is the zero value and is never valid.
	UnknownCategory Category = iota
	Starter
	MainCourse
	Dessert
	Beverage
)

func getCategoryStrings() map[Category]string {
	//nolint:exhaustive // UnknownCategory has no wire name
	return map[Category]string{
		Starter:    "Starter",
		MainCourse: "Main Course",
		Dessert:    "Dessert",
		Beverage:   "Beverage",
	}
}

// Categories lists the valid categories in menu order.
func Categories() []Category {
	return []Category{Starter, MainCourse, Dessert, Beverage}
}

// ParseCategory maps a wire name such as "Main Course" to its Category.
// Matching is exact, as the names are part of the API contract.
func ParseCategory(s string) (Category, error) {
	for c, name := range getCategoryStrings() {
		if name == s {
			return c, nil
		}
	}
	return UnknownCategory, errs.NewValueIsInvalidErrorWithCause(
		"category",
		fmt.Errorf("%q is not one of Starter, Main Course, Dessert, Beverage", s),
	)
}

func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

func (c Category) String() string {
	if s, ok := getCategoryStrings()[c]; ok {
		return s
	}
	return "Unknown"
}

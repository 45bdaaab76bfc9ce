package menu

import (
	"errors"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"
	"foodorders/internal/pkg/guard"
)

var (
	ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails constructor")
	ErrItemIsNotConstructed     = errors.New("Item must be created via NewItem constructor")
)

// Details are the editable fields of a menu item.
type Details struct {
	name     string
	price    kernel.Price
	category Category

	guard guard.ConstructorGuard
}

// NewDetails checks every field and reports all violations at once:
// the name must be non-empty, the price greater than zero and the category
// one of Starter, Main Course, Dessert or Beverage.
func NewDetails(name string, price float64, category string) (Details, error) {
	d := Details{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		d.setName(name),
		d.setPrice(price),
		d.setCategory(category),
	); err != nil {
		return Details{}, err
	}

	return d, nil
}

func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

func (d Details) Name() string {
	return d.name
}

func (d Details) Price() kernel.Price {
	return d.price
}

func (d Details) Category() Category {
	return d.category
}

func (d *Details) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	d.name = name
	return nil
}

func (d *Details) setPrice(amount float64) error {
	price, err := kernel.NewPrice(amount)
	if err != nil {
		return err
	}
	d.price = price
	return nil
}

func (d *Details) setCategory(name string) error {
	category, err := ParseCategory(name)
	if err != nil {
		return err
	}
	d.category = category
	return nil
}

// Item is a menu catalog entry.
type Item struct {
	id      kernel.ID
	details Details

	isConstructed bool
}

// NewItem creates an item with a store-assigned id.
func NewItem(id kernel.ID, details Details) (*Item, error) {
	if err := errors.Join(id.Validate(), details.Validate()); err != nil {
		return nil, err
	}

	return &Item{
		id:            id,
		details:       details,
		isConstructed: true,
	}, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// Update replaces name, price and category. The id never changes.
func (i *Item) Update(details Details) error {
	if err := details.Validate(); err != nil {
		return err
	}
	i.details = details
	return nil
}

func (i *Item) ID() kernel.ID {
	return i.id
}

func (i *Item) Name() string {
	return i.details.name
}

func (i *Item) Price() kernel.Price {
	return i.details.price
}

func (i *Item) Category() Category {
	return i.details.category
}

func (i *Item) Details() Details {
	return i.details
}

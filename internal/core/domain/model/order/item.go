package order

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a value object representing one line of an order: a product,
// a portion size and a quantity.
//
// Item invariants:
//   - Product must be a non-empty string
//   - Size must be one of small, medium or big
//   - Quantity must be at least 1
type Item struct {
	product  string
	size     Size
	quantity int

	guard guard.ConstructorGuard
}

// NewItem creates a validated order line item.
// Returns an error if the product is empty, the size is invalid,
// or the quantity is below 1.
func NewItem(product string, size Size, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProduct(product),
		item.setSize(size),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Product returns the ordered product identifier.
func (i Item) Product() string {
	return i.product
}

// Size returns the portion size of the item.
func (i Item) Size() Size {
	return i.size
}

// Quantity returns how many units of the product were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProduct(product string) error {
	if product == "" {
		return errs.NewValueIsRequiredError("product")
	}
	i.product = product
	return nil
}

func (i *Item) setSize(size Size) error {
	if err := size.Validate(); err != nil {
		return err
	}
	i.size = size
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

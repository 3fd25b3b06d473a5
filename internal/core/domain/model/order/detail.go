package order

import (
	"errors"
	"fmt"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/pkg/errs"
)

const (
	MinQuantity = 1
	MaxQuantity = 1000
)

var (
	ErrDetailIsNotConstructed = errors.New("Detail must be created via NewDetail or RestoreDetail constructor")
	ErrDetailIDAlreadySet     = errors.New("order detail identity is already assigned")
)

// Detail is one line item of an order: a product, how many, and the unit price
// charged at checkout. The price is copied so later catalog changes do not
// alter past orders.
type Detail struct {
	id            int64
	orderHeaderID int64
	productID     int64
	quantity      int
	price         kernel.Money
	product       *catalog.Product
	isConstructed bool
}

func NewDetail(orderHeaderID, productID int64, quantity int, price kernel.Money) (*Detail, error) {
	d := &Detail{isConstructed: true}
	if err := errors.Join(
		d.setOrderHeaderID(orderHeaderID),
		d.setProductID(productID),
		d.setQuantity(quantity),
		d.setPrice(price),
	); err != nil {
		return nil, err
	}
	return d, nil
}

func RestoreDetail(id, orderHeaderID, productID int64, quantity int, price kernel.Money) (*Detail, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order detail id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	d, err := NewDetail(orderHeaderID, productID, quantity, price)
	if err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

func (d *Detail) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDetailIsNotConstructed
	}
	return nil
}

func (d *Detail) ID() int64            { return d.id }
func (d *Detail) OrderHeaderID() int64 { return d.orderHeaderID }
func (d *Detail) ProductID() int64     { return d.productID }
func (d *Detail) Quantity() int        { return d.quantity }
func (d *Detail) Price() kernel.Money  { return d.price }

// LineTotal is Price times Quantity.
func (d *Detail) LineTotal() kernel.Money {
	return d.price.Multiply(d.quantity)
}

// Product returns the expanded product, or nil when it was not loaded.
func (d *Detail) Product() *catalog.Product {
	return d.product
}

func (d *Detail) AttachProduct(p *catalog.Product) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID() != d.productID {
		return errs.NewValueIsInvalidErrorWithCause(
			"product is invalid",
			fmt.Errorf("product %d does not match order detail product %d", p.ID(), d.productID),
		)
	}
	d.product = p
	return nil
}

func (d *Detail) AssignID(id int64) error {
	if d.id != 0 {
		return ErrDetailIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order detail id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	d.id = id
	return nil
}

// ChangeQuantity edits the line while the order is still open for changes.
func (d *Detail) ChangeQuantity(quantity int) error {
	return d.setQuantity(quantity)
}

func (d *Detail) setOrderHeaderID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("order header id")
	}
	d.orderHeaderID = id
	return nil
}

func (d *Detail) setProductID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("product id")
	}
	d.productID = id
	return nil
}

func (d *Detail) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	d.quantity = quantity
	return nil
}

func (d *Detail) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	d.price = price
	return nil
}

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/pkg/errs"
)

var (
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")
	ErrProductIDAlreadySet     = errors.New("product identity is already assigned")
)

// Product is a sellable catalog item. It references its category by id; the
// category itself is only present when the repository was asked to expand it.
type Product struct {
	id            int64
	name          string
	description   string
	price         kernel.Money
	categoryID    int64
	category      *Category
	isConstructed bool
}

// NewProduct creates a product that has not been persisted yet.
func NewProduct(name, description string, price kernel.Money, categoryID int64) (*Product, error) {
	p := &Product{
		description:   strings.TrimSpace(description),
		isConstructed: true,
	}
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}
	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(id int64, name, description string, price kernel.Money, categoryID int64) (*Product, error) {
	p, err := NewProduct(name, description, price, categoryID)
	if err != nil {
		return nil, err
	}
	if err = p.AssignID(id); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() kernel.Money {
	return p.price
}

func (p *Product) CategoryID() int64 {
	return p.categoryID
}

// Category returns the expanded category, or nil when it was not loaded.
func (p *Product) Category() *Category {
	return p.category
}

// AttachCategory sets the expanded category. It must match CategoryID.
func (p *Product) AttachCategory(c *Category) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.ID() != p.categoryID {
		return errs.NewValueIsInvalidErrorWithCause(
			"category is invalid",
			fmt.Errorf("category %d does not match product category %d", c.ID(), p.categoryID),
		)
	}
	p.category = c
	return nil
}

// AssignID records the identity generated by the store on insert.
func (p *Product) AssignID(id int64) error {
	if p.id != 0 {
		return ErrProductIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", errors.New("price must be greater than 0"))
	}
	p.price = price
	return nil
}

func (p *Product) setCategoryID(categoryID int64) error {
	if categoryID <= 0 {
		return errs.NewValueIsRequiredError("product category")
	}
	p.categoryID = categoryID
	return nil
}

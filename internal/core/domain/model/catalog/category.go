package catalog

import (
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/pkg/errs"
)

const MaxCategoryNameLength = 100

var (
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory constructor")
	ErrCategoryIDAlreadySet     = errors.New("category identity is already assigned")
)

// Category groups products in the catalog.
type Category struct {
	id            int64
	name          string
	isConstructed bool
}

// NewCategory creates a category that has not been persisted yet (ID 0).
func NewCategory(name string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := c.setName(name); err != nil {
		return nil, err
	}
	return c, nil
}

// RestoreCategory rebuilds a persisted category. The id must be positive.
func RestoreCategory(id int64, name string) (*Category, error) {
	c := &Category{isConstructed: true}
	if err := errors.Join(c.setID(id), c.setName(name)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

func (c *Category) ID() int64 {
	return c.id
}

func (c *Category) Name() string {
	return c.name
}

// IsNew reports whether the category still lacks a store identity.
func (c *Category) IsNew() bool {
	return c.id == 0
}

// AssignID records the identity generated by the store on insert.
func (c *Category) AssignID(id int64) error {
	if !c.IsNew() {
		return ErrCategoryIDAlreadySet
	}
	return c.setID(id)
}

// Rename changes the display name.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

func (c *Category) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("category id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	if len(name) > MaxCategoryNameLength {
		return errs.NewValueIsOutOfRangeError("category name length", len(name), 1, MaxCategoryNameLength)
	}
	c.name = name
	return nil
}

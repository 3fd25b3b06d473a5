package ports

import (
	"context"

	"shoppingcart/internal/core/domain/model/catalog"
)

// ProductInclude expands a product navigation property on load.
type ProductInclude int

const (
	// ProductIncludeCategory attaches the product's Category.
	ProductIncludeCategory ProductInclude = iota + 1
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	GetAll(ctx context.Context, includes ...ProductInclude) ([]*catalog.Product, error)

	Get(ctx context.Context, id int64, includes ...ProductInclude) (*catalog.Product, error)

	// GetMany loads the products with the given ids. Missing ids are reported as
	// errs.ErrObjectNotFound naming the first one absent.
	GetMany(ctx context.Context, ids []int64) (map[int64]*catalog.Product, error)

	// CountByCategory returns how many products reference the category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	Add(ctx context.Context, product *catalog.Product) error

	Update(ctx context.Context, product *catalog.Product) error

	Delete(ctx context.Context, id int64) error
}

package ports

import (
	"context"

	"shoppingcart/internal/core/domain/model/catalog"
)

// CategoryRepository defines the persistence contract for categories.
type CategoryRepository interface {
	GetAll(ctx context.Context) ([]*catalog.Category, error)

	Get(ctx context.Context, id int64) (*catalog.Category, error)

	// Add stages a new category. The category must not have an identity yet.
	Add(ctx context.Context, category *catalog.Category) error

	Update(ctx context.Context, category *catalog.Category) error

	Delete(ctx context.Context, id int64) error
}

package ports

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
)

// OrderDetailInclude expands an order detail navigation property on load.
type OrderDetailInclude int

const (
	// OrderDetailIncludeProduct attaches the Product of the line.
	OrderDetailIncludeProduct OrderDetailInclude = iota + 1
)

// OrderDetailRepository defines the persistence contract for order line items.
type OrderDetailRepository interface {
	GetAll(ctx context.Context, includes ...OrderDetailInclude) ([]*order.Detail, error)

	Get(ctx context.Context, id int64, includes ...OrderDetailInclude) (*order.Detail, error)

	// GetAllByOrder returns the lines of one order ordered by id. An order
	// without lines yields an empty slice.
	GetAllByOrder(ctx context.Context, orderHeaderID int64, includes ...OrderDetailInclude) ([]*order.Detail, error)

	Add(ctx context.Context, detail *order.Detail) error

	Update(ctx context.Context, detail *order.Detail) error

	Delete(ctx context.Context, id int64) error
}

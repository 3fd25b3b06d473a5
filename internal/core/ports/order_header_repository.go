package ports

import (
	"context"
	"time"

	"shoppingcart/internal/core/domain/model/order"
)

// OrderHeaderInclude expands an order header navigation property on load.
type OrderHeaderInclude int

const (
	// OrderHeaderIncludeUser attaches the ApplicationUser who placed the order.
	OrderHeaderIncludeUser OrderHeaderInclude = iota + 1
)

// OrderHeaderFilter narrows Find. Zero-valued fields do not filter.
type OrderHeaderFilter struct {
	Status        order.Status
	PaymentStatus order.PaymentStatus
	// PlacedBefore keeps orders whose OrderDate is strictly earlier.
	PlacedBefore time.Time
	UserID       string
	// Limit caps the result size; 0 means unlimited.
	Limit int
}

// OrderHeaderRepository defines the persistence contract for order headers.
type OrderHeaderRepository interface {
	GetAll(ctx context.Context, includes ...OrderHeaderInclude) ([]*order.Header, error)

	// Get loads a header by id without taking a row lock.
	Get(ctx context.Context, id int64, includes ...OrderHeaderInclude) (*order.Header, error)

	// GetForUpdate loads a header by id and, inside an open unit of work, keeps
	// its row locked until Save or Rollback. Concurrent lifecycle operations on
	// the same order are serialised through it.
	GetForUpdate(ctx context.Context, id int64, includes ...OrderHeaderInclude) (*order.Header, error)

	// Find returns headers matching filter, ordered by id.
	Find(ctx context.Context, filter OrderHeaderFilter, includes ...OrderHeaderInclude) ([]*order.Header, error)

	Add(ctx context.Context, header *order.Header) error

	Update(ctx context.Context, header *order.Header) error

	Delete(ctx context.Context, id int64) error
}

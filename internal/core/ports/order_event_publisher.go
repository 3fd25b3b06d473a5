package ports

import (
	"context"
	"time"
)

// OrderStatusChanged is published after a lifecycle change has been committed.
type OrderStatusChanged struct {
	OrderID       int64     `json:"order_id"`
	UserID        string    `json:"user_id"`
	Operation     string    `json:"operation"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	RefundID      string    `json:"refund_id,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// OrderEventPublisher delivers order events to downstream consumers. Delivery
// is best effort: a publish failure never undoes a committed change.
type OrderEventPublisher interface {
	Publish(ctx context.Context, event OrderStatusChanged) error
}

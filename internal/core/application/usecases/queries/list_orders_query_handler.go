package queries

import (
	"context"
	"time"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler projects order summaries straight from the database,
// bypassing the order aggregate.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

type orderSummaryRow struct {
	ID            int64
	UserID        string
	UserName      string
	OrderDate     time.Time
	OrderTotal    decimal.Decimal
	OrderStatus   int
	PaymentStatus int
	LineCount     int
}

// Handle returns summaries ordered by id.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	q := h.db.WithContext(ctx).
		Table("order_headers AS h").
		Select(`
			h.id,
			h.application_user_id AS user_id,
			u.name AS user_name,
			h.order_date,
			h.order_total,
			h.order_status,
			h.payment_status,
			(SELECT COUNT(*) FROM order_details d WHERE d.order_header_id = h.id) AS line_count
		`).
		Joins("JOIN application_users u ON u.id = h.application_user_id")

	if query.Status() != order.StatusUnknown {
		q = q.Where("h.order_status = ?", int(query.Status()))
	}
	if query.PaymentStatus() != order.PaymentStatusUnknown {
		q = q.Where("h.payment_status = ?", int(query.PaymentStatus()))
	}
	if query.UserID() != "" {
		q = q.Where("h.application_user_id = ?", query.UserID())
	}

	var rows []orderSummaryRow
	if err := q.Order("h.id").Limit(query.Limit()).Scan(&rows).Error; err != nil {
		return nil, errs.NewPersistenceError("list orders", err)
	}

	res := make([]ListOrdersQueryResponse, 0, len(rows))
	for _, row := range rows {
		total, err := kernel.NewMoney(row.OrderTotal)
		if err != nil {
			return nil, err
		}
		res = append(res, ListOrdersQueryResponse{
			ID:            row.ID,
			UserID:        row.UserID,
			UserName:      row.UserName,
			OrderDate:     row.OrderDate.UTC(),
			Total:         total,
			Status:        order.Status(row.OrderStatus),
			PaymentStatus: order.PaymentStatus(row.PaymentStatus),
			LineCount:     row.LineCount,
		})
	}
	return res, nil
}

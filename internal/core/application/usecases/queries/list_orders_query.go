package queries

import (
	"errors"
	"strings"
	"time"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// MaxListOrdersLimit caps one page of ListOrders.
const MaxListOrdersLimit = 500

// ListOrdersQuery lists order summaries. Empty filter values match every order.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	status        order.Status
	paymentStatus order.PaymentStatus
	userID        string
	limit         int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery parses status names as produced by order.Status.String
// and order.PaymentStatus.String. A zero limit means MaxListOrdersLimit.
func NewListOrdersQuery(status, paymentStatus, userID string, limit int) (ListOrdersQuery, error) {
	q := ListOrdersQuery{
		userID: strings.TrimSpace(userID),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setStatus(status),
		q.setPaymentStatus(paymentStatus),
		q.setLimit(limit),
	); err != nil {
		return ListOrdersQuery{}, err
	}
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Status() order.Status               { return q.status }
func (q ListOrdersQuery) PaymentStatus() order.PaymentStatus { return q.paymentStatus }
func (q ListOrdersQuery) UserID() string                     { return q.userID }
func (q ListOrdersQuery) Limit() int                         { return q.limit }

func (q *ListOrdersQuery) setStatus(s string) error {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	status, err := order.ParseStatus(s)
	if err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *ListOrdersQuery) setPaymentStatus(s string) error {
	if s = strings.TrimSpace(s); s == "" {
		return nil
	}
	status, err := order.ParsePaymentStatus(s)
	if err != nil {
		return err
	}
	q.paymentStatus = status
	return nil
}

func (q *ListOrdersQuery) setLimit(limit int) error {
	if limit == 0 {
		limit = MaxListOrdersLimit
	}
	if limit < 1 || limit > MaxListOrdersLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxListOrdersLimit)
	}
	q.limit = limit
	return nil
}

// ListOrdersQueryResponse summarises one order for listings.
type ListOrdersQueryResponse struct {
	ID            int64
	UserID        string
	UserName      string
	OrderDate     time.Time
	Total         kernel.Money
	Status        order.Status
	PaymentStatus order.PaymentStatus
	LineCount     int
}

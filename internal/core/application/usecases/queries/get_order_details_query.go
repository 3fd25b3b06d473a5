package queries

import (
	"errors"
	"fmt"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/domain/model/user"
	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrGetOrderDetailsQueryIsNotConstructed = errors.New(
	"GetOrderDetailsQuery must be created via NewGetOrderDetailsQuery constructor",
)

// GetOrderDetailsQuery loads one order with its customer and line items.
//
// Example:
//
//	query, err := NewGetOrderDetailsQuery(42)
//	if err != nil {
//	    return err
//	}
//	vm, err := handler.Handle(ctx, query)
//	fmt.Println(vm.Header.Status(), len(vm.Details))
type GetOrderDetailsQuery struct {
	orderID int64

	guard guard.ConstructorGuard
}

func NewGetOrderDetailsQuery(orderID int64) (GetOrderDetailsQuery, error) {
	if orderID <= 0 {
		return GetOrderDetailsQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"order id is invalid",
			fmt.Errorf("%d is not greater than 0", orderID),
		)
	}
	return GetOrderDetailsQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderDetailsQueryIsNotConstructed)
}

func (q GetOrderDetailsQuery) OrderID() int64 {
	return q.orderID
}

// OrderVM is an order header together with its customer and lines. Each
// detail has its Product attached.
type OrderVM struct {
	Header  *order.Header
	User    *user.ApplicationUser
	Details []*order.Detail
}

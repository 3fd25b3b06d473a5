package queries

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
)

type GetOrderDetailsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewGetOrderDetailsQueryHandler(uowFactory ReadUoWFactory) GetOrderDetailsQueryHandler {
	return GetOrderDetailsQueryHandler{uowFactory: uowFactory}
}

// Handle fails with errs.ErrObjectNotFound when the order does not exist.
// An order without lines has an empty Details slice.
func (h GetOrderDetailsQueryHandler) Handle(ctx context.Context, query GetOrderDetailsQuery) (OrderVM, error) {
	if err := query.Validate(); err != nil {
		return OrderVM{}, err
	}

	uow := h.uowFactory.Create()

	header, err := uow.OrderHeaderRepository().Get(ctx, query.OrderID(), ports.OrderHeaderIncludeUser)
	if err != nil {
		return OrderVM{}, err
	}

	details, err := uow.OrderDetailRepository().GetAllByOrder(ctx, header.ID(), ports.OrderDetailIncludeProduct)
	if err != nil {
		return OrderVM{}, err
	}
	if details == nil {
		details = make([]*order.Detail, 0)
	}

	return OrderVM{
		Header:  header,
		User:    header.User(),
		Details: details,
	}, nil
}

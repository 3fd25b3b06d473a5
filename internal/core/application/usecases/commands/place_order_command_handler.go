package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
)

const operationPlace = "place"

// PlaceOrderCommandHandler prices the lines from the current catalog and
// stores the header and its details in one unit of work.
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	deps       LifecycleDeps
}

func NewPlaceOrderCommandHandler(uowFactory OrderUoWFactory, deps LifecycleDeps) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		deps:       deps.withDefaults(),
	}
}

// Handle returns the id of the new order.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	products, err := uow.ProductRepository().GetMany(ctx, cmd.ProductIDs())
	if err != nil {
		return 0, err
	}

	total := kernel.ZeroMoney()
	for _, line := range cmd.Lines() {
		total = total.Add(products[line.ProductID].Price().Multiply(line.Quantity))
	}

	header, err := order.NewHeader(cmd.UserID(), cmd.Contact(), total, h.deps.Now())
	if err != nil {
		return 0, err
	}
	if err = uow.OrderHeaderRepository().Add(ctx, header); err != nil {
		return 0, err
	}

	detailRepo := uow.OrderDetailRepository()
	for _, line := range cmd.Lines() {
		detail, err := order.NewDetail(header.ID(), line.ProductID, line.Quantity, products[line.ProductID].Price())
		if err != nil {
			return 0, err
		}
		if err := detailRepo.Add(ctx, detail); err != nil {
			return 0, err
		}
	}

	if err = uow.Save(ctx); err != nil {
		return 0, asPersistenceError("save order", err)
	}

	h.deps.Metrics.RecordTransition(operationPlace, header.Status().String())
	publish(ctx, h.deps, operationPlace, header)

	h.deps.Logger.WithField("order_id", header.ID()).Info("Order placed")
	return header.ID(), nil
}

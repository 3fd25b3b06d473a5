package commands

import (
	"context"
	"fmt"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"
)

const operationRefund = "refund"

// RefundOrderCommandHandler refunds a Shipped order and closes it as Refunded.
// It uses the same idempotency key as cancellation, so an order can never be
// refunded twice whichever path reaches the gateway.
type RefundOrderCommandHandler struct {
	mutator orderMutator
}

func NewRefundOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	deps LifecycleDeps,
) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, gateway, deps),
	}
}

func (h *RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationRefund, cmd.OrderID(),
		func(ctx context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if header.Status() == order.StatusRefunded {
				return outcome{}, nil
			}

			if _, err := header.Status().Refund(); err != nil {
				return outcome{}, err
			}
			if !header.RequiresRefund() {
				return outcome{}, errs.NewValueIsInvalidErrorWithCause(
					"payment status is invalid",
					fmt.Errorf("order %d has no captured payment to refund (%s)", header.ID(), header.PaymentStatus()),
				)
			}

			if err := h.mutator.refund(ctx, header); err != nil {
				return outcome{}, err
			}
			if err := header.CloseAsRefunded(); err != nil {
				return outcome{}, err
			}
			return outcome{changed: true, refunded: true}, nil
		})
	return err
}

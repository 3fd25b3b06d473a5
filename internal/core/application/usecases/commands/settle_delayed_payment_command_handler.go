package commands

import (
	"context"
	"errors"
	"fmt"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"
)

const operationSettle = "settle"

// SettleDelayedPaymentCommandHandler captures the payment of an order that was
// confirmed on credit.
type SettleDelayedPaymentCommandHandler struct {
	mutator orderMutator
}

func NewSettleDelayedPaymentCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	deps LifecycleDeps,
) SettleDelayedPaymentCommandHandler {
	return SettleDelayedPaymentCommandHandler{
		mutator: newOrderMutator(uowFactory, gateway, deps),
	}
}

func (h *SettleDelayedPaymentCommandHandler) Handle(ctx context.Context, cmd SettleDelayedPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationSettle, cmd.OrderID(),
		func(ctx context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if header.PaymentStatus() != order.PaymentStatusDelayedPayment {
				return outcome{}, errs.NewValueIsInvalidErrorWithCause(
					"payment status is invalid",
					fmt.Errorf("%s is not a delayed payment", header.PaymentStatus()),
				)
			}
			if h.mutator.gateway == nil {
				return outcome{}, errs.NewGatewayError(operationSettle, errors.New("no payment gateway configured"))
			}

			res, err := h.mutator.gateway.CreateCharge(ctx, ports.ChargeRequest{
				Amount:         header.Total(),
				Description:    fmt.Sprintf("Order %d", header.ID()),
				IdempotencyKey: header.ChargeIdempotencyKey(),
				Customer:       cmd.Customer(),
				PaymentMethod:  cmd.PaymentMethod(),
			})
			if err != nil {
				h.mutator.deps.Metrics.RecordGatewayFailure(operationSettle)
				return outcome{}, errs.NewGatewayError(fmt.Sprintf("charge order %d", header.ID()), err)
			}

			if err := header.ApprovePayment(res.PaymentReference, h.mutator.deps.Now()); err != nil {
				return outcome{}, err
			}
			return outcome{changed: true}, nil
		})
	return err
}

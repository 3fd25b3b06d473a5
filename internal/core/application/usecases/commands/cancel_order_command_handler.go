package commands

import (
	"context"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
)

const operationCancel = "cancel"

// CancelOrderCommandHandler cancels an order and, when its payment was
// captured, refunds it through the payment gateway before committing.
//
// The handler re-reads the order under a row lock, so two concurrent
// cancellations of the same order are serialised and the second one sees
// the order already Cancelled.
type CancelOrderCommandHandler struct {
	mutator orderMutator
}

func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	deps LifecycleDeps,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		mutator: newOrderMutator(uowFactory, gateway, deps),
	}
}

// Handle returns nil for an order that already is Cancelled without calling the
// gateway or saving. Shipped and Refunded orders are rejected with
// errs.ErrValueIsInvalid; money for a shipped order is returned through
// RefundOrderCommandHandler instead. A gateway failure is returned as
// errs.ErrGateway and the order is left untouched.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.mutator.run(ctx, operationCancel, cmd.OrderID(),
		func(ctx context.Context, _ OrderUoW, header *order.Header) (outcome, error) {
			if header.Status() == order.StatusCancelled {
				return outcome{}, nil
			}

			if err := header.ValidateCancel(); err != nil {
				return outcome{}, err
			}

			result := outcome{changed: true}
			if header.RequiresRefund() {
				if err := h.mutator.refund(ctx, header); err != nil {
					return outcome{}, err
				}
				result.refunded = true
			}

			if err := header.Cancel(); err != nil {
				return outcome{}, err
			}
			return result, nil
		})
	return err
}

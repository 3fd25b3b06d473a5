package commands_test

import (
	"context"
	"errors"
	"testing"

	"shoppingcart/internal/adapters/out/payment"
	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRefundOrderCommandHandler_Handle_ShippedOrderIsRefunded(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRefundOrderCommand(6)
	require.NoError(t, err)

	header := storedHeader(t, 6, order.StatusShipped, order.PaymentStatusApproved, "pi_606")
	m := newOrderUoWMocks()
	m.expectCommittedMutation(ctx, header)
	gateway := payment.NewMemoryGateway(quietLogger())

	handler := commands.NewRefundOrderCommandHandler(m.factory, gateway, testDeps(nil))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.StatusRefunded, header.Status())
	assert.Equal(t, order.PaymentStatusRefunded, header.PaymentStatus())
	assert.NotEmpty(t, header.RefundID())
	assert.Equal(t, 1, gateway.RefundsIssued())
	assert.True(t, gateway.RefundedAmount("pi_606").IsEqual(header.Total()))
	m.assert(t)
}

func TestRefundOrderCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		status order.Status
		pay    order.PaymentStatus
		ref    string
	}{
		{name: "not shipped", status: order.StatusProcessing, pay: order.PaymentStatusApproved, ref: "pi_1"},
		{name: "delayed payment never captured", status: order.StatusShipped, pay: order.PaymentStatusDelayedPayment},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cmd, err := commands.NewRefundOrderCommand(6)
			require.NoError(t, err)

			header := storedHeader(t, 6, tt.status, tt.pay, tt.ref)
			m := newOrderUoWMocks()
			m.expectRejectedMutation(ctx, header)
			gateway := new(MockPaymentGateway)

			handler := commands.NewRefundOrderCommandHandler(m.factory, gateway, testDeps(nil))
			err = handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			gateway.AssertNotCalled(t, "CreateRefund", mock.Anything, mock.Anything)
			m.uow.AssertNotCalled(t, "Save", mock.Anything)
		})
	}
}

func TestRefundOrderCommandHandler_Handle_GatewayFailure(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRefundOrderCommand(6)
	require.NoError(t, err)

	header := storedHeader(t, 6, order.StatusShipped, order.PaymentStatusApproved, "pi_606")
	m := newOrderUoWMocks()
	m.expectRejectedMutation(ctx, header)
	gateway := payment.NewMemoryGateway(quietLogger())
	gateway.RefundErr = errors.New("processor timeout")

	handler := commands.NewRefundOrderCommandHandler(m.factory, gateway, testDeps(nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrGateway)
	assert.Equal(t, order.StatusShipped, header.Status())
	assert.Equal(t, 0, gateway.RefundsIssued())
	m.uow.AssertNotCalled(t, "Save", mock.Anything)
}

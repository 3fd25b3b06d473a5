package commands_test

import (
	"context"
	"testing"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/ports"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSettleDelayedPaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewSettleDelayedPaymentCommand(12, "cus_1", "pm_card_visa")
	require.NoError(t, err)

	header := storedHeader(t, 12, order.StatusShipped, order.PaymentStatusDelayedPayment, "")
	m := newOrderUoWMocks()
	m.expectCommittedMutation(ctx, header)

	gateway := new(MockPaymentGateway)
	gateway.On("CreateCharge", ctx, mock.MatchedBy(func(req ports.ChargeRequest) bool {
		return req.IdempotencyKey == "order-12-charge" &&
			req.Amount.IsEqual(testMoney(t, "45.50")) &&
			req.Customer == "cus_1" &&
			req.PaymentMethod == "pm_card_visa"
	})).Return(ports.ChargeResult{PaymentReference: "pi_settled", Status: "succeeded"}, nil).Once()

	handler := commands.NewSettleDelayedPaymentCommandHandler(m.factory, gateway, testDeps(nil))
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, order.PaymentStatusApproved, header.PaymentStatus())
	assert.Equal(t, order.StatusShipped, header.Status())
	assert.Equal(t, "pi_settled", header.PaymentIntentID())
	require.NotNil(t, header.PaymentDate())
	assert.True(t, header.PaymentDate().Equal(now))
	gateway.AssertExpectations(t)
	m.assert(t)
}

func TestSettleDelayedPaymentCommandHandler_Handle_NotDelayed(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewSettleDelayedPaymentCommand(12, "", "")
	require.NoError(t, err)

	header := storedHeader(t, 12, order.StatusConfirmed, order.PaymentStatusApproved, "pi_1")
	m := newOrderUoWMocks()
	m.expectRejectedMutation(ctx, header)
	gateway := new(MockPaymentGateway)

	handler := commands.NewSettleDelayedPaymentCommandHandler(m.factory, gateway, testDeps(nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	gateway.AssertNotCalled(t, "CreateCharge", mock.Anything, mock.Anything)
}

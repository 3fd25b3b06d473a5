package commands_test

import (
	"context"
	"testing"

	"shoppingcart/internal/core/application/usecases/commands"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordPaymentCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name          string
		outcome       order.PaymentStatus
		ref           string
		wantStatus    order.Status
		wantPayStatus order.PaymentStatus
	}{
		{
			name:          "approved confirms the order",
			outcome:       order.PaymentStatusApproved,
			ref:           "pi_777",
			wantStatus:    order.StatusConfirmed,
			wantPayStatus: order.PaymentStatusApproved,
		},
		{
			name:          "rejected keeps the order pending",
			outcome:       order.PaymentStatusRejected,
			wantStatus:    order.StatusPending,
			wantPayStatus: order.PaymentStatusRejected,
		},
		{
			name:          "delayed payment confirms the order",
			outcome:       order.PaymentStatusDelayedPayment,
			wantStatus:    order.StatusConfirmed,
			wantPayStatus: order.PaymentStatusDelayedPayment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			cmd, err := commands.NewRecordPaymentCommand(8, tt.outcome, tt.ref, "cs_test_1")
			require.NoError(t, err)

			header := storedHeader(t, 8, order.StatusPending, order.PaymentStatusPending, "")
			m := newOrderUoWMocks()
			m.expectCommittedMutation(ctx, header)

			handler := commands.NewRecordPaymentCommandHandler(m.factory, testDeps(nil))
			require.NoError(t, handler.Handle(ctx, cmd))

			assert.Equal(t, tt.wantStatus, header.Status())
			assert.Equal(t, tt.wantPayStatus, header.PaymentStatus())
			assert.Equal(t, "cs_test_1", header.SessionID())
			assert.Equal(t, tt.ref, header.PaymentIntentID())
			m.assert(t)
		})
	}
}

func TestRecordPaymentCommandHandler_Handle_RepeatedApprovalIsNoop(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRecordPaymentCommand(8, order.PaymentStatusApproved, "pi_777", "")
	require.NoError(t, err)

	header := storedHeader(t, 8, order.StatusConfirmed, order.PaymentStatusApproved, "pi_777")
	m := newOrderUoWMocks()
	m.expectRejectedMutation(ctx, header)

	handler := commands.NewRecordPaymentCommandHandler(m.factory, testDeps(nil))
	require.NoError(t, handler.Handle(ctx, cmd))

	m.uow.AssertNotCalled(t, "Save", mock.Anything)
	m.assert(t)
}

func TestRecordPaymentCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewRecordPaymentCommand(8, order.PaymentStatusRejected, "", "")
	require.NoError(t, err)

	header := storedHeader(t, 8, order.StatusConfirmed, order.PaymentStatusApproved, "pi_777")
	m := newOrderUoWMocks()
	m.expectRejectedMutation(ctx, header)

	handler := commands.NewRecordPaymentCommandHandler(m.factory, testDeps(nil))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.PaymentStatusApproved, header.PaymentStatus())
	m.uow.AssertNotCalled(t, "Save", mock.Anything)
}

func TestNewRecordPaymentCommand(t *testing.T) {
	_, err := commands.NewRecordPaymentCommand(1, order.PaymentStatusApproved, " ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewRecordPaymentCommand(1, order.PaymentStatusRefunded, "pi_1", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = commands.NewRecordPaymentCommand(0, order.PaymentStatusRejected, "", "")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewRecordPaymentCommand(1, order.PaymentStatusApproved, " pi_1 ", " cs_1 ")
	require.NoError(t, err)
	assert.Equal(t, "pi_1", cmd.PaymentReference())
	assert.Equal(t, "cs_1", cmd.SessionID())
}

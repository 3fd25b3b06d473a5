package order

import (
	"fmt"

	"shoppingcart/internal/pkg/errs"
)

// PaymentStatus is the money-movement state of an order, independent of Status.
//
// State transitions:
//
//	Pending ──┬──> Approved ──> Refunded
//	          ├──> Rejected ──> Approved
//	          └──> DelayedPayment ──> Approved
//
// Only Approved payments can be refunded; every other state means no money was
// captured and cancellation must not contact the payment gateway.
type PaymentStatus int

const (
	PaymentStatusUnknown PaymentStatus = iota
	PaymentStatusPending
	PaymentStatusApproved
	PaymentStatusRejected
	PaymentStatusRefunded
	PaymentStatusDelayedPayment
)

func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentStatusUnknown:        "Unknown",
		PaymentStatusPending:        "Pending",
		PaymentStatusApproved:       "Approved",
		PaymentStatusRejected:       "Rejected",
		PaymentStatusRefunded:       "Refunded",
		PaymentStatusDelayedPayment: "DelayedPayment",
	}
}

// ParsePaymentStatus converts a name produced by String back into a PaymentStatus.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	for status, name := range getPaymentStatusStrings() {
		if name == s && status != PaymentStatusUnknown {
			return status, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%q is not a valid payment status", s),
	)
}

func (s PaymentStatus) Validate() error {
	if s <= PaymentStatusUnknown || s > PaymentStatusDelayedPayment {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%d is not a valid payment status", s),
		)
	}
	return nil
}

func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCaptured reports whether money was actually taken from the customer.
func (s PaymentStatus) IsCaptured() bool {
	return s == PaymentStatusApproved
}

// Approve transitions Pending, Rejected or DelayedPayment -> Approved.
func (s PaymentStatus) Approve() (PaymentStatus, error) {
	return s.transition(PaymentStatusApproved, PaymentStatusPending, PaymentStatusRejected, PaymentStatusDelayedPayment)
}

// Reject transitions Pending -> Rejected.
func (s PaymentStatus) Reject() (PaymentStatus, error) {
	return s.transition(PaymentStatusRejected, PaymentStatusPending)
}

// Delay transitions Pending -> DelayedPayment.
func (s PaymentStatus) Delay() (PaymentStatus, error) {
	return s.transition(PaymentStatusDelayedPayment, PaymentStatusPending)
}

// Refund transitions Approved -> Refunded.
func (s PaymentStatus) Refund() (PaymentStatus, error) {
	return s.transition(PaymentStatusRefunded, PaymentStatusApproved)
}

func (s PaymentStatus) transition(to PaymentStatus, from ...PaymentStatus) (PaymentStatus, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return PaymentStatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"payment status is invalid",
		fmt.Errorf("%s is not a valid payment status to move to %s", s, to),
	)
}

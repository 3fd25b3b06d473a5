package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/user"
	"shoppingcart/internal/pkg/errs"
)

// DelayedPaymentTerm is how long a DelayedPayment customer has to pay after shipment.
const DelayedPaymentTerm = 30 * 24 * time.Hour

var (
	ErrHeaderIsNotConstructed = errors.New("Header must be created via NewHeader or RestoreHeader constructor")
	ErrHeaderIDAlreadySet     = errors.New("order identity is already assigned")
	// ErrPaymentReferenceRequired guards the Approved-payment invariant.
	ErrPaymentReferenceRequired = errs.NewValueIsRequiredError("payment reference")
)

// HeaderState is the full persisted state of a Header. Repositories use it to
// map between the aggregate and its storage representation.
type HeaderState struct {
	ID              int64
	UserID          string
	OrderDate       time.Time
	ShippingDate    *time.Time
	Total           kernel.Money
	Status          Status
	PaymentStatus   PaymentStatus
	PaymentIntentID string
	SessionID       string
	PaymentDate     *time.Time
	PaymentDueDate  *time.Time
	RefundID        string
	Carrier         string
	TrackingNumber  string
	Contact         Contact
}

// Header is the order aggregate root. Its line items (Detail) reference it by id.
//
// Header follows these invariants:
//   - Status and PaymentStatus are always valid values of their enumerations
//   - PaymentStatus Approved implies a non-empty payment reference
//   - Status changes only through the transition methods below
type Header struct {
	state         HeaderState
	user          *user.ApplicationUser
	isConstructed bool
}

// NewHeader creates a checkout-time order in Pending/Pending with no identity yet.
func NewHeader(userID string, contact Contact, total kernel.Money, orderDate time.Time) (*Header, error) {
	h := &Header{isConstructed: true}
	h.state.Status = StatusPending
	h.state.PaymentStatus = PaymentStatusPending
	h.state.OrderDate = orderDate.UTC()

	if err := errors.Join(
		h.setUserID(userID),
		h.setContact(contact),
		h.setTotal(total),
	); err != nil {
		return nil, err
	}

	return h, nil
}

// RestoreHeader rebuilds a persisted header, re-checking every invariant so that
// corrupted rows surface as errors instead of silently entering the state machine.
func RestoreHeader(s HeaderState) (*Header, error) {
	h := &Header{isConstructed: true}
	if s.ID <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", s.ID))
	}

	if err := errors.Join(
		h.setUserID(s.UserID),
		h.setContact(s.Contact),
		h.setTotal(s.Total),
		s.Status.Validate(),
		s.PaymentStatus.Validate(),
	); err != nil {
		return nil, err
	}
	if s.PaymentStatus == PaymentStatusApproved && strings.TrimSpace(s.PaymentIntentID) == "" {
		return nil, ErrPaymentReferenceRequired
	}

	userID, contact, total := h.state.UserID, h.state.Contact, h.state.Total
	h.state = s
	h.state.UserID, h.state.Contact, h.state.Total = userID, contact, total
	return h, nil
}

func (h *Header) Validate() error {
	if h == nil || !h.isConstructed {
		return ErrHeaderIsNotConstructed
	}
	return nil
}

// State returns a copy of the persisted state.
func (h *Header) State() HeaderState {
	return h.state
}

func (h *Header) ID() int64                    { return h.state.ID }
func (h *Header) UserID() string               { return h.state.UserID }
func (h *Header) OrderDate() time.Time         { return h.state.OrderDate }
func (h *Header) ShippingDate() *time.Time     { return h.state.ShippingDate }
func (h *Header) Total() kernel.Money          { return h.state.Total }
func (h *Header) Status() Status               { return h.state.Status }
func (h *Header) PaymentStatus() PaymentStatus { return h.state.PaymentStatus }
func (h *Header) PaymentIntentID() string      { return h.state.PaymentIntentID }
func (h *Header) SessionID() string            { return h.state.SessionID }
func (h *Header) PaymentDate() *time.Time      { return h.state.PaymentDate }
func (h *Header) PaymentDueDate() *time.Time   { return h.state.PaymentDueDate }
func (h *Header) RefundID() string             { return h.state.RefundID }
func (h *Header) Carrier() string              { return h.state.Carrier }
func (h *Header) TrackingNumber() string       { return h.state.TrackingNumber }
func (h *Header) Contact() Contact             { return h.state.Contact }

// User returns the expanded customer, or nil when it was not loaded.
func (h *Header) User() *user.ApplicationUser {
	return h.user
}

// AttachUser sets the expanded customer. It must be the order's owner.
func (h *Header) AttachUser(u *user.ApplicationUser) error {
	if err := u.Validate(); err != nil {
		return err
	}
	if u.ID() != h.state.UserID {
		return errs.NewValueIsInvalidErrorWithCause(
			"user is invalid",
			fmt.Errorf("user %s does not own order %d", u.ID(), h.state.ID),
		)
	}
	h.user = u
	return nil
}

// AssignID records the identity generated by the store on insert.
func (h *Header) AssignID(id int64) error {
	if h.state.ID != 0 {
		return ErrHeaderIDAlreadySet
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("order id is invalid", fmt.Errorf("%d is not greater than 0", id))
	}
	h.state.ID = id
	return nil
}

// RefundIdempotencyKey identifies the one refund an order may ever receive.
// Re-sending a refund with the same key must not move money twice.
func (h *Header) RefundIdempotencyKey() string {
	return fmt.Sprintf("order-%d-refund", h.state.ID)
}

// ChargeIdempotencyKey identifies the settlement charge of a delayed payment.
func (h *Header) ChargeIdempotencyKey() string {
	return fmt.Sprintf("order-%d-charge", h.state.ID)
}

// SetSessionID records the checkout session created at the payment provider.
func (h *Header) SetSessionID(sessionID string) {
	h.state.SessionID = strings.TrimSpace(sessionID)
}

// ApprovePayment records a captured payment. A Pending order becomes Confirmed;
// an order past Pending (delayed payment being settled) keeps its status.
func (h *Header) ApprovePayment(paymentReference string, at time.Time) error {
	paymentReference = strings.TrimSpace(paymentReference)
	if paymentReference == "" {
		return ErrPaymentReferenceRequired
	}

	newPaymentStatus, err := h.state.PaymentStatus.Approve()
	if err != nil {
		return err
	}

	newStatus := h.state.Status
	if h.state.Status == StatusPending {
		if newStatus, err = h.state.Status.Confirm(); err != nil {
			return err
		}
	}

	paidAt := at.UTC()
	h.state.PaymentStatus = newPaymentStatus
	h.state.Status = newStatus
	h.state.PaymentIntentID = paymentReference
	h.state.PaymentDate = &paidAt
	return nil
}

// RejectPayment records a declined payment. The order stays Pending.
func (h *Header) RejectPayment() error {
	newPaymentStatus, err := h.state.PaymentStatus.Reject()
	if err != nil {
		return err
	}
	h.state.PaymentStatus = newPaymentStatus
	return nil
}

// GrantDelayedPayment confirms the order on credit: it may ship before payment.
func (h *Header) GrantDelayedPayment() error {
	newPaymentStatus, err := h.state.PaymentStatus.Delay()
	if err != nil {
		return err
	}
	newStatus, err := h.state.Status.Confirm()
	if err != nil {
		return err
	}
	h.state.PaymentStatus = newPaymentStatus
	h.state.Status = newStatus
	return nil
}

// StartProcessing moves a Confirmed order into fulfilment.
func (h *Header) StartProcessing() error {
	newStatus, err := h.state.Status.StartProcessing()
	if err != nil {
		return err
	}
	h.state.Status = newStatus
	return nil
}

// Ship marks the order as handed to the carrier. Orders on delayed payment get a
// payment due date DelayedPaymentTerm after shipment.
func (h *Header) Ship(carrier, trackingNumber string, at time.Time) error {
	carrier, trackingNumber = strings.TrimSpace(carrier), strings.TrimSpace(trackingNumber)
	if err := errors.Join(required("carrier", carrier), required("tracking number", trackingNumber)); err != nil {
		return err
	}

	newStatus, err := h.state.Status.Ship()
	if err != nil {
		return err
	}

	shippedAt := at.UTC()
	h.state.Status = newStatus
	h.state.Carrier = carrier
	h.state.TrackingNumber = trackingNumber
	h.state.ShippingDate = &shippedAt
	if h.state.PaymentStatus == PaymentStatusDelayedPayment {
		due := shippedAt.Add(DelayedPaymentTerm)
		h.state.PaymentDueDate = &due
	}
	return nil
}

// RequiresRefund reports whether cancelling or returning this order must first
// give money back to the customer.
func (h *Header) RequiresRefund() bool {
	return h.state.PaymentStatus.IsCaptured()
}

// ValidateCancel checks that the order may still be cancelled without changing it.
func (h *Header) ValidateCancel() error {
	return h.state.Status.ValidateCancel()
}

// Cancel moves the order to Cancelled. If the payment was captured, MarkRefunded
// must have been called first; otherwise the customer's money would be kept.
func (h *Header) Cancel() error {
	if h.RequiresRefund() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("order %d has a captured payment that must be refunded before cancelling", h.state.ID),
		)
	}
	newStatus, err := h.state.Status.Cancel()
	if err != nil {
		return err
	}
	h.state.Status = newStatus
	return nil
}

// MarkRefunded records the refund issued by the payment gateway.
func (h *Header) MarkRefunded(refundID string) error {
	refundID = strings.TrimSpace(refundID)
	if refundID == "" {
		return errs.NewValueIsRequiredError("refund id")
	}
	newPaymentStatus, err := h.state.PaymentStatus.Refund()
	if err != nil {
		return err
	}
	h.state.PaymentStatus = newPaymentStatus
	h.state.RefundID = refundID
	return nil
}

// CloseAsRefunded finishes a returned Shipped order whose payment was refunded.
func (h *Header) CloseAsRefunded() error {
	if h.state.PaymentStatus != PaymentStatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause(
			"payment status is invalid",
			fmt.Errorf("%s is not a valid payment status to close order as refunded", h.state.PaymentStatus),
		)
	}
	newStatus, err := h.state.Status.Refund()
	if err != nil {
		return err
	}
	h.state.Status = newStatus
	return nil
}

// UpdateContact replaces the shipping contact.
func (h *Header) UpdateContact(contact Contact) error {
	if h.state.Status.IsFinal() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s orders cannot be edited", h.state.Status),
		)
	}
	return h.setContact(contact)
}

// UpdateShipment overwrites carrier and tracking number when given non-empty values.
func (h *Header) UpdateShipment(carrier, trackingNumber string) {
	if carrier = strings.TrimSpace(carrier); carrier != "" {
		h.state.Carrier = carrier
	}
	if trackingNumber = strings.TrimSpace(trackingNumber); trackingNumber != "" {
		h.state.TrackingNumber = trackingNumber
	}
}

func (h *Header) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	h.state.UserID = userID
	return nil
}

func (h *Header) setContact(contact Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	h.state.Contact = contact
	return nil
}

func (h *Header) setTotal(total kernel.Money) error {
	if err := total.Validate(); err != nil {
		return err
	}
	h.state.Total = total
	return nil
}

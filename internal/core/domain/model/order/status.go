package order

import (
	"fmt"

	"shoppingcart/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Refunded
//	   │            │              │
//	   └────────────┴──────────────┴──> Cancelled
//
// Cancelled and Refunded are final.
type Status int

const (
	// StatusUnknown helps catch uninitialized Status values.
	StatusUnknown Status = iota
	StatusPending
	StatusConfirmed
	StatusProcessing
	StatusShipped
	StatusCancelled
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusCancelled:  "Cancelled",
		StatusRefunded:   "Refunded",
	}
}

// ParseStatus converts a name produced by String back into a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that s is one of the known statuses.
func (s Status) Validate() error {
	if s <= StatusUnknown || s > StatusRefunded {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == StatusCancelled || s == StatusRefunded
}

// Confirm transitions Pending -> Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition(StatusConfirmed, StatusPending)
}

// StartProcessing transitions Confirmed -> Processing.
func (s Status) StartProcessing() (Status, error) {
	return s.transition(StatusProcessing, StatusConfirmed)
}

// Ship transitions Processing -> Shipped.
func (s Status) Ship() (Status, error) {
	return s.transition(StatusShipped, StatusProcessing)
}

// ValidateCancel checks whether an order in this status may still be cancelled.
// Shipped orders must go through Refund instead.
func (s Status) ValidateCancel() error {
	_, err := s.Cancel()
	return err
}

// Cancel transitions Pending, Confirmed or Processing -> Cancelled.
func (s Status) Cancel() (Status, error) {
	return s.transition(StatusCancelled, StatusPending, StatusConfirmed, StatusProcessing)
}

// Refund transitions Shipped -> Refunded.
func (s Status) Refund() (Status, error) {
	return s.transition(StatusRefunded, StatusShipped)
}

func (s Status) transition(to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to move to %s", s, to),
	)
}

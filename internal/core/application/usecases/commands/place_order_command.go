package commands

import (
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// OrderLine is one requested product of a checkout.
type OrderLine struct {
	ProductID int64
	Quantity  int
}

// PlaceOrderCommand turns a checked-out cart into a Pending order.
//
// Example:
//
//	contact, _ := order.NewContact("Ada", "555-0100", "1 Main St", "Springfield", "IL", "62701")
//	cmd, err := NewPlaceOrderCommand(userID, contact, []OrderLine{{ProductID: 7, Quantity: 2}})
//	if err != nil {
//	    return err
//	}
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	userID  string
	contact order.Contact
	lines   []OrderLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the checkout. Lines for the same product are merged.
func NewPlaceOrderCommand(userID string, contact order.Contact, lines []OrderLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setUserID(userID),
		cmd.setContact(contact),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) UserID() string         { return c.userID }
func (c PlaceOrderCommand) Contact() order.Contact { return c.contact }

// Lines returns a copy of the merged lines in first-seen order.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

// ProductIDs returns the distinct products of the order.
func (c PlaceOrderCommand) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c.lines))
	for _, l := range c.lines {
		ids = append(ids, l.ProductID)
	}
	return ids
}

func (c *PlaceOrderCommand) setUserID(userID string) error {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	c.userID = userID
	return nil
}

func (c *PlaceOrderCommand) setContact(contact order.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("order lines")
	}

	merged := make([]OrderLine, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for _, l := range lines {
		if l.ProductID <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("product id is invalid", fmt.Errorf("%d is not greater than 0", l.ProductID))
		}
		if i, ok := index[l.ProductID]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[l.ProductID] = len(merged)
		merged = append(merged, l)
	}

	for _, l := range merged {
		if l.Quantity < order.MinQuantity || l.Quantity > order.MaxQuantity {
			return errs.NewValueIsOutOfRangeError("quantity", l.Quantity, order.MinQuantity, order.MaxQuantity)
		}
	}

	c.lines = merged
	return nil
}

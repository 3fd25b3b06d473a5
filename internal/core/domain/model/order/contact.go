package order

import (
	"errors"
	"strings"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrContactIsNotConstructed = errs.NewValueIsRequiredError("contact must be created via NewContact")

// Contact is where and to whom an order ships. Every field is required.
type Contact struct {
	name          string
	phoneNumber   string
	streetAddress string
	city          string
	state         string
	postalCode    string
	guard         guard.ConstructorGuard
}

func NewContact(name, phoneNumber, streetAddress, city, state, postalCode string) (Contact, error) {
	c := Contact{
		name:          strings.TrimSpace(name),
		phoneNumber:   strings.TrimSpace(phoneNumber),
		streetAddress: strings.TrimSpace(streetAddress),
		city:          strings.TrimSpace(city),
		state:         strings.TrimSpace(state),
		postalCode:    strings.TrimSpace(postalCode),
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		required("name", c.name),
		required("phone number", c.phoneNumber),
		required("street address", c.streetAddress),
		required("city", c.city),
		required("state", c.state),
		required("postal code", c.postalCode),
	); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string          { return c.name }
func (c Contact) PhoneNumber() string   { return c.phoneNumber }
func (c Contact) StreetAddress() string { return c.streetAddress }
func (c Contact) City() string          { return c.city }
func (c Contact) State() string         { return c.state }
func (c Contact) PostalCode() string    { return c.postalCode }

func required(param, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(param)
	}
	return nil
}

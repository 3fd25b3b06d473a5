// Package user provides the ApplicationUser entity: the customer who places orders.
package user

import (
	"errors"
	"net/mail"
	"strings"

	"shoppingcart/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrApplicationUserIsNotConstructed = errors.New(
	"ApplicationUser must be created via NewApplicationUser constructor",
)

// ApplicationUser is a registered customer. Its identity is a UUID string issued by
// the identity provider, so it exists before the user is persisted here.
type ApplicationUser struct {
	id            string
	name          string
	email         string
	phoneNumber   string
	isConstructed bool
}

// NewApplicationUser validates and builds a user.
func NewApplicationUser(id, name, email, phoneNumber string) (*ApplicationUser, error) {
	u := &ApplicationUser{
		phoneNumber:   strings.TrimSpace(phoneNumber),
		isConstructed: true,
	}
	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setEmail(email),
	); err != nil {
		return nil, err
	}
	return u, nil
}

// NewUserID returns a fresh identity for users created outside an identity provider.
func NewUserID() string {
	return uuid.NewString()
}

func (u *ApplicationUser) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrApplicationUserIsNotConstructed
	}
	return nil
}

func (u *ApplicationUser) ID() string {
	return u.id
}

func (u *ApplicationUser) Name() string {
	return u.name
}

func (u *ApplicationUser) Email() string {
	return u.email
}

func (u *ApplicationUser) PhoneNumber() string {
	return u.phoneNumber
}

func (u *ApplicationUser) setID(id string) error {
	parsed, err := uuid.Parse(strings.TrimSpace(id))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("user id is invalid", err)
	}
	u.id = parsed.String()
	return nil
}

func (u *ApplicationUser) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("user name")
	}
	u.name = name
	return nil
}

func (u *ApplicationUser) setEmail(email string) error {
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("email is invalid", err)
	}
	u.email = addr.Address
	return nil
}

package ports

import (
	"context"

	"shoppingcart/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for application users.
// User identities are assigned by the caller, not by the store.
type UserRepository interface {
	GetAll(ctx context.Context) ([]*user.ApplicationUser, error)

	Get(ctx context.Context, id string) (*user.ApplicationUser, error)

	Add(ctx context.Context, u *user.ApplicationUser) error

	Update(ctx context.Context, u *user.ApplicationUser) error

	Delete(ctx context.Context, id string) error
}

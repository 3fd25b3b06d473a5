package user_test

import (
	"testing"

	"shoppingcart/internal/core/domain/model/user"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApplicationUser(t *testing.T) {
	id := user.NewUserID()

	t.Run("should create user", func(t *testing.T) {
		u, err := user.NewApplicationUser(id, "Ada", "ada@example.com", " 555-0100 ")
		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, id, u.ID())
		assert.Equal(t, "ada@example.com", u.Email())
		assert.Equal(t, "555-0100", u.PhoneNumber())
	})

	t.Run("should reject malformed id and email", func(t *testing.T) {
		_, err := user.NewApplicationUser("123", "Ada", "not-an-email", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "user id is invalid")
		assert.Contains(t, err.Error(), "email is invalid")
	})

	t.Run("should require name", func(t *testing.T) {
		_, err := user.NewApplicationUser(id, "", "ada@example.com", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

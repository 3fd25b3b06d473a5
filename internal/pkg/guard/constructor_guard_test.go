package guard_test

import (
	"errors"
	"testing"

	"shoppingcart/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("guard_embedded_in_owner", func(t *testing.T) {
		type command struct {
			id    int64
			guard guard.ConstructorGuard
		}
		errNotConstructed := errors.New("command must be created via constructor")

		built := command{id: 7, guard: guard.NewConstructorGuard()}
		var zero command

		require.NoError(t, built.guard.Validate(errNotConstructed))
		require.ErrorIs(t, zero.guard.Validate(errNotConstructed), errNotConstructed)
	})
}

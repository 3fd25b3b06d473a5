package order_test

import (
	"testing"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDetail(t *testing.T) {
	price, _ := kernel.MoneyFromString("19.99")

	t.Run("should compute line total", func(t *testing.T) {
		d, err := order.NewDetail(1, 2, 3, price)
		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "59.97", d.LineTotal().String())
		assert.Equal(t, int64(0), d.ID())
	})

	t.Run("should reject quantity out of range", func(t *testing.T) {
		for _, q := range []int{0, -1, order.MaxQuantity + 1} {
			_, err := order.NewDetail(1, 2, q, price)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})

	t.Run("should require references", func(t *testing.T) {
		_, err := order.NewDetail(0, 0, 1, price)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "order header id")
		assert.Contains(t, err.Error(), "product id")
	})
}

func TestDetail_AttachProduct(t *testing.T) {
	price, _ := kernel.MoneyFromString("5.00")
	d, err := order.RestoreDetail(7, 1, 2, 1, price)
	require.NoError(t, err)

	p, err := catalog.RestoreProduct(2, "Pen", "Blue ink", price, 1)
	require.NoError(t, err)
	require.NoError(t, d.AttachProduct(p))
	assert.Same(t, p, d.Product())

	other, err := catalog.RestoreProduct(3, "Pencil", "", price, 1)
	require.NoError(t, err)
	require.ErrorIs(t, d.AttachProduct(other), errs.ErrValueIsInvalid)
}

func TestDetail_ChangeQuantity(t *testing.T) {
	price, _ := kernel.MoneyFromString("2.50")
	d, err := order.RestoreDetail(1, 1, 1, 1, price)
	require.NoError(t, err)

	require.NoError(t, d.ChangeQuantity(4))
	assert.Equal(t, "10.00", d.LineTotal().String())
	require.Error(t, d.ChangeQuantity(0))
	assert.Equal(t, 4, d.Quantity())
	require.ErrorIs(t, d.AssignID(2), order.ErrDetailIDAlreadySet)
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/core/domain/model/kernel"
	"shoppingcart/internal/core/domain/model/order"
	"shoppingcart/internal/core/domain/model/user"
	"shoppingcart/internal/core/ports"

	"github.com/stretchr/testify/require"
)

var checkoutAt = time.Date(2025, 5, 2, 9, 30, 0, 0, time.UTC)

// seed stores one category, product and user and returns them.
type seed struct {
	category *catalog.Category
	product  *catalog.Product
	user     *user.ApplicationUser
}

func seedCatalog(t *testing.T, factory ports.UnitOfWorkFactory) seed {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx)

	c, err := catalog.NewCategory("Books")
	require.NoError(t, err)
	require.NoError(t, uow.CategoryRepository().Add(ctx, c))

	price, err := kernel.MoneyFromString("19.99")
	require.NoError(t, err)
	p, err := catalog.NewProduct("Go in Practice", "Paperback", price, c.ID())
	require.NoError(t, err)
	require.NoError(t, uow.ProductRepository().Add(ctx, p))

	u, err := user.NewApplicationUser(user.NewUserID(), "Ada Lovelace", "ada@example.com", "+44 1")
	require.NoError(t, err)
	require.NoError(t, uow.UserRepository().Add(ctx, u))

	require.NoError(t, uow.Save(ctx))
	return seed{category: c, product: p, user: u}
}

func newHeader(t *testing.T, userID string) *order.Header {
	t.Helper()
	contact, err := order.NewContact("Ada Lovelace", "+44 1", "12 St James's Sq", "London", "LDN", "SW1Y 4JH")
	require.NoError(t, err)
	total, err := kernel.MoneyFromString("39.98")
	require.NoError(t, err)
	h, err := order.NewHeader(userID, contact, total, checkoutAt)
	require.NoError(t, err)
	return h
}

// placeOrder stores a header with one two-item line for the seeded product.
func placeOrder(t *testing.T, factory ports.UnitOfWorkFactory, s seed) (*order.Header, *order.Detail) {
	t.Helper()
	ctx := context.Background()
	uow := factory.Create()
	require.NoError(t, uow.Begin(ctx))
	defer uow.Rollback(ctx)

	h := newHeader(t, s.user.ID())
	require.NoError(t, uow.OrderHeaderRepository().Add(ctx, h))

	d, err := order.NewDetail(h.ID(), s.product.ID(), 2, s.product.Price())
	require.NoError(t, err)
	require.NoError(t, uow.OrderDetailRepository().Add(ctx, d))

	require.NoError(t, uow.Save(ctx))
	return h, d
}

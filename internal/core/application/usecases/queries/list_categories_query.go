package queries

import (
	"errors"

	"shoppingcart/internal/pkg/guard"
)

var ErrListCategoriesQueryIsNotConstructed = errors.New(
	"ListCategoriesQuery must be created via NewListCategoriesQuery constructor",
)

// ListCategoriesQuery returns every category in store order.
type ListCategoriesQuery struct {
	guard guard.ConstructorGuard
}

func NewListCategoriesQuery() ListCategoriesQuery {
	return ListCategoriesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCategoriesQuery) Validate() error {
	return q.guard.Validate(ErrListCategoriesQueryIsNotConstructed)
}

type ListCategoriesQueryResponse struct {
	ID   int64
	Name string
}

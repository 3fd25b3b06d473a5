package commands

import (
	"errors"
	"fmt"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

type DeleteCategoryCommand struct {
	id int64

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(id int64) (DeleteCategoryCommand, error) {
	if id <= 0 {
		return DeleteCategoryCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"category id is invalid",
			fmt.Errorf("%d is not greater than 0", id),
		)
	}

	return DeleteCategoryCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) ID() int64 {
	return c.id
}

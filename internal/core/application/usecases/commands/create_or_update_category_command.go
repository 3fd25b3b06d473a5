package commands

import (
	"errors"
	"fmt"
	"strings"

	"shoppingcart/internal/core/domain/model/catalog"
	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrCreateOrUpdateCategoryCommandIsNotConstructed = errors.New(
	"CreateOrUpdateCategoryCommand must be created via NewCreateOrUpdateCategoryCommand constructor",
)

// CreateOrUpdateCategoryCommand creates a category when ID is 0 and renames
// the existing category otherwise.
//
// Example:
//
//	cmd, err := NewCreateOrUpdateCategoryCommand(0, "Books")
//	if err != nil {
//	    return fmt.Errorf("invalid category: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateOrUpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	id   int64
	name string

	guard guard.ConstructorGuard
}

// NewCreateOrUpdateCategoryCommand validates the submitted category. An invalid
// command never reaches a repository.
func NewCreateOrUpdateCategoryCommand(id int64, name string) (CreateOrUpdateCategoryCommand, error) {
	cmd := CreateOrUpdateCategoryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setID(id),
		cmd.setName(name),
	); err != nil {
		return CreateOrUpdateCategoryCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrUpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrUpdateCategoryCommandIsNotConstructed)
}

func (c CreateOrUpdateCategoryCommand) ID() int64 {
	return c.id
}

func (c CreateOrUpdateCategoryCommand) Name() string {
	return c.name
}

// IsCreate reports whether the command inserts a new category.
func (c CreateOrUpdateCategoryCommand) IsCreate() bool {
	return c.id == 0
}

func (c *CreateOrUpdateCategoryCommand) setID(id int64) error {
	if id < 0 {
		return errs.NewValueIsInvalidErrorWithCause("category id is invalid", fmt.Errorf("%d is negative", id))
	}
	c.id = id
	return nil
}

func (c *CreateOrUpdateCategoryCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("category name")
	}
	if len(name) > catalog.MaxCategoryNameLength {
		return errs.NewValueIsOutOfRangeError("category name length", len(name), 1, catalog.MaxCategoryNameLength)
	}
	c.name = name
	return nil
}

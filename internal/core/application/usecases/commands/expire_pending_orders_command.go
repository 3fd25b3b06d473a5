package commands

import (
	"errors"
	"fmt"
	"time"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// DefaultExpiryBatchSize bounds how many orders one expiry run cancels.
const DefaultExpiryBatchSize = 100

// ExpirePendingOrdersCommand cancels unpaid orders placed more than olderThan ago.
type ExpirePendingOrdersCommand struct {
	olderThan time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand uses DefaultExpiryBatchSize when batchSize is 0.
func NewExpirePendingOrdersCommand(olderThan time.Duration, batchSize int) (ExpirePendingOrdersCommand, error) {
	if olderThan <= 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"expiry age is invalid",
			fmt.Errorf("%s is not positive", olderThan),
		)
	}
	if batchSize < 0 {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size is invalid",
			fmt.Errorf("%d is negative", batchSize),
		)
	}
	if batchSize == 0 {
		batchSize = DefaultExpiryBatchSize
	}

	return ExpirePendingOrdersCommand{
		olderThan: olderThan,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) OlderThan() time.Duration { return c.olderThan }
func (c ExpirePendingOrdersCommand) BatchSize() int           { return c.batchSize }

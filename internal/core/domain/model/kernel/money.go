package kernel

import (
	"fmt"

	"shoppingcart/internal/pkg/errs"
	"shoppingcart/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned when a zero-value Money is used.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("money must be created via NewMoney or MoneyFromString")

// Money is a non-negative amount in the store currency, kept with exact decimal
// precision. The zero value is invalid; use NewMoney, MoneyFromString or ZeroMoney.
//
// Example:
//
//	price, err := kernel.MoneyFromString("19.99")
//	if err != nil {
//	    return err
//	}
//	total := price.Multiply(3) // 59.97
type Money struct { //nolint:recvcheck //using for validation
	amount decimal.Decimal
	guard  guard.ConstructorGuard
}

// NewMoney wraps amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount is invalid",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount is invalid", err)
	}
	return NewMoney(amount)
}

// ZeroMoney returns a valid zero amount.
func ZeroMoney() Money {
	return Money{
		amount: decimal.Zero,
		guard:  guard.NewConstructorGuard(),
	}
}

// Validate reports whether m was built by a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the underlying decimal value.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount.Add(other.amount),
		guard:  guard.NewConstructorGuard(),
	}
}

// Multiply returns m * quantity. Negative quantities yield zero.
func (m Money) Multiply(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{
		amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares amounts ignoring representation ("1.0" equals "1").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// MinorUnits returns the amount in cents, rounding half away from zero.
// Payment gateways take amounts in the currency's smallest unit.
func (m Money) MinorUnits() int64 {
	return m.amount.Shift(2).Round(0).IntPart()
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

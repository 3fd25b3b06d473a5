// Package kernel provides value objects shared by every aggregate of the
// shoppingcart domain.
//
// The package includes:
//   - Money: a non-negative, exact decimal amount used for prices, order totals
//     and refund amounts
//
// Value objects are immutable and must be created through their constructors;
// zero values fail Validate.
package kernel

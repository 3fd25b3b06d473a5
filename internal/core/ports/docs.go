// Package ports defines the contracts between the shoppingcart domain and its
// infrastructure: one statically typed repository per aggregate, the unit of
// work that binds them to a single transaction, the payment gateway and the
// order event publisher.
//
// Every repository follows the same shape:
//   - GetAll(ctx, includes...) returns every row ordered by id, never an error for "none"
//   - Get(ctx, id, includes...) returns errs.ErrObjectNotFound when no row matches
//   - Add stages an insert and assigns the generated identity back to the entity
//   - Update and Delete are keyed by identity and return errs.ErrObjectNotFound when no row matches
//
// Navigation expansion is requested with include options typed per repository,
// so asking an order repository to expand a product does not compile.
package ports

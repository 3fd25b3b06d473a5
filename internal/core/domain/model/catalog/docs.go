// Package catalog provides the Category and Product entities of the store catalog.
//
// Key business rules:
//   - A category must have a non-empty name
//   - A product must have a name, a positive price and a category reference
//   - Identities are assigned by the store on insert; zero means "not yet persisted"
//   - A category may only be deleted while no product references it (enforced by the
//     delete use case, which counts products through the repository)
package catalog

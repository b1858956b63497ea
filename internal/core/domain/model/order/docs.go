// Package order provides the domain model for customer orders. It implements
// the Order aggregate root together with its Item value object and Status
// lifecycle enum.
//
// Key business rules:
//   - Orders must have a valid unique identifier, a creation timestamp and
//     at least one line item
//   - Line items carry a product, a size (small, medium or big) and a
//     quantity of at least 1
//   - Pay and Cancel overwrite the status unconditionally; there are no
//     guard conditions on the previous state
//
// The package follows Domain-Driven Design principles, providing
// encapsulation and validation to ensure business rules are enforced.
package order

// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the food-ordering system.
// It implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - RiderDispatcher: binds a rider to an order while enforcing the
//     one-active-order-per-rider invariant; the rider selection policy is
//     pluggable.
package services

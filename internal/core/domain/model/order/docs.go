// Package order implements the order aggregate and its lifecycle state machine.
//
// An order moves along the lifecycle
//
//	Pending ──> Preparing ──> ReadyForPickup ──> OutForDelivery ──> Delivered
//	   │            │
//	   └────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Every transition is validated against
// a data-driven table that couples the legal edges with the actor roles allowed
// to drive them; the aggregate is the sole writer of the status value.
//
// A rider may be attached while the order is ReadyForPickup (in anticipation of
// pickup) or OutForDelivery; entering OutForDelivery requires a rider, and
// reaching a terminal status releases the rider automatically.
package order

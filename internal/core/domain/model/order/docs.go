// Package order holds the record types of the POS order engine and the
// rules that belong to a single order.
//
// The package includes:
//   - Order: the order record as supplied by the order API (lifecycle timestamps,
//     tax mode, discount, voucher, inventory flag)
//   - LineItem / LineItems: products on an order and the pure mutations applied to them
//   - Voucher: per-VAT-rate discount details issued outside the order
//   - Status and ResolveStatus: the single derivation of an order's status from its timestamps
//
// Lifecycle as seen by the engine:
//
//	new ──> confirmed ──> sent ──> completed
//	 │          │          │
//	 └──────────┴──────────┴──> cancelled
//
// Orders are never created or deleted here; callers load them, ask the domain
// services what is permitted, and persist the result themselves.
package order

// Package services provides the domain services of the order engine. They are
// pure functions over orders and line items already held in memory: no I/O,
// no shared state, and no errors for partially populated input.
//
// The package includes:
//   - ActionAuthorizer: decides which order and product actions are permitted
//     and explains rejections as Verdicts
//   - FinancialCalculator: computes goods, VAT, discount and payable amounts
//   - ActionLabel: button wording for an F&B configuration
//
// Both services read the order status through order.ResolveStatus and never
// inspect the lifecycle timestamps themselves.
package services

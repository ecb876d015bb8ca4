// Package kernel provides the value objects shared by the POS domain model.
//
// The package includes:
//   - UUID: identifier for orders, line items and products
//   - VATRate: a tax rate with the 0/5/8/10 percent buckets used in Vietnam
//   - RoundVND: presentation-time rounding of amounts to whole dong
package kernel

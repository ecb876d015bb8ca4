package kernel

import "github.com/shopspring/decimal"

// RoundVND rounds an amount to whole dong, half away from zero.
// The calculators never round; this is for receipts, reports and API output.
func RoundVND(amount float64) int64 {
	return decimal.NewFromFloat(amount).Round(0).IntPart()
}

package statement

import "github.com/shopspring/decimal"

// DefaultTolerance is one kuruş, the smallest representable monetary unit.
var DefaultTolerance = decimal.New(1, -2)

// Discrepancy annotates a balance sheet whose two sides disagree beyond
// tolerance. It is informational, never an error: the statement is still
// returned in full and the delta points at upstream data problems.
type Discrepancy struct {
	Delta      decimal.Decimal
	Assets     decimal.Decimal
	LiabEquity decimal.Decimal
}

// Check verifies assets = liabilities + equity within tolerance. Returns nil
// when the identity holds.
func Check(assets, liabEquity, tolerance decimal.Decimal) *Discrepancy {
	delta := assets.Sub(liabEquity)
	if delta.Abs().LessThanOrEqual(tolerance) {
		return nil
	}
	return &Discrepancy{Delta: delta, Assets: assets, LiabEquity: liabEquity}
}

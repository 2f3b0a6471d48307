package statement

import "github.com/shopspring/decimal"

// Ratio helpers over statement totals. All return ok=false instead of
// dividing by zero; values are rounded to four fraction digits.

const ratioPlaces = 4

// CurrentRatio is current assets over short-term liabilities.
func CurrentRatio(currentAssets, shortTermLiabilities decimal.Decimal) (decimal.Decimal, bool) {
	if shortTermLiabilities.IsZero() {
		return decimal.Zero, false
	}
	return currentAssets.Div(shortTermLiabilities).Round(ratioPlaces), true
}

// DebtToEquity is total liabilities over equity.
func DebtToEquity(totalLiabilities, equity decimal.Decimal) (decimal.Decimal, bool) {
	if equity.IsZero() {
		return decimal.Zero, false
	}
	return totalLiabilities.Div(equity).Round(ratioPlaces), true
}

// AltmanZInput bundles the statement totals the Z''-score draws on.
type AltmanZInput struct {
	CurrentAssets        decimal.Decimal
	TotalAssets          decimal.Decimal
	ShortTermLiabilities decimal.Decimal
	RetainedEarnings     decimal.Decimal
	PreTaxProfit         decimal.Decimal
	Equity               decimal.Decimal
	TotalLiabilities     decimal.Decimal
	NetSales             decimal.Decimal
}

// Altman Z'' coefficients for private firms.
var (
	zX1 = decimal.RequireFromString("0.717")
	zX2 = decimal.RequireFromString("0.847")
	zX3 = decimal.RequireFromString("3.107")
	zX4 = decimal.RequireFromString("0.420")
	zX5 = decimal.RequireFromString("0.998")
)

// AltmanZ computes the private-firm Z''-score from statement totals.
func AltmanZ(in AltmanZInput) (decimal.Decimal, bool) {
	if in.TotalAssets.IsZero() || in.TotalLiabilities.IsZero() || in.Equity.IsZero() {
		return decimal.Zero, false
	}
	workingCapital := in.CurrentAssets.Sub(in.ShortTermLiabilities)
	x1 := workingCapital.Div(in.TotalAssets)
	x2 := in.RetainedEarnings.Div(in.TotalAssets)
	x3 := in.PreTaxProfit.Div(in.TotalAssets)
	x4 := in.Equity.Div(in.TotalLiabilities)
	x5 := in.NetSales.Div(in.TotalAssets)

	score := zX1.Mul(x1).
		Add(zX2.Mul(x2)).
		Add(zX3.Mul(x3)).
		Add(zX4.Mul(x4)).
		Add(zX5.Mul(x5))
	return score.Round(ratioPlaces), true
}

package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
)

// Resolve converts raw debit/credit sums into a single signed net balance
// using the account's normal balance side. The result is positive when the
// account's activity runs in its conventional direction and negative when
// reversed. Contra treatment happens later, at the statement impact sign;
// the natural balance is intrinsic to the account.
func Resolve(agg Aggregate, side coa.BalanceSide) decimal.Decimal {
	if side == coa.SideCredit {
		return agg.CreditTotal.Sub(agg.DebitTotal)
	}
	return agg.DebitTotal.Sub(agg.CreditTotal)
}

// ResolveAll resolves every aggregate against the registry, returning
// account code -> net balance. Aggregates only exist for classifiable codes,
// so lookups here cannot fail.
func ResolveAll(aggs map[string]Aggregate, registry *coa.Registry) map[string]decimal.Decimal {
	balances := make(map[string]decimal.Decimal, len(aggs))
	for code, agg := range aggs {
		cls, err := registry.Classify(code)
		if err != nil {
			continue
		}
		balances[code] = Resolve(agg, cls.Side)
	}
	return balances
}

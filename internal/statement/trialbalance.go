package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/ledger"
)

// TrialBalanceRow is one account inside a trial balance group.
type TrialBalanceRow struct {
	Code   string
	Name   string
	Debit  decimal.Decimal
	Credit decimal.Decimal
	Net    decimal.Decimal
}

// TrialBalanceGroup collects the accounts of one account class.
type TrialBalanceGroup struct {
	Key    string
	Rows   []TrialBalanceRow
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance (mizan) lists grouped debit/credit totals per account. A
// balanced ledger has TotalDebit equal to TotalCredit.
type TrialBalance struct {
	Groups      []TrialBalanceGroup
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
}

// The uniform chart encodes the account class in the leading digit.
func trialBalanceKey(code string) string {
	if code == "" {
		return code
	}
	return code[:1]
}

// BuildTrialBalance converts resolved aggregates into a grouped trial
// balance ordered by account code.
func BuildTrialBalance(aggregates map[string]ledger.Aggregate) TrialBalance {
	groups := make(map[string]*TrialBalanceGroup)
	var keys []string
	for _, agg := range aggregates {
		key := trialBalanceKey(agg.AccountCode)
		grp, ok := groups[key]
		if !ok {
			grp = &TrialBalanceGroup{Key: key, Debit: decimal.Zero, Credit: decimal.Zero}
			groups[key] = grp
			keys = append(keys, key)
		}
		grp.Rows = append(grp.Rows, TrialBalanceRow{
			Code:   agg.AccountCode,
			Name:   agg.AccountName,
			Debit:  agg.DebitTotal,
			Credit: agg.CreditTotal,
			Net:    agg.DebitTotal.Sub(agg.CreditTotal),
		})
		grp.Debit = grp.Debit.Add(agg.DebitTotal)
		grp.Credit = grp.Credit.Add(agg.CreditTotal)
	}

	sort.Strings(keys)
	result := TrialBalance{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, key := range keys {
		grp := groups[key]
		sort.Slice(grp.Rows, func(i, j int) bool { return grp.Rows[i].Code < grp.Rows[j].Code })
		result.Groups = append(result.Groups, *grp)
		result.TotalDebit = result.TotalDebit.Add(grp.Debit)
		result.TotalCredit = result.TotalCredit.Add(grp.Credit)
	}
	return result
}

package ledger

import (
	"testing"

	"github.com/mizan-erp/mizan/internal/coa"
)

func TestResolveDebitNormal(t *testing.T) {
	agg := Aggregate{DebitTotal: dec("1500.00"), CreditTotal: dec("400.00")}
	if got := Resolve(agg, coa.SideDebit); !got.Equal(dec("1100.00")) {
		t.Fatalf("debit-normal net = %s, expected 1100.00", got)
	}
}

func TestResolveCreditNormal(t *testing.T) {
	agg := Aggregate{DebitTotal: dec("100.00"), CreditTotal: dec("1000.00")}
	if got := Resolve(agg, coa.SideCredit); !got.Equal(dec("900.00")) {
		t.Fatalf("credit-normal net = %s, expected 900.00", got)
	}
}

func TestResolveNegativeWhenReversed(t *testing.T) {
	// An asset account driven below zero stays negative, it is not clamped.
	agg := Aggregate{DebitTotal: dec("100.00"), CreditTotal: dec("250.00")}
	if got := Resolve(agg, coa.SideDebit); !got.Equal(dec("-150.00")) {
		t.Fatalf("reversed net = %s, expected -150.00", got)
	}
}

func TestResolveAll(t *testing.T) {
	registry := coa.DefaultRegistry()
	aggs := map[string]Aggregate{
		"100": {AccountCode: "100", DebitTotal: dec("1000.00"), CreditTotal: dec("0")},
		"500": {AccountCode: "500", DebitTotal: dec("0"), CreditTotal: dec("1000.00")},
		"257": {AccountCode: "257", DebitTotal: dec("0"), CreditTotal: dec("300.00")},
	}

	balances := ResolveAll(aggs, registry)
	if !balances["100"].Equal(dec("1000.00")) {
		t.Fatalf("kasa balance = %s", balances["100"])
	}
	if !balances["500"].Equal(dec("1000.00")) {
		t.Fatalf("sermaye balance = %s", balances["500"])
	}
	// Accumulated depreciation is credit-normal: its natural balance is
	// positive, the sign flip happens at statement impact, not here.
	if !balances["257"].Equal(dec("300.00")) {
		t.Fatalf("birikmiş amortisman balance = %s", balances["257"])
	}
}

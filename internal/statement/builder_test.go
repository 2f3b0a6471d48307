package statement

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func balancesOf(pairs map[string]string) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(pairs))
	for code, v := range pairs {
		out[code] = dec(v)
	}
	return out
}

func TestBuildSumsLeafContributions(t *testing.T) {
	registry := coa.DefaultRegistry()
	template := DefaultAssetTemplate()

	root, total := Build(template, balancesOf(map[string]string{
		"100": "1000.00",
		"102": "500.00",
		"103": "200.00", // contra, placed with impact -1
	}), registry)

	if !total.Equal(dec("1300.00")) {
		t.Fatalf("asset total = %s, expected 1300.00", total)
	}

	leaf := root.Find("A. HAZIR DEĞERLER")
	if leaf == nil {
		t.Fatalf("missing leaf A. HAZIR DEĞERLER")
	}
	if !leaf.Subtotal.Equal(dec("1300.00")) {
		t.Fatalf("leaf subtotal = %s", leaf.Subtotal)
	}
	if len(leaf.Contributions) != 3 {
		t.Fatalf("expected 3 contributions got %d", len(leaf.Contributions))
	}
	for _, c := range leaf.Contributions {
		if c.Code == "103" && !c.Amount.Equal(dec("-200.00")) {
			t.Fatalf("contra contribution = %s, expected -200.00", c.Amount)
		}
	}
}

func TestBuildRollsUpThroughLevels(t *testing.T) {
	registry := coa.DefaultRegistry()

	root, total := Build(DefaultAssetTemplate(), balancesOf(map[string]string{
		"100": "100.00",
		"153": "400.00",
		"255": "900.00",
		"257": "300.00",
	}), registry)

	current := root.Find("I. DÖNEN VARLIKLAR")
	if current == nil || !current.Subtotal.Equal(dec("500.00")) {
		t.Fatalf("current assets subtotal wrong: %+v", current)
	}
	fixed := root.Find("II. DURAN VARLIKLAR")
	if fixed == nil || !fixed.Subtotal.Equal(dec("600.00")) {
		t.Fatalf("non-current assets subtotal wrong: %+v", fixed)
	}
	if !total.Equal(dec("1100.00")) {
		t.Fatalf("root total = %s, expected 1100.00", total)
	}
}

func TestBuildSkipsAccountsWithoutBalance(t *testing.T) {
	registry := coa.DefaultRegistry()

	root, total := Build(DefaultAssetTemplate(), balancesOf(map[string]string{
		"100": "50.00",
	}), registry)

	if !total.Equal(dec("50.00")) {
		t.Fatalf("total = %s", total)
	}
	leaf := root.Find("A. HAZIR DEĞERLER")
	if len(leaf.Contributions) != 1 {
		t.Fatalf("dormant accounts must not contribute, got %d rows", len(leaf.Contributions))
	}
	stocks := root.Find("D. STOKLAR")
	if stocks == nil || !stocks.Subtotal.IsZero() {
		t.Fatalf("empty leaf must report a zero subtotal")
	}
}

func TestBuildEmptyBalances(t *testing.T) {
	registry := coa.DefaultRegistry()
	root, total := Build(DefaultAssetTemplate(), nil, registry)
	if !total.IsZero() {
		t.Fatalf("empty ledger must produce zero totals, got %s", total)
	}
	if root.Find("I. DÖNEN VARLIKLAR") == nil {
		t.Fatalf("structure must be preserved even with no activity")
	}
}

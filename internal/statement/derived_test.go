package statement

import (
	"errors"
	"testing"

	"github.com/mizan-erp/mizan/internal/coa"
)

func lineValue(t *testing.T, results []LineResult, name string) LineResult {
	t.Helper()
	for _, r := range results {
		if r.Name == name {
			return r
		}
	}
	t.Fatalf("line %q not in results", name)
	return LineResult{}
}

func TestEvaluateLinesSequencing(t *testing.T) {
	registry := coa.DefaultRegistry()
	// Gross sales 1200, returns 200, cost of goods 400:
	// NET SATIŞLAR = 1000, BRÜT SATIŞ KÂRI = 600.
	balances := balancesOf(map[string]string{
		"600": "1200.00",
		"610": "200.00",
		"621": "400.00",
	})

	results := EvaluateLines(DefaultIncomeLines(), balances, registry)
	if len(results) != len(DefaultIncomeLines()) {
		t.Fatalf("expected every line evaluated, got %d", len(results))
	}

	if got := lineValue(t, results, "NET SATIŞLAR"); !got.Value.Equal(dec("1000.00")) {
		t.Fatalf("NET SATIŞLAR = %s, expected 1000.00", got.Value)
	}
	if got := lineValue(t, results, "BRÜT SATIŞ KÂRI (ZARARI)"); !got.Value.Equal(dec("600.00")) {
		t.Fatalf("BRÜT SATIŞ KÂRI = %s, expected 600.00", got.Value)
	}
	// Nothing below cost of goods moved, so the bottom line equals gross profit.
	if got := lineValue(t, results, "SÜRDÜRÜLEN FAALİYETLER VERGİ ÖNCESİ KÂRI (ZARARI)"); !got.Value.Equal(dec("600.00")) {
		t.Fatalf("pre-tax profit = %s, expected 600.00", got.Value)
	}
}

func TestEvaluateLinesDeductionSigns(t *testing.T) {
	registry := coa.DefaultRegistry()
	balances := balancesOf(map[string]string{
		"610": "200.00",
	})

	results := EvaluateLines(DefaultIncomeLines(), balances, registry)
	deductions := lineValue(t, results, "B. SATIŞ İNDİRİMLERİ (-)")
	if !deductions.Value.Equal(dec("-200.00")) {
		t.Fatalf("deduction line = %s, expected -200.00", deductions.Value)
	}
	if len(deductions.Detail) != 1 || deductions.Detail[0].Code != "610" {
		t.Fatalf("deduction detail %+v", deductions.Detail)
	}
}

func TestEvaluateLinesAggregatesWholeGroup(t *testing.T) {
	registry := coa.DefaultRegistry()
	balances := balancesOf(map[string]string{
		"600": "700.00",
		"601": "300.00",
	})

	results := EvaluateLines(DefaultIncomeLines(), balances, registry)
	gross := lineValue(t, results, "A. BRÜT SATIŞLAR")
	if !gross.Value.Equal(dec("1000.00")) {
		t.Fatalf("gross sales = %s, expected 1000.00", gross.Value)
	}
	if len(gross.Detail) != 2 {
		t.Fatalf("expected two revenue accounts in detail, got %d", len(gross.Detail))
	}
}

func TestValidateLinesRejectsDuplicates(t *testing.T) {
	err := ValidateLines([]Line{
		{Name: "A", Groups: []string{"g"}},
		{Name: "A", Groups: []string{"g"}},
	})
	if !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig got %v", err)
	}
}

func TestValidateLinesRejectsForwardReference(t *testing.T) {
	err := ValidateLines([]Line{
		{Name: "TOPLAM", Combine: &Combine{Op: OpAdd, Operands: []string{"SONRAKI"}}},
		{Name: "SONRAKI", Groups: []string{"g"}},
	})
	if !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig got %v", err)
	}
}

func TestValidateLinesRejectsAmbiguousStrategy(t *testing.T) {
	both := Line{Name: "A", Groups: []string{"g"}, Combine: &Combine{Op: OpAdd, Operands: []string{"x"}}}
	if err := ValidateLines([]Line{both}); !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig for line with both strategies, got %v", err)
	}
	neither := Line{Name: "B"}
	if err := ValidateLines([]Line{neither}); !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig for line with no strategy, got %v", err)
	}
}

func TestValidateLinesRejectsUnknownOp(t *testing.T) {
	err := ValidateLines([]Line{
		{Name: "A", Groups: []string{"g"}},
		{Name: "B", Combine: &Combine{Op: "DIV", Operands: []string{"A"}}},
	})
	if !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig got %v", err)
	}
}

func TestDefaultIncomeLinesValidate(t *testing.T) {
	if err := ValidateLines(DefaultIncomeLines()); err != nil {
		t.Fatalf("default pipeline must validate: %v", err)
	}
}

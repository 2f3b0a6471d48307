package statement

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
	"github.com/mizan-erp/mizan/internal/ledger"
)

type fakeLedger struct {
	items []ledger.LineItem
	err   error
}

func (f *fakeLedger) FetchThrough(ctx context.Context, companyID int64, end time.Time) ([]ledger.LineItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]ledger.LineItem(nil), f.items...), nil
}

func (f *fakeLedger) FetchBetween(ctx context.Context, companyID int64, start, end time.Time) ([]ledger.LineItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]ledger.LineItem(nil), f.items...), nil
}

func journalLine(code, debit, credit string) ledger.LineItem {
	return ledger.LineItem{
		AccountCode: code,
		Debit:       decimal.RequireFromString(debit),
		Credit:      decimal.RequireFromString(credit),
	}
}

func newTestService(t *testing.T, source ledger.LineItemSource) *Service {
	t.Helper()
	registry := coa.DefaultRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	agg := ledger.NewAggregator(source, registry, logger)
	svc, err := NewService(agg, registry, DefaultAssetTemplate(), DefaultLiabilityEquityTemplate(), DefaultIncomeLines(), logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

func TestBalanceSheetBalances(t *testing.T) {
	// Opening capital: cash against share capital.
	svc := newTestService(t, &fakeLedger{items: []ledger.LineItem{
		journalLine("100", "1000.00", "0"),
		journalLine("500", "0", "1000.00"),
	}})

	bs, err := svc.BalanceSheet(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("BalanceSheet() error = %v", err)
	}
	if !bs.AssetTotal.Equal(dec("1000.00")) {
		t.Fatalf("asset total = %s, expected 1000.00", bs.AssetTotal)
	}
	if !bs.LiabEquityTotal.Equal(dec("1000.00")) {
		t.Fatalf("liability/equity total = %s, expected 1000.00", bs.LiabEquityTotal)
	}
	if bs.Discrepancy != nil {
		t.Fatalf("balanced sheet flagged: %+v", bs.Discrepancy)
	}
	if len(bs.Warnings) != 0 {
		t.Fatalf("unexpected warnings %v", bs.Warnings)
	}
}

func TestBalanceSheetAnnotatesDiscrepancy(t *testing.T) {
	// An unclassified equity account drops out: assets no longer match.
	svc := newTestService(t, &fakeLedger{items: []ledger.LineItem{
		journalLine("100", "1000.00", "0"),
		journalLine("999", "0", "1000.00"),
	}})

	bs, err := svc.BalanceSheet(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("discrepancy must annotate, not fail: %v", err)
	}
	if bs.Discrepancy == nil {
		t.Fatalf("expected discrepancy annotation")
	}
	if !bs.Discrepancy.Delta.Equal(dec("1000.00")) {
		t.Fatalf("delta = %s", bs.Discrepancy.Delta)
	}
	if len(bs.Warnings) != 1 {
		t.Fatalf("expected unknown-account warning, got %v", bs.Warnings)
	}
}

func TestBalanceSheetContraAccounts(t *testing.T) {
	svc := newTestService(t, &fakeLedger{items: []ledger.LineItem{
		journalLine("255", "900.00", "0"),
		journalLine("257", "0", "300.00"),
		journalLine("500", "0", "600.00"),
	}})

	bs, err := svc.BalanceSheet(context.Background(), 1, time.Now())
	if err != nil {
		t.Fatalf("BalanceSheet() error = %v", err)
	}
	fixed := bs.Assets.Find("B. MADDİ DURAN VARLIKLAR")
	if fixed == nil || !fixed.Subtotal.Equal(dec("600.00")) {
		t.Fatalf("net fixed assets = %+v, expected 600.00", fixed)
	}
	if bs.Discrepancy != nil {
		t.Fatalf("contra netting broke the identity: %+v", bs.Discrepancy)
	}
}

func TestIncomeStatementPipeline(t *testing.T) {
	svc := newTestService(t, &fakeLedger{items: []ledger.LineItem{
		journalLine("600", "0", "1200.00"),
		journalLine("610", "200.00", "0"),
		journalLine("621", "400.00", "0"),
		journalLine("632", "100.00", "0"),
	}})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	is, err := svc.IncomeStatement(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("IncomeStatement() error = %v", err)
	}

	expected := map[string]string{
		"NET SATIŞLAR":                "1000.00",
		"BRÜT SATIŞ KÂRI (ZARARI)":    "600.00",
		"ESAS FAALİYET KÂRI (ZARARI)": "500.00",
		"SÜRDÜRÜLEN FAALİYETLER VERGİ ÖNCESİ KÂRI (ZARARI)": "500.00",
	}
	for name, want := range expected {
		got := lineValue(t, is.Lines, name)
		if !got.Value.Equal(dec(want)) {
			t.Fatalf("%s = %s, expected %s", name, got.Value, want)
		}
	}
}

func TestIncomeStatementRejectsInvertedPeriod(t *testing.T) {
	svc := newTestService(t, &fakeLedger{})
	start := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.IncomeStatement(context.Background(), 1, start, end)
	if !errors.Is(err, ledger.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange got %v", err)
	}
}

func TestPackComputesRatios(t *testing.T) {
	svc := newTestService(t, &fakeLedger{items: []ledger.LineItem{
		journalLine("100", "500.00", "0"),
		journalLine("120", "500.00", "0"),
		journalLine("320", "0", "400.00"),
		journalLine("500", "0", "600.00"),
		journalLine("600", "0", "1000.00"),
		journalLine("590", "0", "0"),
	}})

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	pack, err := svc.Pack(context.Background(), 1, start, end)
	if err != nil {
		t.Fatalf("Pack() error = %v", err)
	}

	if pack.Ratios.CurrentRatio == nil {
		t.Fatalf("expected current ratio")
	}
	if !pack.Ratios.CurrentRatio.Equal(dec("2.5")) {
		t.Fatalf("current ratio = %s, expected 2.5", pack.Ratios.CurrentRatio)
	}
	if pack.Ratios.DebtToEquity == nil || !pack.Ratios.DebtToEquity.Equal(dec("0.6667")) {
		t.Fatalf("debt/equity = %v, expected 0.6667", pack.Ratios.DebtToEquity)
	}
	if pack.Ratios.AltmanZ == nil {
		t.Fatalf("expected Altman Z score")
	}

	if !pack.TrialBalance.TotalDebit.Equal(pack.TrialBalance.TotalCredit) {
		t.Fatalf("trial balance out of balance: %s vs %s",
			pack.TrialBalance.TotalDebit, pack.TrialBalance.TotalCredit)
	}
}

func TestPackIsDeterministic(t *testing.T) {
	source := &fakeLedger{items: []ledger.LineItem{
		journalLine("100", "333.33", "0"),
		journalLine("120", "666.67", "0"),
		journalLine("500", "0", "1000.00"),
		journalLine("600", "0", "1234.56"),
		journalLine("621", "789.01", "0"),
	}}
	svc := newTestService(t, source)

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	render := func() []byte {
		pack, err := svc.Pack(context.Background(), 1, start, end)
		if err != nil {
			t.Fatalf("Pack() error = %v", err)
		}
		raw, err := json.Marshal(NewPackVM(pack))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		return raw
	}

	first := render()
	second := render()
	if string(first) != string(second) {
		t.Fatalf("same input produced different output:\n%s\n%s", first, second)
	}
}

func TestNewServiceRejectsBrokenConfig(t *testing.T) {
	registry := coa.DefaultRegistry()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	agg := ledger.NewAggregator(&fakeLedger{}, registry, logger)

	broken := &Template{Name: "broken", Root: &Node{Label: "root", Children: []*Node{
		{Label: "a", Accounts: []LeafAccount{{Code: "999", Impact: 1}}},
	}}}
	_, err := NewService(agg, registry, broken, DefaultLiabilityEquityTemplate(), DefaultIncomeLines(), logger)
	if !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig got %v", err)
	}

	badLines := []Line{{Name: "X", Combine: &Combine{Op: OpAdd, Operands: []string{"missing"}}}}
	_, err = NewService(agg, registry, DefaultAssetTemplate(), DefaultLiabilityEquityTemplate(), badLines, logger)
	if !errors.Is(err, ErrTemplateConfig) {
		t.Fatalf("expected ErrTemplateConfig got %v", err)
	}
}

package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
	"github.com/mizan-erp/mizan/internal/ledger"
	"github.com/mizan-erp/mizan/internal/masterdata/companies"
	"github.com/mizan-erp/mizan/internal/statement"
)

type fakeLister struct {
	companies []companies.Company
}

func (f *fakeLister) List(ctx context.Context) ([]companies.Company, error) {
	return append([]companies.Company(nil), f.companies...), nil
}

type fakeSource struct{}

func (fakeSource) FetchThrough(ctx context.Context, companyID int64, end time.Time) ([]ledger.LineItem, error) {
	return []ledger.LineItem{
		{AccountCode: "100", Debit: decimal.RequireFromString("1000.00")},
		{AccountCode: "500", Credit: decimal.RequireFromString("1000.00")},
	}, nil
}

func (f fakeSource) FetchBetween(ctx context.Context, companyID int64, start, end time.Time) ([]ledger.LineItem, error) {
	return f.FetchThrough(ctx, companyID, end)
}

func TestWarmupWindowDefaults(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 45, 0, 0, time.UTC)
	from, to, err := warmupWindow(StatementsWarmupPayload{}, now)
	if err != nil {
		t.Fatalf("warmupWindow() error = %v", err)
	}
	if from.Year() != 2024 || from.Month() != time.January || from.Day() != 1 {
		t.Fatalf("default from = %s", from)
	}
	if to.Day() != 15 || to.Hour() != 0 {
		t.Fatalf("default to must truncate to the day, got %s", to)
	}
}

func TestWarmupWindowExplicit(t *testing.T) {
	from, to, err := warmupWindow(StatementsWarmupPayload{From: "2023-01-01", To: "2023-12-31"}, time.Now())
	if err != nil {
		t.Fatalf("warmupWindow() error = %v", err)
	}
	if from.Year() != 2023 || to.Month() != time.December {
		t.Fatalf("explicit window not honoured: %s .. %s", from, to)
	}
}

func TestWarmupWindowRejectsGarbage(t *testing.T) {
	if _, _, err := warmupWindow(StatementsWarmupPayload{From: "yarın"}, time.Now()); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestWarmupHandleProcessesAllCompanies(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := coa.DefaultRegistry()
	agg := ledger.NewAggregator(fakeSource{}, registry, logger)
	svc, err := statement.NewService(agg, registry,
		statement.DefaultAssetTemplate(), statement.DefaultLiabilityEquityTemplate(),
		statement.DefaultIncomeLines(), logger)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}

	lister := &fakeLister{companies: []companies.Company{
		{ID: 1, Name: "Alfa"},
		{ID: 2, Name: "Beta"},
	}}
	// Nil redis client: every pack computes, nothing is stored. The job
	// must still succeed end to end.
	job := NewStatementsWarmupJob(lister, svc, statement.NewCache(nil, time.Minute), logger)

	task, err := NewStatementsWarmupTask(StatementsWarmupPayload{From: "2024-01-01", To: "2024-12-31"})
	if err != nil {
		t.Fatalf("NewStatementsWarmupTask() error = %v", err)
	}
	if err := job.Handle(context.Background(), task); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
}

func TestWarmupHandleRejectsBadPayload(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	job := NewStatementsWarmupJob(&fakeLister{}, nil, nil, logger)

	task := asynq.NewTask(TaskStatementsWarmup, []byte("{not json"))
	if err := job.Handle(context.Background(), task); err != asynq.SkipRetry {
		t.Fatalf("expected SkipRetry got %v", err)
	}
}

package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizan-erp/mizan/internal/coa"
)

// Aggregator folds raw journal lines into per-account debit/credit sums.
// It is pure compute over the storage collaborator's result; it never writes.
type Aggregator struct {
	source   LineItemSource
	registry *coa.Registry
	logger   *slog.Logger
}

// NewAggregator constructs the aggregator.
func NewAggregator(source LineItemSource, registry *coa.Registry, logger *slog.Logger) *Aggregator {
	return &Aggregator{source: source, registry: registry, logger: logger}
}

// Aggregate returns one Aggregate per account code with ledger activity in
// scope. Codes absent from the registry are skipped and reported in warnings;
// a single unknown code never aborts the run. Sums are decimal-exact per line
// and rounded half-up to two fraction digits once per aggregate.
func (a *Aggregator) Aggregate(ctx context.Context, companyID int64, period DateRange, mode Mode) (map[string]Aggregate, []string, error) {
	if companyID == 0 {
		return nil, nil, ErrCompanyRequired
	}
	if err := period.Validate(mode); err != nil {
		return nil, nil, err
	}

	var (
		items []LineItem
		err   error
	)
	switch mode {
	case ModeCumulative:
		items, err = a.source.FetchThrough(ctx, companyID, period.End)
	case ModePeriod:
		items, err = a.source.FetchBetween(ctx, companyID, period.Start, period.End)
	default:
		return nil, nil, ErrInvalidMode
	}
	if err != nil {
		return nil, nil, err
	}

	type sums struct {
		debit  decimal.Decimal
		credit decimal.Decimal
	}
	totals := make(map[string]sums)
	var warnings []string
	skipped := make(map[string]bool)

	for _, it := range items {
		if !a.registry.Has(it.AccountCode) {
			if !skipped[it.AccountCode] {
				skipped[it.AccountCode] = true
				warnings = append(warnings, "unknown account code "+it.AccountCode)
				a.logger.Warn("skipping unclassified account",
					slog.String("account_code", it.AccountCode),
					slog.Int64("company_id", companyID))
			}
			continue
		}
		s := totals[it.AccountCode]
		s.debit = s.debit.Add(it.Debit)
		s.credit = s.credit.Add(it.Credit)
		totals[it.AccountCode] = s
	}

	out := make(map[string]Aggregate, len(totals))
	for code, s := range totals {
		cls, _ := a.registry.Classify(code)
		out[code] = Aggregate{
			AccountCode: code,
			AccountName: cls.Name,
			DebitTotal:  s.debit.Round(2),
			CreditTotal: s.credit.Round(2),
		}
	}

	a.logger.Info("aggregated ledger activity",
		slog.Int64("company_id", companyID),
		slog.String("mode", string(mode)),
		slog.Time("period_end", period.End),
		slog.Int("accounts", len(out)),
		slog.Int("skipped", len(skipped)))
	return out, warnings, nil
}

// PointInTime builds a cumulative range ending at the given date.
func PointInTime(asOf time.Time) DateRange {
	return DateRange{End: asOf}
}

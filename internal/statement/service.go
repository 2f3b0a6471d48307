package statement

import (
	"context"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/mizan-erp/mizan/internal/coa"
	"github.com/mizan-erp/mizan/internal/ledger"
)

// BalanceSheet is the derived balance sheet for one company at one date.
type BalanceSheet struct {
	CompanyID         int64
	AsOf              time.Time
	Assets            *ResultNode
	LiabilitiesEquity *ResultNode
	AssetTotal        decimal.Decimal
	LiabEquityTotal   decimal.Decimal
	Discrepancy       *Discrepancy
	Warnings          []string
}

// IncomeStatement is the derived income statement for one company and period.
type IncomeStatement struct {
	CompanyID int64
	Start     time.Time
	End       time.Time
	Lines     []LineResult
	Warnings  []string
}

// Ratios are headline indicators computed from statement totals. Each value
// is present only when its inputs were derivable from the templates in use.
type Ratios struct {
	CurrentRatio *decimal.Decimal
	DebtToEquity *decimal.Decimal
	AltmanZ      *decimal.Decimal
}

// Pack bundles everything a reporting period needs in one shot.
type Pack struct {
	BalanceSheet    BalanceSheet
	IncomeStatement IncomeStatement
	TrialBalance    TrialBalance
	Ratios          Ratios
}

// Service derives statements from ledger activity. All configuration is
// validated up front; a constructed Service never fails on template grounds.
// The service holds no per-request state and is safe for concurrent use.
type Service struct {
	aggregator *ledger.Aggregator
	registry   *coa.Registry
	assets     *Template
	liabEquity *Template
	lines      []Line
	tolerance  decimal.Decimal
	logger     *slog.Logger
}

// NewService validates the templates and derived-line pipeline and wires the
// statement service. Configuration errors here must stop the process: a
// template defect is a deployment problem, not a per-request condition.
func NewService(aggregator *ledger.Aggregator, registry *coa.Registry, assets, liabEquity *Template, lines []Line, logger *slog.Logger) (*Service, error) {
	if err := assets.Validate(registry); err != nil {
		return nil, err
	}
	if err := liabEquity.Validate(registry); err != nil {
		return nil, err
	}
	if err := ValidateLines(lines); err != nil {
		return nil, err
	}
	return &Service{
		aggregator: aggregator,
		registry:   registry,
		assets:     assets,
		liabEquity: liabEquity,
		lines:      lines,
		tolerance:  DefaultTolerance,
		logger:     logger,
	}, nil
}

// BalanceSheet derives the balance sheet from cumulative balances through
// asOf. A failed consistency check annotates the result, it never fails it.
func (s *Service) BalanceSheet(ctx context.Context, companyID int64, asOf time.Time) (BalanceSheet, error) {
	aggs, warnings, err := s.aggregator.Aggregate(ctx, companyID, ledger.PointInTime(asOf), ledger.ModeCumulative)
	if err != nil {
		return BalanceSheet{}, err
	}
	balances := ledger.ResolveAll(aggs, s.registry)

	assets, assetTotal := Build(s.assets, balances, s.registry)
	liabEq, liabEqTotal := Build(s.liabEquity, balances, s.registry)

	bs := BalanceSheet{
		CompanyID:         companyID,
		AsOf:              asOf,
		Assets:            assets,
		LiabilitiesEquity: liabEq,
		AssetTotal:        assetTotal,
		LiabEquityTotal:   liabEqTotal,
		Warnings:          warnings,
	}
	if d := Check(assetTotal, liabEqTotal, s.tolerance); d != nil {
		bs.Discrepancy = d
		s.logger.Warn("balance sheet identity violated",
			slog.Int64("company_id", companyID),
			slog.String("delta", d.Delta.StringFixed(2)))
	}
	return bs, nil
}

// IncomeStatement derives the income statement from activity within
// [start, end].
func (s *Service) IncomeStatement(ctx context.Context, companyID int64, start, end time.Time) (IncomeStatement, error) {
	period := ledger.DateRange{Start: start, End: end}
	aggs, warnings, err := s.aggregator.Aggregate(ctx, companyID, period, ledger.ModePeriod)
	if err != nil {
		return IncomeStatement{}, err
	}
	balances := ledger.ResolveAll(aggs, s.registry)
	return IncomeStatement{
		CompanyID: companyID,
		Start:     start,
		End:       end,
		Lines:     EvaluateLines(s.lines, balances, s.registry),
		Warnings:  warnings,
	}, nil
}

// TrialBalance returns the grouped trial balance of cumulative activity
// through asOf.
func (s *Service) TrialBalance(ctx context.Context, companyID int64, asOf time.Time) (TrialBalance, error) {
	aggs, _, err := s.aggregator.Aggregate(ctx, companyID, ledger.PointInTime(asOf), ledger.ModeCumulative)
	if err != nil {
		return TrialBalance{}, err
	}
	return BuildTrialBalance(aggs), nil
}

// Pack derives the balance sheet, income statement, and trial balance for one
// period side by side. Concurrency here is purely an optimisation: each build
// is independent and deterministic.
func (s *Service) Pack(ctx context.Context, companyID int64, start, end time.Time) (Pack, error) {
	var pack Pack
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bs, err := s.BalanceSheet(ctx, companyID, end)
		if err == nil {
			pack.BalanceSheet = bs
		}
		return err
	})
	g.Go(func() error {
		is, err := s.IncomeStatement(ctx, companyID, start, end)
		if err == nil {
			pack.IncomeStatement = is
		}
		return err
	})
	g.Go(func() error {
		tb, err := s.TrialBalance(ctx, companyID, end)
		if err == nil {
			pack.TrialBalance = tb
		}
		return err
	})
	if err := g.Wait(); err != nil {
		return Pack{}, err
	}
	pack.Ratios = s.ratios(pack.BalanceSheet, pack.IncomeStatement)
	return pack, nil
}

func (s *Service) ratios(bs BalanceSheet, is IncomeStatement) Ratios {
	var out Ratios

	lineValue := func(name string) (decimal.Decimal, bool) {
		for _, line := range is.Lines {
			if line.Name == name {
				return line.Value, true
			}
		}
		return decimal.Zero, false
	}
	nodeTotal := func(root *ResultNode, label string) (decimal.Decimal, bool) {
		if n := root.Find(label); n != nil {
			return n.Subtotal, true
		}
		return decimal.Zero, false
	}

	currentAssets, haveCA := nodeTotal(bs.Assets, "I. DÖNEN VARLIKLAR")
	shortTermLiab, haveSTL := nodeTotal(bs.LiabilitiesEquity, "III. KISA VADELİ YABANCI KAYNAKLAR")
	equity, haveEq := nodeTotal(bs.LiabilitiesEquity, "V. ÖZKAYNAKLAR")
	retained, _ := nodeTotal(bs.LiabilitiesEquity, "D. GEÇMİŞ YILLAR KÂRLARI/ZARARLARI")
	netSales, haveSales := lineValue("NET SATIŞLAR")
	preTax, havePreTax := lineValue("SÜRDÜRÜLEN FAALİYETLER VERGİ ÖNCESİ KÂRI (ZARARI)")

	if haveCA && haveSTL {
		if v, ok := CurrentRatio(currentAssets, shortTermLiab); ok {
			out.CurrentRatio = &v
		}
	}
	if haveEq {
		totalLiabilities := bs.LiabEquityTotal.Sub(equity)
		if v, ok := DebtToEquity(totalLiabilities, equity); ok {
			out.DebtToEquity = &v
		}
		if haveCA && haveSTL && haveSales && havePreTax {
			if v, ok := AltmanZ(AltmanZInput{
				CurrentAssets:        currentAssets,
				TotalAssets:          bs.AssetTotal,
				ShortTermLiabilities: shortTermLiab,
				RetainedEarnings:     retained,
				PreTaxProfit:         preTax,
				Equity:               equity,
				TotalLiabilities:     totalLiabilities,
				NetSales:             netSales,
			}); ok {
				out.AltmanZ = &v
			}
		}
	}
	return out
}

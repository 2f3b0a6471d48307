package jobs

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"

	"github.com/mizan-erp/mizan/internal/masterdata/companies"
	"github.com/mizan-erp/mizan/internal/statement"
)

const (
	warmupDateLayout = "2006-01-02"
	warmupParallel   = 4
)

// CompanyLister yields the companies whose statements should be warmed.
type CompanyLister interface {
	List(ctx context.Context) ([]companies.Company, error)
}

// StatementsWarmupJob precomputes statement packs for every company and
// stores them in the report cache.
type StatementsWarmupJob struct {
	companies CompanyLister
	service   *statement.Service
	cache     *statement.Cache
	logger    *slog.Logger
}

// NewStatementsWarmupJob constructs the warmup job.
func NewStatementsWarmupJob(lister CompanyLister, service *statement.Service, cache *statement.Cache, logger *slog.Logger) *StatementsWarmupJob {
	return &StatementsWarmupJob{companies: lister, service: service, cache: cache, logger: logger}
}

// Handle processes TaskStatementsWarmup tasks.
func (j *StatementsWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	var payload StatementsWarmupPayload
	if len(t.Payload()) > 0 {
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return asynq.SkipRetry
		}
	}
	from, to, err := warmupWindow(payload, time.Now().UTC())
	if err != nil {
		j.logger.Warn("statements warmup: bad period", slog.Any("error", err))
		return asynq.SkipRetry
	}

	all, err := j.companies.List(ctx)
	if err != nil {
		return err
	}

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(warmupParallel)
	for _, company := range all {
		company := company
		g.Go(func() error {
			key, err := j.cache.BuildKey(gctx, "statements", "pack",
				strconv.FormatInt(company.ID, 10), from.Format(warmupDateLayout), to.Format(warmupDateLayout))
			if err != nil {
				return err
			}
			var vm statement.PackVM
			err = j.cache.FetchJSON(gctx, key, &vm, func(ctx context.Context) (any, error) {
				pack, err := j.service.Pack(ctx, company.ID, from, to)
				if err != nil {
					return nil, err
				}
				return statement.NewPackVM(pack), nil
			})
			if err != nil {
				// One bad ledger must not starve the rest of the batch.
				j.logger.Warn("statements warmup: company skipped",
					slog.Int64("company_id", company.ID), slog.Any("error", err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	j.logger.Info("statements warmup finished",
		slog.Int("companies", len(all)),
		slog.String("from", from.Format(warmupDateLayout)),
		slog.String("to", to.Format(warmupDateLayout)),
		slog.Duration("took", time.Since(start)))
	return nil
}

func warmupWindow(payload StatementsWarmupPayload, now time.Time) (time.Time, time.Time, error) {
	from := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	to := now.Truncate(24 * time.Hour)
	var err error
	if payload.From != "" {
		if from, err = time.Parse(warmupDateLayout, payload.From); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if payload.To != "" {
		if to, err = time.Parse(warmupDateLayout, payload.To); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}

// StatementsInvalidateJob bumps the cache version.
type StatementsInvalidateJob struct {
	cache  *statement.Cache
	logger *slog.Logger
}

// NewStatementsInvalidateJob constructs the invalidation job.
func NewStatementsInvalidateJob(cache *statement.Cache, logger *slog.Logger) *StatementsInvalidateJob {
	return &StatementsInvalidateJob{cache: cache, logger: logger}
}

// Handle processes TaskStatementsInvalidate tasks.
func (j *StatementsInvalidateJob) Handle(ctx context.Context, t *asynq.Task) error {
	if err := j.cache.Bump(ctx); err != nil {
		return err
	}
	j.logger.Info("statement cache invalidated")
	return nil
}

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/mizan-erp/mizan/internal/app"
	"github.com/mizan-erp/mizan/internal/coa"
	"github.com/mizan-erp/mizan/internal/ledger"
	"github.com/mizan-erp/mizan/internal/masterdata/companies"
	"github.com/mizan-erp/mizan/internal/platform/cache"
	"github.com/mizan-erp/mizan/internal/platform/db"
	"github.com/mizan-erp/mizan/internal/statement"
	"github.com/mizan-erp/mizan/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	registry := coa.DefaultRegistry()
	if cfg.ChartPath != "" {
		registry, err = coa.LoadFile(cfg.ChartPath)
		if err != nil {
			logger.Error("load chart overrides", slog.Any("error", err), slog.String("path", cfg.ChartPath))
			os.Exit(1)
		}
	}

	ledgerRepo := ledger.NewRepository(pool)
	aggregator := ledger.NewAggregator(ledgerRepo, registry, logger)
	statementService, err := statement.NewService(
		aggregator,
		registry,
		statement.DefaultAssetTemplate(),
		statement.DefaultLiabilityEquityTemplate(),
		statement.DefaultIncomeLines(),
		logger,
	)
	if err != nil {
		logger.Error("build statement service", slog.Any("error", err))
		os.Exit(1)
	}
	statementCache := statement.NewCache(redisClient, cfg.ReportCacheTTL)

	companyRepo := companies.NewRepository(pool)
	warmupJob := jobs.NewStatementsWarmupJob(companyRepo, statementService, statementCache, logger)
	invalidateJob := jobs.NewStatementsInvalidateJob(statementCache, logger)

	var cron []jobs.CronRegistration
	if cfg.WarmupCron != "" {
		warmupTask, err := jobs.NewStatementsWarmupTask(jobs.StatementsWarmupPayload{})
		if err != nil {
			logger.Error("build warmup task", slog.Any("error", err))
			os.Exit(1)
		}
		cron = append(cron, jobs.CronRegistration{
			Spec:    cfg.WarmupCron,
			Task:    warmupTask,
			Options: []asynq.Option{asynq.MaxRetry(3)},
		})
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskStatementsWarmup, Handler: warmupJob.Handle},
			{Type: jobs.TaskStatementsInvalidate, Handler: invalidateJob.Handle},
		},
		Cron: cron,
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}

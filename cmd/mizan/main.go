package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

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
		slog.Default().Info("test mode detected, skipping runtime startup")
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
		logger.Warn("redis unavailable, statements served uncached", slog.Any("error", err))
	}
	defer func() {
		if redisClient == nil {
			return
		}
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
	statementHandler := statement.NewHandler(logger, statementService, statementCache)

	companyRepo := companies.NewRepository(pool)
	companyService := companies.NewService(companyRepo)
	companyHandler := companies.NewHandler(logger, companyService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		StatementHandler: statementHandler,
		CompanyHandler:   companyHandler,
		JobHandler:       jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}

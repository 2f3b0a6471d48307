package statement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/go-playground/validator/v10"

	"github.com/mizan-erp/mizan/internal/ledger"
	"github.com/mizan-erp/mizan/internal/platform/httpx"
)

// Handler wires the statement report endpoints.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	cache     *Cache
	validator *validator.Validate
	rateLimit func(http.Handler) http.Handler
}

// NewHandler builds a Handler instance.
func NewHandler(logger *slog.Logger, service *Service, cache *Cache) *Handler {
	return &Handler{
		logger:    logger,
		service:   service,
		cache:     cache,
		validator: validator.New(),
		rateLimit: httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(httprate.KeyByIP)),
	}
}

// MountRoutes registers statement report routes. Report generation reads the
// whole ledger, so the endpoints share a rate limit like other heavy reports.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/finance/reports/bs", h.HandleBalanceSheet)
		r.Get("/finance/reports/pl", h.HandleIncomeStatement)
		r.Get("/finance/reports/trial-balance", h.HandleTrialBalance)
		r.Get("/finance/reports/pack", h.HandlePack)
	})
}

type reportQuery struct {
	CompanyID int64     `validate:"required,gt=0"`
	From      time.Time `validate:"-"`
	To        time.Time `validate:"required"`
}

func (h *Handler) parseQuery(r *http.Request, needFrom bool) (reportQuery, error) {
	var q reportQuery
	if raw := r.URL.Query().Get("company_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return q, fmt.Errorf("%w: company_id must be an integer", httpx.ErrValidation)
		}
		q.CompanyID = id
	}
	parseDate := func(name string) (time.Time, error) {
		raw := r.URL.Query().Get(name)
		if raw == "" {
			return time.Time{}, nil
		}
		t, err := time.Parse(dateLayout, raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", httpx.ErrValidation, name)
		}
		return t, nil
	}
	var err error
	if q.From, err = parseDate("from"); err != nil {
		return q, err
	}
	if q.To, err = parseDate("to"); err != nil {
		return q, err
	}
	// Point-in-time reports take as_of instead of a range.
	if q.To.IsZero() {
		if q.To, err = parseDate("as_of"); err != nil {
			return q, err
		}
	}
	if err := h.validator.Struct(q); err != nil {
		return q, fmt.Errorf("%w: company_id and to/as_of are required", httpx.ErrValidation)
	}
	if needFrom && q.From.IsZero() {
		return q, fmt.Errorf("%w: from is required", httpx.ErrValidation)
	}
	return q, nil
}

// cacheKey builds the versioned cache key for a report request. When the
// version lookup fails the cache is skipped for this request; an unversioned
// key could be served to a different endpoint.
func (h *Handler) cacheKey(ctx context.Context, parts ...string) string {
	key, err := h.cache.BuildKey(ctx, parts...)
	if err != nil {
		h.logger.Warn("report cache unavailable", slog.Any("error", err))
		return ""
	}
	return key
}

// HandleBalanceSheet serves the derived balance sheet as of a date.
func (h *Handler) HandleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r, false)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	key := h.cacheKey(r.Context(), "statements", "bs", strconv.FormatInt(q.CompanyID, 10), q.To.Format(dateLayout))
	var vm BalanceSheetVM
	err = h.cache.FetchJSON(r.Context(), key, &vm, func(ctx0 context.Context) (any, error) {
		bs, err := h.service.BalanceSheet(ctx0, q.CompanyID, q.To)
		if err != nil {
			return nil, err
		}
		return NewBalanceSheetVM(bs), nil
	})
	if err != nil {
		h.respondBuildError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vm)
}

// HandleIncomeStatement serves the derived income statement for a period.
func (h *Handler) HandleIncomeStatement(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r, true)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	key := h.cacheKey(r.Context(), "statements", "pl", strconv.FormatInt(q.CompanyID, 10), q.From.Format(dateLayout), q.To.Format(dateLayout))
	var vm IncomeStatementVM
	err = h.cache.FetchJSON(r.Context(), key, &vm, func(ctx0 context.Context) (any, error) {
		is, err := h.service.IncomeStatement(ctx0, q.CompanyID, q.From, q.To)
		if err != nil {
			return nil, err
		}
		return NewIncomeStatementVM(is), nil
	})
	if err != nil {
		h.respondBuildError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vm)
}

// HandleTrialBalance serves the grouped trial balance as of a date.
func (h *Handler) HandleTrialBalance(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r, false)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	key := h.cacheKey(r.Context(), "statements", "tb", strconv.FormatInt(q.CompanyID, 10), q.To.Format(dateLayout))
	var vm TrialBalanceVM
	err = h.cache.FetchJSON(r.Context(), key, &vm, func(ctx0 context.Context) (any, error) {
		tb, err := h.service.TrialBalance(ctx0, q.CompanyID, q.To)
		if err != nil {
			return nil, err
		}
		return NewTrialBalanceVM(tb), nil
	})
	if err != nil {
		h.respondBuildError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vm)
}

// HandlePack serves the complete statement pack for a period.
func (h *Handler) HandlePack(w http.ResponseWriter, r *http.Request) {
	q, err := h.parseQuery(r, true)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	key := h.cacheKey(r.Context(), "statements", "pack", strconv.FormatInt(q.CompanyID, 10), q.From.Format(dateLayout), q.To.Format(dateLayout))
	var vm PackVM
	err = h.cache.FetchJSON(r.Context(), key, &vm, func(ctx0 context.Context) (any, error) {
		pack, err := h.service.Pack(ctx0, q.CompanyID, q.From, q.To)
		if err != nil {
			return nil, err
		}
		return NewPackVM(pack), nil
	})
	if err != nil {
		h.respondBuildError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, vm)
}

func (h *Handler) respondBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrInvalidDateRange), errors.Is(err, ledger.ErrCompanyRequired):
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
	default:
		h.logger.Error("statement build failed", slog.Any("error", err))
		httpx.RespondError(w, err)
	}
}

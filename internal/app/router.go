package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mizan-erp/mizan/internal/masterdata/companies"
	"github.com/mizan-erp/mizan/internal/statement"
	"github.com/mizan-erp/mizan/jobs"
)

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger           *slog.Logger
	Config           *Config
	StatementHandler *statement.Handler
	CompanyHandler   *companies.Handler
	JobHandler       *jobs.Handler
}

// NewRouter constructs the chi.Router with Mizan defaults.
func NewRouter(params RouterParams) http.Handler {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger: params.Logger,
		Config: params.Config,
	}) {
		r.Use(mw)
	}

	r.Use(chimw.Logger)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if params.StatementHandler != nil {
		params.StatementHandler.MountRoutes(r)
	}
	if params.CompanyHandler != nil {
		r.Route("/masterdata", params.CompanyHandler.MountRoutes)
	}
	if params.JobHandler != nil {
		r.Route("/jobs", params.JobHandler.MountRoutes)
	}

	return r
}

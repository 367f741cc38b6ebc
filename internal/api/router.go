package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klogins-hash/collectiv-intelligence/internal/report"
	"github.com/klogins-hash/collectiv-intelligence/internal/store"
)

func NewRouter(rep *report.Report, s store.Store, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	reports := NewReportHandler(rep, s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/report", reports.Current)
		r.Get("/report/table", reports.Table)
		r.Get("/entities/{name}", reports.Entity)
		r.Get("/verdicts", reports.Verdicts)
		r.Get("/dimensions", reports.Dimensions)

		r.Get("/reports", reports.List)
		r.Get("/reports/{id}", reports.Get)
	})

	return r
}

// NewMetricsRouter serves /health and the given registry on /metrics.
func NewMetricsRouter(reg *prometheus.Registry) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	return r
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/suraksha-net/suraksha/internal/api/handlers"
	"github.com/suraksha-net/suraksha/internal/api/middleware"
	"github.com/suraksha-net/suraksha/internal/config"
	"github.com/suraksha-net/suraksha/internal/pkg/logger"
	"github.com/suraksha-net/suraksha/internal/pkg/metrics"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Alert        *handlers.AlertHandler
	Verification *handlers.VerificationHandler
	Report       *handlers.ReportHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Health checks and metrics
	r.Get("/health", h.Health.Healthz)
	r.Get("/healthz", h.Health.Healthz)
	r.Get("/readyz", h.Health.Readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Ad-hoc verification
	r.Post("/api/v1/verify", h.Verification.Verify)
	r.Post("/api/v1/verify/batch", h.Verification.VerifyBatch)

	// Alerts
	r.Route("/api/v1/alerts", func(r chi.Router) {
		r.Get("/", h.Alert.List)
		r.Post("/", h.Alert.Create)
		r.Get("/{id}", h.Alert.Get)
		r.Delete("/{id}", h.Alert.Delete)
		r.Post("/{id}/verify", h.Verification.VerifyAlert)
		r.Get("/{id}/verification", h.Verification.GetResult)
		r.Post("/{id}/reports", h.Report.Create)
	})

	// Verification results
	r.Route("/api/v1/verifications", func(r chi.Router) {
		r.Get("/stats", h.Verification.GetStats)
	})

	// Misinformation reports
	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/", h.Report.List)
	})

	return r
}

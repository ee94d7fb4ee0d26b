package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
	"github.com/meridian-ops/meridian-ops/internal/hr/attendance"
	"github.com/meridian-ops/meridian-ops/internal/hr/candidates"
	"github.com/meridian-ops/meridian-ops/internal/hr/members"
	"github.com/meridian-ops/meridian-ops/internal/hr/payroll"
	"github.com/meridian-ops/meridian-ops/internal/hr/performance"
	"github.com/meridian-ops/meridian-ops/internal/hr/training"
	"github.com/meridian-ops/meridian-ops/internal/observability"
)

// Sweeper drops expired console sessions. Every dataset registry
// implements it.
type Sweeper interface {
	Sweep() int
}

// RouterParams groups dependencies for building the HTTP router.
type RouterParams struct {
	Logger  *slog.Logger
	Config  *Config
	Deps    browsehttp.Deps
	Metrics *observability.Metrics
}

// NewRouter constructs the chi.Router with all console datasets
// mounted, and returns the session registries for periodic sweeping.
func NewRouter(params RouterParams) (http.Handler, []Sweeper) {
	r := chi.NewRouter()

	for _, mw := range MiddlewareStack(MiddlewareConfig{
		Logger:  params.Logger,
		Config:  params.Config,
		Metrics: params.Metrics,
	}) {
		r.Use(mw)
	}

	if !InTestMode() {
		r.Use(chimw.Logger)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	var sweepers []Sweeper
	r.Route("/hr", func(r chi.Router) {
		sweepers = append(sweepers,
			members.MountRoutes(r, params.Deps).Sessions(),
			candidates.MountRoutes(r, params.Deps).Sessions(),
			attendance.MountRoutes(r, params.Deps).Sessions(),
			payroll.MountRoutes(r, params.Deps).Sessions(),
			performance.MountRoutes(r, params.Deps).Sessions(),
			training.MountRoutes(r, params.Deps).Sessions(),
		)
	})

	if params.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", params.Metrics.Handler())
	}

	return r, sweepers
}

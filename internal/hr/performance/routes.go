package performance

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the performance view under /performance.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Review] {
	h := browsehttp.NewHandler(browsehttp.Config[Review]{
		Dataset:  "performance",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 10,
	}, deps)
	r.Route("/performance", h.MountRoutes)
	return h
}

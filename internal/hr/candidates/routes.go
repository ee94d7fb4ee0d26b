package candidates

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the candidates view under /candidates.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Candidate] {
	h := browsehttp.NewHandler(browsehttp.Config[Candidate]{
		Dataset:  "candidates",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 10,
	}, deps)
	r.Route("/candidates", h.MountRoutes)
	return h
}

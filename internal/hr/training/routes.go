package training

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the training view under /training.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Course] {
	h := browsehttp.NewHandler(browsehttp.Config[Course]{
		Dataset:  "training",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 10,
	}, deps)
	r.Route("/training", h.MountRoutes)
	return h
}

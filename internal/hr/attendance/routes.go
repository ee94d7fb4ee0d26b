package attendance

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the attendance view under /attendance.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Entry] {
	h := browsehttp.NewHandler(browsehttp.Config[Entry]{
		Dataset:  "attendance",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 20,
	}, deps)
	r.Route("/attendance", h.MountRoutes)
	return h
}

package members

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the members view under /members.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Member] {
	h := browsehttp.NewHandler(browsehttp.Config[Member]{
		Dataset:  "members",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 10,
	}, deps)
	r.Route("/members", h.MountRoutes)
	return h
}

package payroll

import (
	"github.com/go-chi/chi/v5"

	"github.com/meridian-ops/meridian-ops/internal/browse/browsehttp"
)

// MountRoutes wires the payroll view under /payroll.
func MountRoutes(r chi.Router, deps browsehttp.Deps) *browsehttp.Handler[Item] {
	h := browsehttp.NewHandler(browsehttp.Config[Item]{
		Dataset:  "payroll",
		Schema:   Schema(),
		Locks:    Locks(),
		Provider: Seed,
		PageSize: 15,
	}, deps)
	r.Route("/payroll", h.MountRoutes)
	return h
}

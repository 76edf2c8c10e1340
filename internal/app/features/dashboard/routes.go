// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/go-chi/chi/v5"
)

// Routes wires the dashboard feature under whatever mount point
// the top-level router chooses (e.g., "/dashboard").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	// Final path will be /dashboard when mounted at "/dashboard".
	r.Get("/", h.ServeDashboard)

	// HTMX partials
	r.Get("/stats", h.ServeStats)
	r.Get("/activity", h.ServeActivity)

	r.Route("/api", func(api chi.Router) {
		api.Get("/stats", h.ServeStatsJSON)
		api.Get("/activity", h.ServeActivityJSON)
	})

	return r
}

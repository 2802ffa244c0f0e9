// internal/app/features/mentoring/routes.go
package mentoring

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts mentoring routes (typically under "/api/mentoring/matches").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Students may request matches and browse their own.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
		pr.Post("/", h.HandleCreate)
	})

	// Staff decide matches.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin, models.RoleStaff))

		pr.Post("/{id}/approve", h.HandleApprove)
		pr.Post("/{id}/reject", h.HandleReject)
		pr.Post("/{id}/end", h.HandleEnd)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}

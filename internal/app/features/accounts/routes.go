// internal/app/features/accounts/routes.go
package accounts

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all account routes (typically under "/api/accounts").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Staff can browse accounts.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin, models.RoleStaff))

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
	})

	// Only admins may create, modify, or remove accounts.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin))

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Patch("/{id}/status", h.HandleStatus)
		pr.Patch("/{id}/password", h.HandlePassword)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}

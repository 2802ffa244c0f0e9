// internal/app/features/offerings/routes.go
package offerings

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts offering and enrollment routes (typically under "/api/offerings").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Browsing and self-enrollment for all signed-in accounts.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
		pr.Post("/{id}/enrollments", h.HandleEnroll)
		pr.Post("/{id}/enrollments/{enrollmentID}/drop", h.HandleDrop)
	})

	// Catalog management and roster access for staff.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin, models.RoleStaff))

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Patch("/{id}/status", h.HandleStatus)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Get("/{id}/enrollments", h.HandleListEnrollments)
	})

	return r
}

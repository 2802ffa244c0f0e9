// internal/app/features/departments/routes.go
package departments

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts department and major routes (typically under "/api/departments").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Any signed-in account may browse departments (students pick majors).
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
		pr.Get("/{id}/majors", h.HandleListMajors)
	})

	// Staff manage the catalog.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin, models.RoleStaff))

		pr.Post("/", h.HandleCreate)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Patch("/{id}/status", h.HandleStatus)
		pr.Delete("/{id}", h.HandleDelete)

		pr.Post("/{id}/majors", h.HandleCreateMajor)
		pr.Patch("/{id}/majors/{majorID}", h.HandleUpdateMajor)
		pr.Patch("/{id}/majors/{majorID}/status", h.HandleMajorStatus)
		pr.Delete("/{id}/majors/{majorID}", h.HandleDeleteMajor)
	})

	return r
}

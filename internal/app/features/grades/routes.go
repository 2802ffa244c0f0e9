// internal/app/features/grades/routes.go
package grades

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// Routes mounts grading routes (typically under "/api/grades").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// Students read their own transcript.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/me", h.HandleMyTranscript)
	})

	// Staff assign grades and read any transcript.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole(models.RoleAdmin, models.RoleStaff))

		pr.Put("/enrollments/{enrollmentID}", h.HandleAssign)
		pr.Delete("/enrollments/{enrollmentID}", h.HandleRemove)
		pr.Get("/students/{studentID}", h.HandleTranscript)
	})

	return r
}

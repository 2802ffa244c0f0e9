// internal/app/features/login/routes.go
package login

import (
	"github.com/go-chi/chi/v5"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
)

// Routes mounts the auth routes (typically under "/api/auth").
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.HandleLogin)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Post("/logout", h.HandleLogout)
		pr.Get("/me", h.HandleMe)
	})

	return r
}

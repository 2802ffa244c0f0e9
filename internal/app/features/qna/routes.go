// internal/app/features/qna/routes.go
package qna

import (
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts Q&A routes (typically under "/api/qna/posts").
// All routes require sign-in; per-item ownership is checked in the handlers.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}", h.HandleGet)
		pr.Patch("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)

		pr.Post("/{id}/answers", h.HandleAddAnswer)
		pr.Delete("/{id}/answers/{answerID}", h.HandleDeleteAnswer)
	})

	return r
}

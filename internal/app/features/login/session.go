package login

import (
	"net/http"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
)

// HandleLogout handles POST /api/auth/logout. It clears the session
// cookie; bearer tokens simply expire on their own.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.SignOut(w, r); err != nil {
		h.errs.ServerError(w, "failed to clear session", err)
		return
	}
	httpapi.WriteNoContent(w)
}

// HandleMe handles GET /api/auth/me and returns the signed-in user.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}
	httpapi.WriteData(w, http.StatusOK, u)
}

// internal/app/features/accounts/delete.go
package accounts

import (
	"context"
	"net/http"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
)

// HandleDelete serves DELETE /api/accounts/{id}. An admin cannot delete
// their own account.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	if u, ok := auth.CurrentUser(r); ok && u.AccountID == id {
		httpapi.WriteError(w, http.StatusConflict, "cannot delete the signed-in account")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete account", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "account not found")
		return
	}

	httpapi.WriteNoContent(w)
}

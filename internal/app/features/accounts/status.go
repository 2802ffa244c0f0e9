// internal/app/features/accounts/status.go
package accounts

import (
	"context"
	"errors"
	"net/http"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// HandleStatus serves PATCH /api/accounts/{id}/status, flipping an account
// between ACTIVE and SUSPENDED. The updated account is returned so clients
// can reconcile optimistic toggles against the server's view.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req statusRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	status := normalize.Status(req.Status)
	if status != models.AccountActive && status != models.AccountSuspended {
		httpapi.WriteError(w, http.StatusBadRequest, "status must be ACTIVE or SUSPENDED")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "account not found")
			return
		}
		h.errs.ServerError(w, "failed to update account status", err)
		return
	}

	acct, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload account", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, acct)
}

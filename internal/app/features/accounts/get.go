// internal/app/features/accounts/get.go
package accounts

import (
	"context"
	"errors"
	"net/http"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
)

// HandleGet serves GET /api/accounts/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "account not found")
			return
		}
		h.errs.ServerError(w, "failed to load account", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, acct)
}

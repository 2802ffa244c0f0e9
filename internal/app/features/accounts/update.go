// internal/app/features/accounts/update.go
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
	"golang.org/x/crypto/bcrypt"
)

// HandleUpdate serves PATCH /api/accounts/{id}. Empty fields keep their
// current values.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req updateRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.Account{
		FullName:     normalize.Name(req.Name),
		Email:        normalize.Email(req.Email),
		DepartmentID: req.DepartmentID,
		MajorID:      req.MajorID,
	})
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "account not found")
			return
		}
		h.errs.ServerError(w, "failed to update account", err)
		return
	}

	acct, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload account", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, acct)
}

// HandlePassword serves PATCH /api/accounts/{id}/password.
func (h *Handler) HandlePassword(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req passwordRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	if len(req.Password) < minPasswordLen {
		httpapi.WriteError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errs.ServerError(w, "failed to hash password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.UpdatePassword(ctx, id, hash); err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "account not found")
			return
		}
		h.errs.ServerError(w, "failed to update password", err)
		return
	}

	httpapi.WriteNoContent(w)
}

// internal/app/features/accounts/create.go
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

const minPasswordLen = 8

// HandleCreate serves POST /api/accounts.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.LoginID = normalize.LoginID(req.LoginID)
	req.Name = normalize.Name(req.Name)
	req.Email = normalize.Email(req.Email)
	req.Role = normalize.Status(req.Role)

	switch {
	case req.LoginID == "":
		httpapi.WriteError(w, http.StatusBadRequest, "loginId is required")
		return
	case req.Name == "":
		httpapi.WriteError(w, http.StatusBadRequest, "name is required")
		return
	case len(req.Password) < minPasswordLen:
		httpapi.WriteError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	case !models.IsValidRole(req.Role):
		httpapi.WriteError(w, http.StatusBadRequest, "role must be ADMIN, STAFF, or STUDENT")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.errs.ServerError(w, "failed to hash password", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	acct, err := h.Store.Create(ctx, models.Account{
		LoginID:      req.LoginID,
		FullName:     req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
		DepartmentID: req.DepartmentID,
		MajorID:      req.MajorID,
	})
	if err != nil {
		if errors.Is(err, accountstore.ErrDuplicateLoginID) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create account", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, acct)
}

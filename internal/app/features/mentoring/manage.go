// internal/app/features/mentoring/manage.go
package mentoring

import (
	"context"
	"errors"
	"net/http"

	accountstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/accounts"
	mentoringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/mentoring"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// HandleCreate serves POST /api/mentoring/matches. A student may only
// request a match for themselves as mentee.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	var req createRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	if u.Role == models.RoleStudent {
		req.MenteeID = u.AccountID
	}
	if req.MentorID == 0 || req.MenteeID == 0 {
		httpapi.WriteError(w, http.StatusBadRequest, "mentorId and menteeId are required")
		return
	}
	if req.MentorID == req.MenteeID {
		httpapi.WriteError(w, http.StatusBadRequest, "mentor and mentee must differ")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	mentor, err := h.Accounts.GetByID(ctx, req.MentorID)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "mentor account not found")
			return
		}
		h.errs.ServerError(w, "failed to load mentor", err)
		return
	}
	mentee, err := h.Accounts.GetByID(ctx, req.MenteeID)
	if err != nil {
		if errors.Is(err, accountstore.ErrNotFound) {
			httpapi.NotFound(w, "mentee account not found")
			return
		}
		h.errs.ServerError(w, "failed to load mentee", err)
		return
	}
	if !mentor.IsActive() || !mentee.IsActive() {
		httpapi.WriteError(w, http.StatusConflict, "both accounts must be active")
		return
	}

	match, err := h.Store.Create(ctx, models.MentoringMatch{
		MentorID:   mentor.AccountID,
		MentorName: mentor.FullName,
		MenteeID:   mentee.AccountID,
		MenteeName: mentee.FullName,
		Topic:      htmlsanitize.Text(req.Topic),
	})
	if err != nil {
		h.errs.ServerError(w, "failed to create mentoring match", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, match)
}

// HandleApprove serves POST /api/mentoring/matches/{id}/approve.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.MentoringApproved)
}

// HandleReject serves POST /api/mentoring/matches/{id}/reject.
func (h *Handler) HandleReject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, models.MentoringRejected)
}

func (h *Handler) decide(w http.ResponseWriter, r *http.Request, status string) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.Decide(ctx, id, status, u.AccountID); err != nil {
		switch {
		case errors.Is(err, mentoringstore.ErrNotFound):
			httpapi.NotFound(w, "mentoring match not found")
		case errors.Is(err, mentoringstore.ErrAlreadyDecided):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to decide mentoring match", err)
		}
		return
	}

	match, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload mentoring match", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, match)
}

// HandleEnd serves POST /api/mentoring/matches/{id}/end.
func (h *Handler) HandleEnd(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.End(ctx, id); err != nil {
		if errors.Is(err, mentoringstore.ErrNotFound) {
			httpapi.NotFound(w, "no approved match to end")
			return
		}
		h.errs.ServerError(w, "failed to end mentoring match", err)
		return
	}

	match, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload mentoring match", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, match)
}

// HandleDelete serves DELETE /api/mentoring/matches/{id}.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid match id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete mentoring match", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "mentoring match not found")
		return
	}

	httpapi.WriteNoContent(w)
}

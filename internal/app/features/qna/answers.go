// internal/app/features/qna/answers.go
package qna

import (
	"context"
	"errors"
	"net/http"

	qnastore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/qna"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// answerRequest is the payload for POST /api/qna/posts/{id}/answers.
type answerRequest struct {
	Body string `json:"body"`
}

// HandleAddAnswer serves POST /api/qna/posts/{id}/answers.
func (h *Handler) HandleAddAnswer(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	postID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid post id")
		return
	}

	var req answerRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	body := htmlsanitize.Sanitize(req.Body)
	if body == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "body is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ans, err := h.Store.AddAnswer(ctx, models.QnaAnswer{
		PostID:     postID,
		BodyHTML:   body,
		AuthorID:   u.AccountID,
		AuthorName: u.Name,
	})
	if err != nil {
		if errors.Is(err, qnastore.ErrPostNotFound) {
			httpapi.NotFound(w, "post not found")
			return
		}
		h.errs.ServerError(w, "failed to add answer", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, ans)
}

// HandleDeleteAnswer serves DELETE /api/qna/posts/{id}/answers/{answerID}.
// Author-or-admin only.
func (h *Handler) HandleDeleteAnswer(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	answerID, err := idParam(r, "answerID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid answer id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ans, err := h.Store.GetAnswer(ctx, answerID)
	if err != nil {
		if errors.Is(err, qnastore.ErrAnswerNotFound) {
			httpapi.NotFound(w, "answer not found")
			return
		}
		h.errs.ServerError(w, "failed to load answer", err)
		return
	}
	if !canModify(u, ans.AuthorID) {
		httpapi.WriteError(w, http.StatusForbidden, "only the author may delete this answer")
		return
	}

	if err := h.Store.DeleteAnswer(ctx, answerID); err != nil {
		h.errs.ServerError(w, "failed to delete answer", err)
		return
	}

	httpapi.WriteNoContent(w)
}

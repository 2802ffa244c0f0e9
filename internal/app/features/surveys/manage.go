// internal/app/features/surveys/manage.go
package surveys

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	surveystore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/surveys"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
)

// validateQuestions checks seq uniqueness and question kinds.
func validateQuestions(questions []models.SurveyQuestion) error {
	seen := make(map[int]bool, len(questions))
	for i := range questions {
		q := &questions[i]
		q.Text = htmlsanitize.Text(q.Text)
		if q.Text == "" {
			return fmt.Errorf("question %d has no text", q.Seq)
		}
		if q.Seq < 1 {
			return fmt.Errorf("question sequence must start at 1")
		}
		if seen[q.Seq] {
			return fmt.Errorf("duplicate question sequence %d", q.Seq)
		}
		seen[q.Seq] = true
		if q.Kind != "scale" && q.Kind != "text" {
			return fmt.Errorf("question %d kind must be \"scale\" or \"text\"", q.Seq)
		}
	}
	return nil
}

// HandleCreate serves POST /api/surveys. New surveys start in DRAFT.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req surveyRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.Title = normalize.Name(req.Title)
	if req.Title == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := validateQuestions(req.Questions); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	survey, err := h.Store.Create(ctx, models.Survey{
		Title:       req.Title,
		Description: htmlsanitize.Text(req.Description),
		Questions:   req.Questions,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to create survey", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, survey)
}

// HandleUpdate serves PATCH /api/surveys/{id}. Only DRAFT surveys accept edits.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var req surveyRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	if req.Questions != nil {
		if err := validateQuestions(req.Questions); err != nil {
			httpapi.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.Survey{
		Title:       normalize.Name(req.Title),
		Description: htmlsanitize.Text(req.Description),
		Questions:   req.Questions,
	})
	if err != nil {
		switch {
		case errors.Is(err, surveystore.ErrNotFound):
			httpapi.NotFound(w, "survey not found")
		case errors.Is(err, surveystore.ErrNotEditable):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to update survey", err)
		}
		return
	}

	survey, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload survey", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, survey)
}

// HandleStatus serves PATCH /api/surveys/{id}/status, moving a survey
// through DRAFT→OPEN→CLOSED.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var req statusRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}
	to := normalize.Status(req.Status)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	survey, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, surveystore.ErrNotFound) {
			httpapi.NotFound(w, "survey not found")
			return
		}
		h.errs.ServerError(w, "failed to load survey", err)
		return
	}

	if err := h.Store.Transition(ctx, id, survey.Status, to); err != nil {
		switch {
		case errors.Is(err, surveystore.ErrNotFound):
			httpapi.NotFound(w, "survey not found")
		case errors.Is(err, surveystore.ErrInvalidTransition):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to change survey status", err)
		}
		return
	}

	survey, err = h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload survey", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, survey)
}

// HandleDelete serves DELETE /api/surveys/{id}. Only drafts can be removed.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete survey", err)
		return
	}
	if deleted == 0 {
		// Either missing or already opened; opened surveys keep their data.
		if _, err := h.Store.GetByID(ctx, id); err == nil {
			httpapi.WriteError(w, http.StatusConflict, "only draft surveys can be deleted")
			return
		}
		httpapi.NotFound(w, "survey not found")
		return
	}

	httpapi.WriteNoContent(w)
}

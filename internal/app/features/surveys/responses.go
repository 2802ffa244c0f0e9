// internal/app/features/surveys/responses.go
package surveys

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	surveystore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/surveys"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/htmlsanitize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// validateAnswers checks a response against the survey's question list.
func validateAnswers(survey models.Survey, answers []models.SurveyAnswer) error {
	questions := make(map[int]models.SurveyQuestion, len(survey.Questions))
	for _, q := range survey.Questions {
		questions[q.Seq] = q
	}
	answered := make(map[int]bool, len(answers))
	for i := range answers {
		a := &answers[i]
		q, ok := questions[a.Seq]
		if !ok {
			return fmt.Errorf("answer references unknown question %d", a.Seq)
		}
		if answered[a.Seq] {
			return fmt.Errorf("duplicate answer for question %d", a.Seq)
		}
		answered[a.Seq] = true
		switch q.Kind {
		case "scale":
			if a.Scale < 1 || a.Scale > 5 {
				return fmt.Errorf("question %d requires a scale value between 1 and 5", a.Seq)
			}
		case "text":
			a.Text = htmlsanitize.Text(a.Text)
			if q.Required && a.Text == "" {
				return fmt.Errorf("question %d requires a text answer", a.Seq)
			}
		}
	}
	for _, q := range survey.Questions {
		if q.Required && !answered[q.Seq] {
			return fmt.Errorf("question %d is required", q.Seq)
		}
	}
	return nil
}

// HandleRespond serves POST /api/surveys/{id}/responses. Responses are
// accepted only while the survey is OPEN, one per account.
func (h *Handler) HandleRespond(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	var req respondRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

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
	if survey.Status != models.SurveyOpen {
		httpapi.WriteError(w, http.StatusConflict, "survey is not open for responses")
		return
	}
	if err := validateAnswers(survey, req.Answers); err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.Responses.Create(ctx, models.SurveyResponse{
		SurveyID:  id,
		AccountID: u.AccountID,
		Answers:   req.Answers,
	})
	if err != nil {
		if errors.Is(err, surveystore.ErrDuplicateResponse) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to save response", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, resp)
}

// HandleMyResponse serves GET /api/surveys/{id}/responses/me.
func (h *Handler) HandleMyResponse(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	resp, err := h.Responses.GetByAccount(ctx, id, u.AccountID)
	if err != nil {
		if errors.Is(err, surveystore.ErrResponseNotFound) {
			httpapi.NotFound(w, "no response submitted")
			return
		}
		h.errs.ServerError(w, "failed to load response", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, resp)
}

// HandleListResponses serves GET /api/surveys/{id}/responses for staff.
func (h *Handler) HandleListResponses(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	filter := bson.M{"survey_id": id}

	total, err := h.Responses.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count responses", err)
		return
	}

	resps, err := h.Responses.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "response_id", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list responses", err)
		return
	}

	httpapi.WriteList(w, resps, paging.NewMeta(p, total, "id,asc"))
}

// HandleSummary serves GET /api/surveys/{id}/summary, aggregating scale
// averages and answer counts per question.
func (h *Handler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid survey id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
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

	resps, err := h.Responses.Find(ctx, bson.M{"survey_id": id})
	if err != nil {
		h.errs.ServerError(w, "failed to load responses", err)
		return
	}

	counts := make(map[int]int, len(survey.Questions))
	sums := make(map[int]int, len(survey.Questions))
	for _, resp := range resps {
		for _, a := range resp.Answers {
			counts[a.Seq]++
			sums[a.Seq] += a.Scale
		}
	}

	summary := surveySummary{
		SurveyID:  survey.SurveyID,
		Title:     survey.Title,
		Status:    survey.Status,
		Responses: int64(len(resps)),
		Questions: make([]questionSummary, 0, len(survey.Questions)),
	}
	for _, q := range survey.Questions {
		qs := questionSummary{
			Seq:     q.Seq,
			Text:    q.Text,
			Kind:    q.Kind,
			Answers: counts[q.Seq],
		}
		if q.Kind == "scale" && counts[q.Seq] > 0 {
			qs.Average = float64(sums[q.Seq]) / float64(counts[q.Seq])
		}
		summary.Questions = append(summary.Questions, qs)
	}

	httpapi.WriteData(w, http.StatusOK, summary)
}

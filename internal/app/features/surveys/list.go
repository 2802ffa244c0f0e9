// internal/app/features/surveys/list.go
package surveys

import (
	"context"
	"errors"
	"net/http"
	"strings"

	surveystore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/surveys"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList serves GET /api/surveys. Students see only OPEN and CLOSED
// surveys; drafts are staff-only.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if status := strings.ToUpper(strings.TrimSpace(query.Get(r, "status"))); status != "" {
		filter["status"] = status
	}
	if u.Role == models.RoleStudent {
		filter["status"] = bson.M{"$in": bson.A{models.SurveyOpen, models.SurveyClosed}}
	}
	if p.Keyword != "" {
		filter["title_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count surveys", err)
		return
	}

	surveys, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "survey_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list surveys", err)
		return
	}

	httpapi.WriteList(w, surveys, paging.NewMeta(p, total, "id,desc"))
}

// HandleGet serves GET /api/surveys/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

	survey, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, surveystore.ErrNotFound) {
			httpapi.NotFound(w, "survey not found")
			return
		}
		h.errs.ServerError(w, "failed to load survey", err)
		return
	}

	if u.Role == models.RoleStudent && survey.Status == models.SurveyDraft {
		httpapi.NotFound(w, "survey not found")
		return
	}

	httpapi.WriteData(w, http.StatusOK, survey)
}

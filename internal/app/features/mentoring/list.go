// internal/app/features/mentoring/list.go
package mentoring

import (
	"context"
	"errors"
	"net/http"
	"strings"

	mentoringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/mentoring"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList serves GET /api/mentoring/matches. Students see only matches
// they are part of; staff see everything.
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
		filter["$or"] = bson.A{
			bson.M{"mentor_id": u.AccountID},
			bson.M{"mentee_id": u.AccountID},
		}
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count mentoring matches", err)
		return
	}

	matches, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "match_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list mentoring matches", err)
		return
	}

	httpapi.WriteList(w, matches, paging.NewMeta(p, total, "id,desc"))
}

// HandleGet serves GET /api/mentoring/matches/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
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

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	match, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mentoringstore.ErrNotFound) {
			httpapi.NotFound(w, "mentoring match not found")
			return
		}
		h.errs.ServerError(w, "failed to load mentoring match", err)
		return
	}

	if u.Role == models.RoleStudent && match.MentorID != u.AccountID && match.MenteeID != u.AccountID {
		httpapi.WriteError(w, http.StatusForbidden, "not a participant in this match")
		return
	}

	httpapi.WriteData(w, http.StatusOK, match)
}

// internal/app/features/offerings/list.go
package offerings

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	offeringstore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/offerings"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList serves GET /api/offerings with paging and term/department filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if term := strings.TrimSpace(query.Get(r, "term")); term != "" {
		filter["term"] = strings.ToUpper(term)
	}
	if dept := strings.TrimSpace(query.Get(r, "departmentId")); dept != "" {
		if id, err := strconv.ParseInt(dept, 10, 64); err == nil {
			filter["department_id"] = id
		}
	}
	if status := strings.ToUpper(strings.TrimSpace(query.Get(r, "status"))); status != "" {
		filter["status"] = status
	}
	if p.Keyword != "" {
		filter["$or"] = bson.A{
			bson.M{"title_ci": search.Prefix(p.Keyword)},
			bson.M{"course_code": search.PrefixRaw(strings.ToUpper(p.Keyword))},
		}
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count offerings", err)
		return
	}

	offs, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "course_code", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list offerings", err)
		return
	}

	httpapi.WriteList(w, offs, paging.NewMeta(p, total, "courseCode,asc"))
}

// HandleGet serves GET /api/offerings/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid offering id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	off, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, offeringstore.ErrNotFound) {
			httpapi.NotFound(w, "offering not found")
			return
		}
		h.errs.ServerError(w, "failed to load offering", err)
		return
	}

	httpapi.WriteData(w, http.StatusOK, off)
}

// internal/app/features/departments/list.go
package departments

import (
	"context"
	"net/http"
	"strings"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList serves GET /api/departments.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if status := strings.ToUpper(strings.TrimSpace(query.Get(r, "status"))); status != "" {
		filter["status"] = status
	}
	if p.Keyword != "" {
		filter["name_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count departments", err)
		return
	}

	depts, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list departments", err)
		return
	}

	httpapi.WriteList(w, depts, paging.NewMeta(p, total, "name,asc"))
}

// HandleListMajors serves GET /api/departments/{id}/majors.
func (h *Handler) HandleListMajors(w http.ResponseWriter, r *http.Request) {
	deptID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid department id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{"department_id": deptID}
	if p.Keyword != "" {
		filter["name_ci"] = search.Prefix(p.Keyword)
	}

	total, err := h.Majors.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count majors", err)
		return
	}

	majors, err := h.Majors.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list majors", err)
		return
	}

	httpapi.WriteList(w, majors, paging.NewMeta(p, total, "name,asc"))
}

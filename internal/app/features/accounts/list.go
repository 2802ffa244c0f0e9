// internal/app/features/accounts/list.go
package accounts

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

// HandleList serves GET /api/accounts with paging, keyword search, and
// role/status filters.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)

	filter := bson.M{}
	if role := strings.ToUpper(strings.TrimSpace(query.Get(r, "role"))); role != "" {
		filter["role"] = role
	}
	if status := strings.ToUpper(strings.TrimSpace(query.Get(r, "status"))); status != "" {
		filter["status"] = status
	}
	if p.Keyword != "" {
		filter["$or"] = search.AnyField(p.Keyword, "login_id_ci", "full_name_ci")
	}

	total, err := h.Store.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count accounts", err)
		return
	}

	accts, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "account_id", Value: -1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list accounts", err)
		return
	}

	httpapi.WriteList(w, accts, paging.NewMeta(p, total, "id,desc"))
}

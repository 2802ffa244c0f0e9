// internal/app/features/spaces/manage.go
package spaces

import (
	"context"
	"errors"
	"net/http"
	"strings"

	spacestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/spaces"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/normalize"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/search"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// HandleList serves GET /api/spaces.
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
		h.errs.ServerError(w, "failed to count spaces", err)
		return
	}

	list, err := h.Store.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "name_ci", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list spaces", err)
		return
	}

	httpapi.WriteList(w, list, paging.NewMeta(p, total, "name,asc"))
}

// HandleGet serves GET /api/spaces/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	space, err := h.Store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, spacestore.ErrNotFound) {
			httpapi.NotFound(w, "space not found")
			return
		}
		h.errs.ServerError(w, "failed to load space", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, space)
}

// HandleCreate serves POST /api/spaces.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req spaceRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	req.Name = normalize.Name(req.Name)
	if req.Name == "" {
		httpapi.WriteError(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Capacity < 1 {
		httpapi.WriteError(w, http.StatusBadRequest, "capacity must be at least 1")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	space, err := h.Store.Create(ctx, models.Space{
		Name:     req.Name,
		Location: normalize.Name(req.Location),
		Capacity: req.Capacity,
	})
	if err != nil {
		if errors.Is(err, spacestore.ErrDuplicateSpace) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create space", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, space)
}

// HandleUpdate serves PATCH /api/spaces/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	var req spaceRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	err = h.Store.Update(ctx, id, models.Space{
		Name:     normalize.Name(req.Name),
		Location: normalize.Name(req.Location),
		Capacity: req.Capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, spacestore.ErrNotFound):
			httpapi.NotFound(w, "space not found")
		case errors.Is(err, spacestore.ErrDuplicateSpace):
			httpapi.Conflict(w, err)
		default:
			h.errs.ServerError(w, "failed to update space", err)
		}
		return
	}

	space, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload space", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, space)
}

// HandleStatus serves PATCH /api/spaces/{id}/status.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	var req statusRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	status := normalize.Status(req.Status)
	if status != models.StatusActive && status != models.StatusInactive {
		httpapi.WriteError(w, http.StatusBadRequest, "status must be ACTIVE or INACTIVE")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Store.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, spacestore.ErrNotFound) {
			httpapi.NotFound(w, "space not found")
			return
		}
		h.errs.ServerError(w, "failed to update space status", err)
		return
	}

	space, err := h.Store.GetByID(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to reload space", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, space)
}

// HandleDelete serves DELETE /api/spaces/{id}. Spaces with future bookings
// cannot be removed.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	booked, err := h.Reservations.Count(ctx, bson.M{
		"space_id": id,
		"status":   models.ReservationBooked,
	})
	if err != nil {
		h.errs.ServerError(w, "failed to check reservations", err)
		return
	}
	if booked > 0 {
		httpapi.WriteError(w, http.StatusConflict, "space still has active reservations")
		return
	}

	deleted, err := h.Store.Delete(ctx, id)
	if err != nil {
		h.errs.ServerError(w, "failed to delete space", err)
		return
	}
	if deleted == 0 {
		httpapi.NotFound(w, "space not found")
		return
	}

	httpapi.WriteNoContent(w)
}

// internal/app/features/spaces/reservations.go
package spaces

import (
	"context"
	"errors"
	"net/http"
	"time"

	spacestore "github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/spaces"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/auth"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/httpapi"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/paging"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/system/timeouts"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// maxReservationSpan keeps a single booking from monopolizing a space.
const maxReservationSpan = 4 * time.Hour

// HandleListReservations serves GET /api/spaces/{id}/reservations.
func (h *Handler) HandleListReservations(w http.ResponseWriter, r *http.Request) {
	spaceID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	p := paging.Parse(r)
	filter := bson.M{"space_id": spaceID, "status": models.ReservationBooked}

	total, err := h.Reservations.Count(ctx, filter)
	if err != nil {
		h.errs.ServerError(w, "failed to count reservations", err)
		return
	}

	rsvs, err := h.Reservations.Find(ctx, filter, options.Find().
		SetSort(bson.D{{Key: "starts_at", Value: 1}}).
		SetSkip(p.Skip()).
		SetLimit(p.Limit()))
	if err != nil {
		h.errs.ServerError(w, "failed to list reservations", err)
		return
	}

	httpapi.WriteList(w, rsvs, paging.NewMeta(p, total, "startsAt,asc"))
}

// HandleReserve serves POST /api/spaces/{id}/reservations.
func (h *Handler) HandleReserve(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	spaceID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	var req reserveRequest
	if err := httpapi.Decode(r, &req); err != nil {
		h.errs.BadRequest(w, "invalid request body", err)
		return
	}

	start := req.StartsAt.UTC()
	end := req.EndsAt.UTC()
	switch {
	case start.IsZero() || end.IsZero():
		httpapi.WriteError(w, http.StatusBadRequest, "startsAt and endsAt are required")
		return
	case !end.After(start):
		httpapi.WriteError(w, http.StatusBadRequest, "endsAt must be after startsAt")
		return
	case end.Sub(start) > maxReservationSpan:
		httpapi.WriteError(w, http.StatusBadRequest, "reservations are limited to 4 hours")
		return
	case start.Before(time.Now().UTC()):
		httpapi.WriteError(w, http.StatusBadRequest, "cannot book a slot in the past")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	space, err := h.Store.GetByID(ctx, spaceID)
	if err != nil {
		if errors.Is(err, spacestore.ErrNotFound) {
			httpapi.NotFound(w, "space not found")
			return
		}
		h.errs.ServerError(w, "failed to load space", err)
		return
	}
	if space.Status != models.StatusActive {
		httpapi.WriteError(w, http.StatusConflict, "space is not available for booking")
		return
	}

	rsv, err := h.Reservations.Create(ctx, models.Reservation{
		SpaceID:     spaceID,
		AccountID:   u.AccountID,
		AccountName: u.Name,
		StartsAt:    start,
		EndsAt:      end,
	})
	if err != nil {
		if errors.Is(err, spacestore.ErrSlotTaken) {
			httpapi.Conflict(w, err)
			return
		}
		h.errs.ServerError(w, "failed to create reservation", err)
		return
	}

	httpapi.WriteData(w, http.StatusCreated, rsv)
}

// HandleCancel serves POST /api/spaces/{id}/reservations/{reservationID}/cancel.
// Students may cancel only their own bookings.
func (h *Handler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		httpapi.WriteError(w, http.StatusUnauthorized, "sign-in required")
		return
	}

	spaceID, err := idParam(r, "id")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid space id")
		return
	}
	reservationID, err := idParam(r, "reservationID")
	if err != nil {
		httpapi.WriteError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	rsv, err := h.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		if errors.Is(err, spacestore.ErrReservationNotFound) {
			httpapi.NotFound(w, "reservation not found")
			return
		}
		h.errs.ServerError(w, "failed to load reservation", err)
		return
	}
	if rsv.SpaceID != spaceID {
		httpapi.NotFound(w, "reservation not found")
		return
	}
	if u.Role == models.RoleStudent && rsv.AccountID != u.AccountID {
		httpapi.WriteError(w, http.StatusForbidden, "cannot cancel another account's reservation")
		return
	}

	if err := h.Reservations.Cancel(ctx, reservationID); err != nil {
		if errors.Is(err, spacestore.ErrReservationNotFound) {
			httpapi.Conflict(w, errors.New("reservation already cancelled"))
			return
		}
		h.errs.ServerError(w, "failed to cancel reservation", err)
		return
	}

	rsv, err = h.Reservations.GetByID(ctx, reservationID)
	if err != nil {
		h.errs.ServerError(w, "failed to reload reservation", err)
		return
	}
	httpapi.WriteData(w, http.StatusOK, rsv)
}

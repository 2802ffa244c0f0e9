package spaces

import (
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/testutil"
)

func newTestHandler(t *testing.T) (*Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestHandleCreateSpace(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, testutil.NewJSONRequest(t, "POST", "/api/spaces", map[string]any{
		"name":     "Study Room A",
		"location": "Library 2F",
		"capacity": 6,
	}))
	if rec.Code != 201 {
		t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
	}
	var space models.Space
	testutil.DecodeData(t, rec, &space)
	if space.Status != models.StatusActive {
		t.Errorf("status = %q, want ACTIVE", space.Status)
	}
	if space.Capacity != 6 {
		t.Errorf("capacity = %d, want 6", space.Capacity)
	}
}

func TestHandleReserve(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	space := fx.CreateSpace(ctx, "Seminar Room", "Main Hall", 20)
	id := strconv.FormatInt(space.SpaceID, 10)

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	end := start.Add(2 * time.Hour)

	reserve := func(user int64, from, to time.Time) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/spaces/"+id+"/reservations", map[string]any{
			"startsAt": from.Format(time.RFC3339),
			"endsAt":   to.Format(time.RFC3339),
		})
		req = testutil.WithChiURLParam(req, "id", id)
		req = testutil.WithUser(req, testutil.StudentUser(user))
		h.HandleReserve(rec, req)
		return rec
	}

	t.Run("books a free slot", func(t *testing.T) {
		rec := reserve(100, start, end)
		if rec.Code != 201 {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
		}
		var rsv models.Reservation
		testutil.DecodeData(t, rec, &rsv)
		if rsv.Status != models.ReservationBooked {
			t.Errorf("reservation status = %q, want BOOKED", rsv.Status)
		}
		if rsv.AccountID != 100 {
			t.Errorf("accountId = %d, want 100", rsv.AccountID)
		}
	})

	t.Run("rejects an overlapping slot", func(t *testing.T) {
		rec := reserve(101, start.Add(time.Hour), end.Add(time.Hour))
		if rec.Code != 409 {
			t.Fatalf("status = %d, want 409 for overlap", rec.Code)
		}
	})

	t.Run("back to back is allowed", func(t *testing.T) {
		// Half-open intervals: a booking may start exactly when another ends.
		rec := reserve(101, end, end.Add(time.Hour))
		if rec.Code != 201 {
			t.Fatalf("status = %d, want 201; body %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects a slot in the past", func(t *testing.T) {
		past := time.Now().UTC().Add(-2 * time.Hour)
		rec := reserve(102, past, past.Add(time.Hour))
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("rejects over four hours", func(t *testing.T) {
		longStart := start.Add(72 * time.Hour)
		rec := reserve(102, longStart, longStart.Add(5*time.Hour))
		if rec.Code != 400 {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("inactive space is not bookable", func(t *testing.T) {
		closed := fx.CreateSpace(ctx, "Closed Room", "Annex", 4)
		cid := strconv.FormatInt(closed.SpaceID, 10)

		srec := httptest.NewRecorder()
		sreq := testutil.NewJSONRequest(t, "PATCH", "/api/spaces/"+cid+"/status", map[string]string{"status": "INACTIVE"})
		sreq = testutil.WithChiURLParam(sreq, "id", cid)
		h.HandleStatus(srec, sreq)
		if srec.Code != 200 {
			t.Fatalf("suspend space: status = %d, want 200", srec.Code)
		}

		rec := httptest.NewRecorder()
		req := testutil.NewJSONRequest(t, "POST", "/api/spaces/"+cid+"/reservations", map[string]any{
			"startsAt": start.Add(48 * time.Hour).Format(time.RFC3339),
			"endsAt":   start.Add(49 * time.Hour).Format(time.RFC3339),
		})
		req = testutil.WithChiURLParam(req, "id", cid)
		req = testutil.WithUser(req, testutil.StudentUser(100))
		h.HandleReserve(rec, req)
		if rec.Code != 409 {
			t.Fatalf("status = %d, want 409 for inactive space", rec.Code)
		}
	})
}

func TestHandleCancel(t *testing.T) {
	h, fx := newTestHandler(t)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	space := fx.CreateSpace(ctx, "Cancel Room", "B1", 8)
	id := strconv.FormatInt(space.SpaceID, 10)

	start := time.Now().UTC().Add(24 * time.Hour)
	rsv, err := h.Reservations.Create(ctx, models.Reservation{
		SpaceID:   space.SpaceID,
		AccountID: 200,
		StartsAt:  start,
		EndsAt:    start.Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}
	rid := strconv.FormatInt(rsv.ReservationID, 10)

	cancelReq := func(by int64) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		req := testutil.NewRequest("POST", "/api/spaces/"+id+"/reservations/"+rid+"/cancel")
		req = testutil.WithChiURLParam(req, "id", id)
		req = testutil.WithChiURLParam(req, "reservationID", rid)
		req = testutil.WithUser(req, testutil.StudentUser(by))
		h.HandleCancel(rec, req)
		return rec
	}

	t.Run("students cannot cancel others", func(t *testing.T) {
		rec := cancelReq(201)
		if rec.Code != 403 {
			t.Fatalf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("owner cancels", func(t *testing.T) {
		rec := cancelReq(200)
		if rec.Code != 200 {
			t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
		}
		var cancelled models.Reservation
		testutil.DecodeData(t, rec, &cancelled)
		if cancelled.Status != models.ReservationCancelled {
			t.Errorf("status = %q, want CANCELLED", cancelled.Status)
		}
	})

	t.Run("second cancel conflicts", func(t *testing.T) {
		rec := cancelReq(200)
		if rec.Code != 409 {
			t.Fatalf("status = %d, want 409", rec.Code)
		}
	})
}

package spacestore

import (
	"errors"
	"sync"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/testutil"
)

// Concurrent creates for the same slot must resolve to exactly one booking;
// the per-space lease serializes the overlap check against the insert.
func TestReservationCreateConcurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := NewReservations(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	space := fx.CreateSpace(ctx, "Media Lab", "Annex B1", 8)
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Minute)
	end := start.Add(time.Hour)

	const contenders = 8
	errs := make([]error, contenders)

	var wg sync.WaitGroup
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.Create(ctx, models.Reservation{
				SpaceID:   space.SpaceID,
				AccountID: int64(1000 + i),
				StartsAt:  start,
				EndsAt:    end,
			})
		}(i)
	}
	wg.Wait()

	booked := 0
	for i, err := range errs {
		switch {
		case err == nil:
			booked++
		case errors.Is(err, ErrSlotTaken):
		default:
			t.Fatalf("contender %d: unexpected error %v", i, err)
		}
	}
	if booked != 1 {
		t.Errorf("booked = %d, want exactly 1", booked)
	}

	count, err := store.Count(ctx, bson.M{
		"space_id": space.SpaceID,
		"status":   models.ReservationBooked,
	})
	if err != nil {
		t.Fatalf("count booked reservations: %v", err)
	}
	if count != 1 {
		t.Errorf("booked documents = %d, want exactly 1", count)
	}
}

func TestReservationCreateReleasesLock(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	store := NewReservations(db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	space := fx.CreateSpace(ctx, "Huddle Room", "Annex B2", 4)
	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Minute)

	// Back-to-back sequential creates on the same space: if the first did
	// not release its lease, the second would stall until lease expiry.
	for i := 0; i < 3; i++ {
		from := start.Add(time.Duration(i) * time.Hour)
		done := make(chan error, 1)
		go func() {
			_, err := store.Create(ctx, models.Reservation{
				SpaceID:   space.SpaceID,
				AccountID: 2000,
				StartsAt:  from,
				EndsAt:    from.Add(time.Hour),
			})
			done <- err
		}()
		select {
		case err := <-done:
			if err != nil {
				t.Fatalf("create %d: %v", i, err)
			}
		case <-time.After(5 * time.Second):
			t.Fatalf("create %d did not complete; space lease not released", i)
		}
	}
}

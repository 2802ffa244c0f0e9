// internal/app/store/spaces/reservationstore.go
package spacestore

import (
	"context"
	"errors"
	"time"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReservationStore manages space bookings.
type ReservationStore struct {
	db    *mongo.Database
	c     *mongo.Collection
	locks *mongo.Collection
}

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotTaken           = errors.New("the space is already booked for this time slot")
)

func NewReservations(db *mongo.Database) *ReservationStore {
	return &ReservationStore{
		db:    db,
		c:     db.Collection("reservations"),
		locks: db.Collection("reservation_locks"),
	}
}

// Create books a slot; slots are half-open intervals [starts_at, ends_at).
//
// The overlap check and the insert are two round trips, so creation is
// serialized per space through a lease document in the reservation_locks
// collection. The claim is a single atomic upsert keyed by space id: a
// concurrent claimant hits the _id unique constraint and retries until the
// holder releases or the lease expires. Two concurrent creates for the same
// slot therefore resolve to exactly one booking.
func (s *ReservationStore) Create(ctx context.Context, rsv models.Reservation) (models.Reservation, error) {
	if err := s.acquireSpaceLock(ctx, rsv.SpaceID); err != nil {
		return models.Reservation{}, err
	}
	defer s.releaseSpaceLock(rsv.SpaceID)

	taken, err := s.overlapExists(ctx, rsv.SpaceID, rsv.StartsAt, rsv.EndsAt, 0)
	if err != nil {
		return models.Reservation{}, err
	}
	if taken {
		return models.Reservation{}, ErrSlotTaken
	}
	id, err := counters.Next(ctx, s.db, counters.Reservations)
	if err != nil {
		return models.Reservation{}, err
	}
	now := time.Now().UTC()
	rsv.OID = primitive.NewObjectID()
	rsv.ReservationID = id
	rsv.Status = models.ReservationBooked
	rsv.CreatedAt = now
	rsv.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, rsv); err != nil {
		return models.Reservation{}, err
	}
	return rsv, nil
}

const (
	// spaceLockLease bounds how long a crashed holder can block a space.
	spaceLockLease = 10 * time.Second
	spaceLockRetry = 25 * time.Millisecond
)

// acquireSpaceLock claims the per-space creation lease. The upsert either
// inserts the lock document, takes over an expired lease, or fails with a
// duplicate key when another claimant holds it, in which case we retry.
func (s *ReservationStore) acquireSpaceLock(ctx context.Context, spaceID int64) error {
	for {
		now := time.Now().UTC()
		_, err := s.locks.UpdateOne(ctx,
			bson.M{"_id": spaceID, "locked_until": bson.M{"$lte": now}},
			bson.M{"$set": bson.M{"locked_until": now.Add(spaceLockLease)}},
			options.Update().SetUpsert(true),
		)
		if err == nil {
			return nil
		}
		if !wafflemongo.IsDup(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(spaceLockRetry):
		}
	}
}

// releaseSpaceLock expires the lease immediately. Uses a fresh context so
// the lock is freed even when the caller's context is already cancelled.
func (s *ReservationStore) releaseSpaceLock(spaceID int64) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, _ = s.locks.UpdateOne(ctx,
		bson.M{"_id": spaceID},
		bson.M{"$set": bson.M{"locked_until": time.Time{}}},
	)
}

func (s *ReservationStore) GetByID(ctx context.Context, id int64) (models.Reservation, error) {
	var rsv models.Reservation
	err := s.c.FindOne(ctx, bson.M{"reservation_id": id}).Decode(&rsv)
	if err == mongo.ErrNoDocuments {
		return models.Reservation{}, ErrReservationNotFound
	}
	if err != nil {
		return models.Reservation{}, err
	}
	return rsv, nil
}

// Cancel marks a booking CANCELLED, freeing the slot.
func (s *ReservationStore) Cancel(ctx context.Context, id int64) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"reservation_id": id, "status": models.ReservationBooked},
		bson.M{"$set": bson.M{"status": models.ReservationCancelled, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrReservationNotFound
	}
	return nil
}

func (s *ReservationStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"reservation_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// overlapExists reports whether a BOOKED reservation on the space intersects
// [start, end). excludeID skips a reservation being rescheduled.
func (s *ReservationStore) overlapExists(ctx context.Context, spaceID int64, start, end time.Time, excludeID int64) (bool, error) {
	filter := bson.M{
		"space_id":  spaceID,
		"status":    models.ReservationBooked,
		"starts_at": bson.M{"$lt": end},
		"ends_at":   bson.M{"$gt": start},
	}
	if excludeID != 0 {
		filter["reservation_id"] = bson.M{"$ne": excludeID}
	}
	err := s.c.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *ReservationStore) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Reservation, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rsvs []models.Reservation
	if err := cur.All(ctx, &rsvs); err != nil {
		return nil, err
	}
	return rsvs, nil
}

func (s *ReservationStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

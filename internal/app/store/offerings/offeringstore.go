// internal/app/store/offerings/offeringstore.go
package offeringstore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateOffering = errors.New("an offering with this course code already exists in the term")
	ErrNotFound          = errors.New("offering not found")
	ErrFull              = errors.New("offering is at capacity")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("offerings")}
}

func (s *Store) Create(ctx context.Context, off models.Offering) (models.Offering, error) {
	id, err := counters.Next(ctx, s.db, counters.Offerings)
	if err != nil {
		return models.Offering{}, err
	}
	now := time.Now().UTC()
	off.OID = primitive.NewObjectID()
	off.OfferingID = id
	off.TitleCI = text.Fold(off.Title)
	off.Enrolled = 0
	if off.Status == "" {
		off.Status = models.StatusActive
	}
	off.CreatedAt = now
	off.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, off); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Offering{}, ErrDuplicateOffering
		}
		return models.Offering{}, err
	}
	return off, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Offering, error) {
	var off models.Offering
	err := s.c.FindOne(ctx, bson.M{"offering_id": id}).Decode(&off)
	if err == mongo.ErrNoDocuments {
		return models.Offering{}, ErrNotFound
	}
	if err != nil {
		return models.Offering{}, err
	}
	return off, nil
}

func (s *Store) Update(ctx context.Context, id int64, off models.Offering) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if off.Title != "" {
		set["title"] = off.Title
		set["title_ci"] = text.Fold(off.Title)
	}
	if off.Instructor != "" {
		set["instructor"] = off.Instructor
	}
	if off.Credits != 0 {
		set["credits"] = off.Credits
	}
	if off.Capacity != 0 {
		set["capacity"] = off.Capacity
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"offering_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateOffering
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"offering_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ReserveSeat atomically increments the enrolled count if a seat is free.
// The filter compares enrolled against capacity in one round trip, so two
// concurrent enrollments cannot both take the last seat.
func (s *Store) ReserveSeat(ctx context.Context, id int64) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{
			"offering_id": id,
			"status":      models.StatusActive,
			"$expr":       bson.M{"$lt": bson.A{"$enrolled", "$capacity"}},
		},
		bson.M{"$inc": bson.M{"enrolled": 1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if err := s.c.FindOne(ctx, bson.M{"offering_id": id}).Err(); err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrFull
	}
	return nil
}

// ReleaseSeat decrements the enrolled count after a drop, never below zero.
func (s *Store) ReleaseSeat(ctx context.Context, id int64) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"offering_id": id, "enrolled": bson.M{"$gt": 0}},
		bson.M{"$inc": bson.M{"enrolled": -1}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"offering_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Offering, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var offs []models.Offering
	if err := cur.All(ctx, &offs); err != nil {
		return nil, err
	}
	return offs, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

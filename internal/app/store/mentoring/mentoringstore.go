// internal/app/store/mentoring/mentoringstore.go
package mentoringstore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
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
	ErrNotFound       = errors.New("mentoring match not found")
	ErrAlreadyDecided = errors.New("mentoring match has already been decided")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("mentoring_matches")}
}

// Create inserts a new PENDING match.
func (s *Store) Create(ctx context.Context, match models.MentoringMatch) (models.MentoringMatch, error) {
	id, err := counters.Next(ctx, s.db, counters.Mentoring)
	if err != nil {
		return models.MentoringMatch{}, err
	}
	now := time.Now().UTC()
	match.OID = primitive.NewObjectID()
	match.MatchID = id
	match.Status = models.MentoringPending
	match.CreatedAt = now
	match.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, match); err != nil {
		return models.MentoringMatch{}, err
	}
	return match, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.MentoringMatch, error) {
	var match models.MentoringMatch
	err := s.c.FindOne(ctx, bson.M{"match_id": id}).Decode(&match)
	if err == mongo.ErrNoDocuments {
		return models.MentoringMatch{}, ErrNotFound
	}
	if err != nil {
		return models.MentoringMatch{}, err
	}
	return match, nil
}

// Decide moves a PENDING match to APPROVED or REJECTED. The filter requires
// the current status to still be PENDING, so a second decision loses the race
// and gets ErrAlreadyDecided.
func (s *Store) Decide(ctx context.Context, id int64, status string, decidedByID int64) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"match_id": id, "status": models.MentoringPending},
		bson.M{"$set": bson.M{
			"status":        status,
			"decided_by_id": decidedByID,
			"decided_at":    now,
			"updated_at":    now,
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Distinguish "missing" from "already decided".
		if err := s.c.FindOne(ctx, bson.M{"match_id": id}).Err(); err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrAlreadyDecided
	}
	return nil
}

// End moves an APPROVED match to ENDED.
func (s *Store) End(ctx context.Context, id int64) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"match_id": id, "status": models.MentoringApproved},
		bson.M{"$set": bson.M{"status": models.MentoringEnded, "updated_at": time.Now().UTC()}},
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
	res, err := s.c.DeleteOne(ctx, bson.M{"match_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.MentoringMatch, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var matches []models.MentoringMatch
	if err := cur.All(ctx, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

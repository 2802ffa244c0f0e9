// internal/app/store/offerings/enrollmentstore.go
package offeringstore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnrollmentStore manages enrollment records. A unique index on
// (offering_id, student_id) keeps a student from enrolling twice.
type EnrollmentStore struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateEnrollment = errors.New("student is already enrolled in this offering")
	ErrEnrollmentNotFound  = errors.New("enrollment not found")
)

func NewEnrollments(db *mongo.Database) *EnrollmentStore {
	return &EnrollmentStore{db: db, c: db.Collection("enrollments")}
}

func (s *EnrollmentStore) Create(ctx context.Context, enr models.Enrollment) (models.Enrollment, error) {
	id, err := counters.Next(ctx, s.db, counters.Enrollments)
	if err != nil {
		return models.Enrollment{}, err
	}
	enr.OID = primitive.NewObjectID()
	enr.EnrollmentID = id
	enr.Status = models.EnrollmentEnrolled
	enr.EnrolledAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, enr); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Enrollment{}, ErrDuplicateEnrollment
		}
		return models.Enrollment{}, err
	}
	return enr, nil
}

func (s *EnrollmentStore) GetByID(ctx context.Context, id int64) (models.Enrollment, error) {
	var enr models.Enrollment
	err := s.c.FindOne(ctx, bson.M{"enrollment_id": id}).Decode(&enr)
	if err == mongo.ErrNoDocuments {
		return models.Enrollment{}, ErrEnrollmentNotFound
	}
	if err != nil {
		return models.Enrollment{}, err
	}
	return enr, nil
}

// Drop marks an ENROLLED record as DROPPED. Dropping an already-dropped
// enrollment is a no-op error so the seat count is released exactly once.
func (s *EnrollmentStore) Drop(ctx context.Context, id int64) error {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"enrollment_id": id, "status": models.EnrollmentEnrolled},
		bson.M{"$set": bson.M{"status": models.EnrollmentDropped, "dropped_at": now}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrEnrollmentNotFound
	}
	return nil
}

func (s *EnrollmentStore) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Enrollment, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var enrs []models.Enrollment
	if err := cur.All(ctx, &enrs); err != nil {
		return nil, err
	}
	return enrs, nil
}

func (s *EnrollmentStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

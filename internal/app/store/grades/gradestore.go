// internal/app/store/grades/gradestore.go
package gradestore

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

var ErrNotFound = errors.New("grade not found")

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("grades")}
}

// Upsert records a grade for an enrollment, overwriting any earlier grade.
// The enrollment id is the natural key; a re-grade keeps the same grade_id.
func (s *Store) Upsert(ctx context.Context, entry models.GradeEntry) (models.GradeEntry, error) {
	now := time.Now().UTC()

	var existing models.GradeEntry
	err := s.c.FindOne(ctx, bson.M{"enrollment_id": entry.EnrollmentID}).Decode(&existing)
	switch {
	case err == mongo.ErrNoDocuments:
		id, err := counters.Next(ctx, s.db, counters.Grades)
		if err != nil {
			return models.GradeEntry{}, err
		}
		entry.OID = primitive.NewObjectID()
		entry.GradeID = id
		entry.GradedAt = now
		entry.UpdatedAt = now
		if _, err := s.c.InsertOne(ctx, entry); err != nil {
			return models.GradeEntry{}, err
		}
		return entry, nil
	case err != nil:
		return models.GradeEntry{}, err
	}

	_, err = s.c.UpdateOne(ctx,
		bson.M{"enrollment_id": entry.EnrollmentID},
		bson.M{"$set": bson.M{
			"grade":        entry.Grade,
			"graded_by_id": entry.GradedByID,
			"updated_at":   now,
		}},
	)
	if err != nil {
		return models.GradeEntry{}, err
	}
	existing.Grade = entry.Grade
	existing.GradedByID = entry.GradedByID
	existing.UpdatedAt = now
	return existing, nil
}

func (s *Store) GetByEnrollment(ctx context.Context, enrollmentID int64) (models.GradeEntry, error) {
	var entry models.GradeEntry
	err := s.c.FindOne(ctx, bson.M{"enrollment_id": enrollmentID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return models.GradeEntry{}, ErrNotFound
	}
	if err != nil {
		return models.GradeEntry{}, err
	}
	return entry, nil
}

// ListByStudent returns every grade a student has earned, for transcripts
// and GPA computation.
func (s *Store) ListByStudent(ctx context.Context, studentID int64) ([]models.GradeEntry, error) {
	cur, err := s.c.Find(ctx, bson.M{"student_id": studentID},
		options.Find().SetSort(bson.D{{Key: "term", Value: 1}, {Key: "course_code", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.GradeEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) Delete(ctx context.Context, enrollmentID int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"enrollment_id": enrollmentID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.GradeEntry, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var entries []models.GradeEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

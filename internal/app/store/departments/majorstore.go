// internal/app/store/departments/majorstore.go
package departmentstore

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

// MajorStore manages majors, which always belong to a department.
type MajorStore struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateMajor = errors.New("a major with this name already exists in the department")
	ErrMajorNotFound  = errors.New("major not found")
)

func NewMajors(db *mongo.Database) *MajorStore {
	return &MajorStore{db: db, c: db.Collection("majors")}
}

func (s *MajorStore) Create(ctx context.Context, major models.Major) (models.Major, error) {
	id, err := counters.Next(ctx, s.db, counters.Majors)
	if err != nil {
		return models.Major{}, err
	}
	now := time.Now().UTC()
	major.OID = primitive.NewObjectID()
	major.MajorID = id
	major.NameCI = text.Fold(major.Name)
	if major.Status == "" {
		major.Status = models.StatusActive
	}
	major.CreatedAt = now
	major.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, major); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Major{}, ErrDuplicateMajor
		}
		return models.Major{}, err
	}
	return major, nil
}

func (s *MajorStore) GetByID(ctx context.Context, id int64) (models.Major, error) {
	var major models.Major
	err := s.c.FindOne(ctx, bson.M{"major_id": id}).Decode(&major)
	if err == mongo.ErrNoDocuments {
		return models.Major{}, ErrMajorNotFound
	}
	if err != nil {
		return models.Major{}, err
	}
	return major, nil
}

func (s *MajorStore) Update(ctx context.Context, id int64, major models.Major) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if major.Name != "" {
		set["name"] = major.Name
		set["name_ci"] = text.Fold(major.Name)
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"major_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateMajor
		}
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMajorNotFound
	}
	return nil
}

func (s *MajorStore) UpdateStatus(ctx context.Context, id int64, status string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"major_id": id},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrMajorNotFound
	}
	return nil
}

func (s *MajorStore) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"major_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByDepartment returns how many majors a department has, used to block
// deleting a department that still has majors.
func (s *MajorStore) CountByDepartment(ctx context.Context, departmentID int64) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"department_id": departmentID})
}

func (s *MajorStore) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Major, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var majors []models.Major
	if err := cur.All(ctx, &majors); err != nil {
		return nil, err
	}
	return majors, nil
}

func (s *MajorStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

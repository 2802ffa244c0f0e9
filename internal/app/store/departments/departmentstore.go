// internal/app/store/departments/departmentstore.go
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

type Store struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateDepartment = errors.New("a department with this name or code already exists")
	ErrNotFound            = errors.New("department not found")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("departments")}
}

func (s *Store) Create(ctx context.Context, dept models.Department) (models.Department, error) {
	id, err := counters.Next(ctx, s.db, counters.Departments)
	if err != nil {
		return models.Department{}, err
	}
	now := time.Now().UTC()
	dept.OID = primitive.NewObjectID()
	dept.DepartmentID = id
	dept.NameCI = text.Fold(dept.Name)
	if dept.Status == "" {
		dept.Status = models.StatusActive
	}
	dept.CreatedAt = now
	dept.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, dept); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Department{}, ErrDuplicateDepartment
		}
		return models.Department{}, err
	}
	return dept, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Department, error) {
	var dept models.Department
	err := s.c.FindOne(ctx, bson.M{"department_id": id}).Decode(&dept)
	if err == mongo.ErrNoDocuments {
		return models.Department{}, ErrNotFound
	}
	if err != nil {
		return models.Department{}, err
	}
	return dept, nil
}

// Update modifies a department's mutable fields and refreshes UpdatedAt.
func (s *Store) Update(ctx context.Context, id int64, dept models.Department) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if dept.Name != "" {
		set["name"] = dept.Name
		set["name_ci"] = text.Fold(dept.Name)
	}
	if dept.Code != "" {
		set["code"] = dept.Code
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"department_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateDepartment
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
		bson.M{"department_id": id},
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

// Delete removes a department by id. Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"department_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// NameExistsForOther checks if another department already uses this name.
func (s *Store) NameExistsForOther(ctx context.Context, nameCI string, excludeID int64) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{
		"name_ci":       nameCI,
		"department_id": bson.M{"$ne": excludeID},
	}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Department, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var depts []models.Department
	if err := cur.All(ctx, &depts); err != nil {
		return nil, err
	}
	return depts, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

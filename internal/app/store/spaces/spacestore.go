// internal/app/store/spaces/spacestore.go
package spacestore

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
	ErrDuplicateSpace = errors.New("a space with this name already exists")
	ErrNotFound       = errors.New("space not found")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("spaces")}
}

func (s *Store) Create(ctx context.Context, space models.Space) (models.Space, error) {
	id, err := counters.Next(ctx, s.db, counters.Spaces)
	if err != nil {
		return models.Space{}, err
	}
	now := time.Now().UTC()
	space.OID = primitive.NewObjectID()
	space.SpaceID = id
	space.NameCI = text.Fold(space.Name)
	if space.Status == "" {
		space.Status = models.StatusActive
	}
	space.CreatedAt = now
	space.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, space); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Space{}, ErrDuplicateSpace
		}
		return models.Space{}, err
	}
	return space, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Space, error) {
	var space models.Space
	err := s.c.FindOne(ctx, bson.M{"space_id": id}).Decode(&space)
	if err == mongo.ErrNoDocuments {
		return models.Space{}, ErrNotFound
	}
	if err != nil {
		return models.Space{}, err
	}
	return space, nil
}

func (s *Store) Update(ctx context.Context, id int64, space models.Space) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if space.Name != "" {
		set["name"] = space.Name
		set["name_ci"] = text.Fold(space.Name)
	}
	if space.Location != "" {
		set["location"] = space.Location
	}
	if space.Capacity != 0 {
		set["capacity"] = space.Capacity
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"space_id": id}, bson.M{"$set": set})
	if err != nil {
		if wafflemongo.IsDup(err) {
			return ErrDuplicateSpace
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
		bson.M{"space_id": id},
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

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"space_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Space, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var spaces []models.Space
	if err := cur.All(ctx, &spaces); err != nil {
		return nil, err
	}
	return spaces, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// internal/app/store/resources/resourcestore.go
package resourcestore

import (
	"context"
	"errors"
	"time"

	"github.com/team-lms-2026-1/LMS-project-sub001/internal/app/store/counters"
	"github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"
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

var ErrNotFound = errors.New("resource not found")

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("resources")}
}

func (s *Store) Create(ctx context.Context, res models.Resource) (models.Resource, error) {
	id, err := counters.Next(ctx, s.db, counters.Resources)
	if err != nil {
		return models.Resource{}, err
	}
	now := time.Now().UTC()
	res.OID = primitive.NewObjectID()
	res.ResourceID = id
	res.TitleCI = text.Fold(res.Title)
	if res.Files == nil {
		res.Files = []models.ResourceFile{}
	}
	res.CreatedAt = now
	res.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, res); err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Resource, error) {
	var res models.Resource
	err := s.c.FindOne(ctx, bson.M{"resource_id": id}).Decode(&res)
	if err == mongo.ErrNoDocuments {
		return models.Resource{}, ErrNotFound
	}
	if err != nil {
		return models.Resource{}, err
	}
	return res, nil
}

func (s *Store) Update(ctx context.Context, id int64, res models.Resource) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if res.Title != "" {
		set["title"] = res.Title
		set["title_ci"] = text.Fold(res.Title)
	}
	if res.Description != "" {
		set["description"] = res.Description
	}
	if res.Category != "" {
		set["category"] = res.Category
	}
	upd, err := s.c.UpdateOne(ctx, bson.M{"resource_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if upd.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AddFiles appends stored attachments to a resource.
func (s *Store) AddFiles(ctx context.Context, id int64, files []models.ResourceFile) error {
	if len(files) == 0 {
		return nil
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"resource_id": id},
		bson.M{
			"$push": bson.M{"files": bson.M{"$each": files}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveFile drops a single attachment by its storage path.
func (s *Store) RemoveFile(ctx context.Context, id int64, path string) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"resource_id": id},
		bson.M{
			"$pull": bson.M{"files": bson.M{"path": path}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
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
	res, err := s.c.DeleteOne(ctx, bson.M{"resource_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Resource, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var resources []models.Resource
	if err := cur.All(ctx, &resources); err != nil {
		return nil, err
	}
	return resources, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

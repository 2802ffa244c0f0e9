// internal/app/store/faqs/faqstore.go
package faqstore

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

var ErrNotFound = errors.New("faq item not found")

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("faqs")}
}

func (s *Store) Create(ctx context.Context, item models.FaqItem) (models.FaqItem, error) {
	id, err := counters.Next(ctx, s.db, counters.Faqs)
	if err != nil {
		return models.FaqItem{}, err
	}
	now := time.Now().UTC()
	item.OID = primitive.NewObjectID()
	item.FaqID = id
	item.QuestionCI = text.Fold(item.Question)
	item.CreatedAt = now
	item.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, item); err != nil {
		return models.FaqItem{}, err
	}
	return item, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.FaqItem, error) {
	var item models.FaqItem
	err := s.c.FindOne(ctx, bson.M{"faq_id": id}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return models.FaqItem{}, ErrNotFound
	}
	if err != nil {
		return models.FaqItem{}, err
	}
	return item, nil
}

func (s *Store) Update(ctx context.Context, id int64, item models.FaqItem) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if item.Category != "" {
		set["category"] = item.Category
	}
	if item.Question != "" {
		set["question"] = item.Question
		set["question_ci"] = text.Fold(item.Question)
	}
	if item.AnswerHTML != "" {
		set["answer_html"] = item.AnswerHTML
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"faq_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"faq_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.FaqItem, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []models.FaqItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

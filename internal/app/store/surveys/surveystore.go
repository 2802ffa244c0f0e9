// internal/app/store/surveys/surveystore.go
package surveystore

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

var (
	ErrNotFound          = errors.New("survey not found")
	ErrInvalidTransition = errors.New("survey cannot move to the requested status")
	ErrNotEditable       = errors.New("survey questions are editable only in draft")
)

func New(db *mongo.Database) *Store {
	return &Store{db: db, c: db.Collection("surveys")}
}

// Create inserts a new DRAFT survey.
func (s *Store) Create(ctx context.Context, survey models.Survey) (models.Survey, error) {
	id, err := counters.Next(ctx, s.db, counters.Surveys)
	if err != nil {
		return models.Survey{}, err
	}
	now := time.Now().UTC()
	survey.OID = primitive.NewObjectID()
	survey.SurveyID = id
	survey.TitleCI = text.Fold(survey.Title)
	survey.Status = models.SurveyDraft
	if survey.Questions == nil {
		survey.Questions = []models.SurveyQuestion{}
	}
	survey.CreatedAt = now
	survey.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, survey); err != nil {
		return models.Survey{}, err
	}
	return survey, nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (models.Survey, error) {
	var survey models.Survey
	err := s.c.FindOne(ctx, bson.M{"survey_id": id}).Decode(&survey)
	if err == mongo.ErrNoDocuments {
		return models.Survey{}, ErrNotFound
	}
	if err != nil {
		return models.Survey{}, err
	}
	return survey, nil
}

// Update modifies title/description/questions. The filter requires DRAFT
// status, since open or closed surveys are frozen.
func (s *Store) Update(ctx context.Context, id int64, survey models.Survey) error {
	set := bson.M{
		"updated_at": time.Now().UTC(),
	}
	if survey.Title != "" {
		set["title"] = survey.Title
		set["title_ci"] = text.Fold(survey.Title)
	}
	if survey.Description != "" {
		set["description"] = survey.Description
	}
	if survey.Questions != nil {
		set["questions"] = survey.Questions
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"survey_id": id, "status": models.SurveyDraft},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if err := s.c.FindOne(ctx, bson.M{"survey_id": id}).Err(); err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrNotEditable
	}
	return nil
}

// Transition moves a survey along its lifecycle. The only legal moves are
// DRAFT→OPEN and OPEN→CLOSED; the update filter pins the expected current
// status so concurrent transitions cannot skip a state.
func (s *Store) Transition(ctx context.Context, id int64, from, to string) error {
	if !models.SurveyTransitionOK(from, to) {
		return ErrInvalidTransition
	}
	now := time.Now().UTC()
	set := bson.M{"status": to, "updated_at": now}
	switch to {
	case models.SurveyOpen:
		set["opened_at"] = now
	case models.SurveyClosed:
		set["closed_at"] = now
	}
	res, err := s.c.UpdateOne(ctx,
		bson.M{"survey_id": id, "status": from},
		bson.M{"$set": set},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		if err := s.c.FindOne(ctx, bson.M{"survey_id": id}).Err(); err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return ErrInvalidTransition
	}
	return nil
}

// Delete removes a survey. Only DRAFT surveys may be deleted; open and closed
// surveys carry responses that must be preserved.
func (s *Store) Delete(ctx context.Context, id int64) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"survey_id": id, "status": models.SurveyDraft})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *Store) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Survey, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var surveys []models.Survey
	if err := cur.All(ctx, &surveys); err != nil {
		return nil, err
	}
	return surveys, nil
}

func (s *Store) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

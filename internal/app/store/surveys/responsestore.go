// internal/app/store/surveys/responsestore.go
package surveystore

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

// ResponseStore manages survey responses. A unique index on
// (survey_id, account_id) enforces one response per account per survey.
type ResponseStore struct {
	db *mongo.Database
	c  *mongo.Collection
}

var (
	ErrDuplicateResponse = errors.New("this account has already responded to the survey")
	ErrResponseNotFound  = errors.New("survey response not found")
)

func NewResponses(db *mongo.Database) *ResponseStore {
	return &ResponseStore{db: db, c: db.Collection("survey_responses")}
}

func (s *ResponseStore) Create(ctx context.Context, resp models.SurveyResponse) (models.SurveyResponse, error) {
	id, err := counters.Next(ctx, s.db, counters.Responses)
	if err != nil {
		return models.SurveyResponse{}, err
	}
	resp.OID = primitive.NewObjectID()
	resp.ResponseID = id
	resp.CreatedAt = time.Now().UTC()
	if _, err := s.c.InsertOne(ctx, resp); err != nil {
		if wafflemongo.IsDup(err) {
			return models.SurveyResponse{}, ErrDuplicateResponse
		}
		return models.SurveyResponse{}, err
	}
	return resp, nil
}

// GetByAccount returns an account's response to a survey, if any.
func (s *ResponseStore) GetByAccount(ctx context.Context, surveyID, accountID int64) (models.SurveyResponse, error) {
	var resp models.SurveyResponse
	err := s.c.FindOne(ctx, bson.M{"survey_id": surveyID, "account_id": accountID}).Decode(&resp)
	if err == mongo.ErrNoDocuments {
		return models.SurveyResponse{}, ErrResponseNotFound
	}
	if err != nil {
		return models.SurveyResponse{}, err
	}
	return resp, nil
}

// DeleteBySurvey removes all responses for a survey (admin cleanup).
func (s *ResponseStore) DeleteBySurvey(ctx context.Context, surveyID int64) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"survey_id": surveyID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (s *ResponseStore) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.SurveyResponse, error) {
	cur, err := s.c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var resps []models.SurveyResponse
	if err := cur.All(ctx, &resps); err != nil {
		return nil, err
	}
	return resps, nil
}

func (s *ResponseStore) Count(ctx context.Context, filter bson.M) (int64, error) {
	return s.c.CountDocuments(ctx, filter)
}

// internal/app/store/counters/counters.go

// Package counters allocates monotonically increasing numeric ids.
//
// Entities are addressed over the API by numeric ids (account 17, survey 3)
// rather than ObjectID hex strings. Each entity family has one counter
// document in the `counters` collection; Next atomically increments and
// returns the new value, so ids are unique even under concurrent creates.
package counters

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Counter names, one per entity family.
const (
	Accounts     = "accounts"
	Departments  = "departments"
	Majors       = "majors"
	Mentoring    = "mentoring_matches"
	Surveys      = "surveys"
	Responses    = "survey_responses"
	Offerings    = "offerings"
	Enrollments  = "enrollments"
	Grades       = "grades"
	Faqs         = "faqs"
	QnaPosts     = "qna_posts"
	QnaAnswers   = "qna_answers"
	Resources    = "resources"
	Spaces       = "spaces"
	Reservations = "reservations"
)

type counterDoc struct {
	Name string `bson:"_id"`
	Seq  int64  `bson:"seq"`
}

// Next returns the next id for the named counter, creating it at 1 if absent.
func Next(ctx context.Context, db *mongo.Database, name string) (int64, error) {
	var doc counterDoc
	err := db.Collection("counters").FindOneAndUpdate(ctx,
		bson.M{"_id": name},
		bson.M{"$inc": bson.M{"seq": 1}},
		options.FindOneAndUpdate().
			SetUpsert(true).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		return 0, fmt.Errorf("next id for %q: %w", name, err)
	}
	return doc.Seq, nil
}

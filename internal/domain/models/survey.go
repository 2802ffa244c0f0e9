// internal/domain/models/survey.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Survey is an administered questionnaire with an embedded question list.
//
// Lifecycle: DRAFT → OPEN → CLOSED. Questions are editable only in DRAFT;
// responses are accepted only while OPEN.
type Survey struct {
	OID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SurveyID int64              `bson:"survey_id" json:"id"`

	Title       string `bson:"title" json:"title"`
	TitleCI     string `bson:"title_ci" json:"-"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`

	Status    string           `bson:"status" json:"status"` // DRAFT | OPEN | CLOSED
	Questions []SurveyQuestion `bson:"questions" json:"questions"`

	OpenedAt *time.Time `bson:"opened_at,omitempty" json:"openedAt,omitempty"`
	ClosedAt *time.Time `bson:"closed_at,omitempty" json:"closedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// SurveyQuestion is one question embedded in a survey document.
// Seq is 1-based and unique within the survey.
type SurveyQuestion struct {
	Seq      int    `bson:"seq" json:"seq"`
	Text     string `bson:"text" json:"text"`
	Kind     string `bson:"kind" json:"kind"` // "scale" (1..5) or "text"
	Required bool   `bson:"required" json:"required"`
}

// SurveyResponse records one account's answers to a survey.
// Exactly one document per (survey_id, account_id), enforced by a unique index.
type SurveyResponse struct {
	OID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ResponseID int64              `bson:"response_id" json:"id"`

	SurveyID  int64 `bson:"survey_id" json:"surveyId"`
	AccountID int64 `bson:"account_id" json:"accountId"`

	Answers []SurveyAnswer `bson:"answers" json:"answers"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// SurveyAnswer is a single answer keyed by question sequence.
type SurveyAnswer struct {
	Seq   int    `bson:"seq" json:"seq"`
	Scale int    `bson:"scale,omitempty" json:"scale,omitempty"`
	Text  string `bson:"text,omitempty" json:"text,omitempty"`
}

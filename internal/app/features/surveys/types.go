// internal/app/features/surveys/types.go
package surveys

import "github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"

// surveyRequest covers both create and update payloads.
type surveyRequest struct {
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	Questions   []models.SurveyQuestion `json:"questions"`
}

// statusRequest is the payload for PATCH /api/surveys/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// respondRequest is the payload for POST /api/surveys/{id}/responses.
type respondRequest struct {
	Answers []models.SurveyAnswer `json:"answers"`
}

// questionSummary aggregates scale answers for one question.
type questionSummary struct {
	Seq     int     `json:"seq"`
	Text    string  `json:"text"`
	Kind    string  `json:"kind"`
	Answers int     `json:"answers"`
	Average float64 `json:"average,omitempty"`
}

// surveySummary is the payload for GET /api/surveys/{id}/summary.
type surveySummary struct {
	SurveyID  int64             `json:"surveyId"`
	Title     string            `json:"title"`
	Status    string            `json:"status"`
	Responses int64             `json:"responses"`
	Questions []questionSummary `json:"questions"`
}

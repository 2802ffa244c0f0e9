// internal/app/features/grades/types.go
package grades

import "github.com/team-lms-2026-1/LMS-project-sub001/internal/domain/models"

// assignRequest is the payload for PUT /api/grades/enrollments/{enrollmentID}.
type assignRequest struct {
	Grade string `json:"grade"`
}

// transcript is the payload for the transcript endpoints. GPA is computed on
// a 4.5 scale, weighted by credits.
type transcript struct {
	StudentID    int64               `json:"studentId"`
	Entries      []models.GradeEntry `json:"entries"`
	TotalCredits int                 `json:"totalCredits"`
	GPA          float64             `json:"gpa"`
}

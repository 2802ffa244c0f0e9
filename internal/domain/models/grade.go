// internal/domain/models/grade.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GradeEntry records the letter grade awarded for one enrollment.
// One document per enrollment; re-grading overwrites in place.
type GradeEntry struct {
	OID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	GradeID int64              `bson:"grade_id" json:"id"`

	EnrollmentID int64  `bson:"enrollment_id" json:"enrollmentId"`
	OfferingID   int64  `bson:"offering_id" json:"offeringId"`
	StudentID    int64  `bson:"student_id" json:"studentId"`
	CourseCode   string `bson:"course_code" json:"courseCode"`
	Term         string `bson:"term" json:"term"`
	Credits      int    `bson:"credits" json:"credits"`

	Grade string `bson:"grade" json:"grade"` // A+, A, B+, B, C+, C, D, F

	GradedByID int64     `bson:"graded_by_id" json:"-"`
	GradedAt   time.Time `bson:"graded_at" json:"gradedAt"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updatedAt"`
}

// gradePoints maps letter grades to grade points on a 4.5 scale.
var gradePoints = map[string]float64{
	"A+": 4.5, "A": 4.0,
	"B+": 3.5, "B": 3.0,
	"C+": 2.5, "C": 2.0,
	"D": 1.0, "F": 0.0,
}

// IsValidGrade checks if a value is a recognized letter grade.
func IsValidGrade(grade string) bool {
	_, ok := gradePoints[grade]
	return ok
}

// GradePoints returns the grade-point value for a letter grade (0 if unknown).
func GradePoints(grade string) float64 {
	return gradePoints[grade]
}

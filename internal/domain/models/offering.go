// internal/domain/models/offering.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Offering is a curricular offering of a course in a given term.
type Offering struct {
	OID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	OfferingID int64              `bson:"offering_id" json:"id"`

	CourseCode string `bson:"course_code" json:"courseCode"` // e.g. "CS101"
	Title      string `bson:"title" json:"title"`
	TitleCI    string `bson:"title_ci" json:"-"`
	Term       string `bson:"term" json:"term"` // e.g. "2026-FALL"
	Credits    int    `bson:"credits" json:"credits"`

	DepartmentID int64  `bson:"department_id" json:"departmentId"`
	Instructor   string `bson:"instructor,omitempty" json:"instructor,omitempty"`

	// Capacity is the enrollment ceiling; Enrolled is maintained by the
	// enrollment store and must never exceed it.
	Capacity int `bson:"capacity" json:"capacity"`
	Enrolled int `bson:"enrolled" json:"enrolled"`

	Status string `bson:"status" json:"status"` // ACTIVE | INACTIVE

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Enrollment links a student account to an offering.
// Exactly one document per (offering_id, student_id), enforced by a unique index.
type Enrollment struct {
	OID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	EnrollmentID int64              `bson:"enrollment_id" json:"id"`

	OfferingID  int64  `bson:"offering_id" json:"offeringId"`
	StudentID   int64  `bson:"student_id" json:"studentId"`
	StudentName string `bson:"student_name" json:"studentName"`

	Status string `bson:"status" json:"status"` // ENROLLED | DROPPED

	EnrolledAt time.Time  `bson:"enrolled_at" json:"enrolledAt"`
	DroppedAt  *time.Time `bson:"dropped_at,omitempty" json:"droppedAt,omitempty"`
}

// internal/domain/models/statuses.go
package models

// Canonical status identifiers.
//
// These values are stored in the database and served verbatim over the API.
// They are stable, language-agnostic keys; human-facing labels belong to the
// frontend.
const (
	// Account statuses.
	AccountActive    = "ACTIVE"
	AccountSuspended = "SUSPENDED"

	// Department / major / space statuses.
	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"

	// Survey lifecycle.
	SurveyDraft  = "DRAFT"
	SurveyOpen   = "OPEN"
	SurveyClosed = "CLOSED"

	// Mentoring match lifecycle.
	MentoringPending  = "PENDING"
	MentoringApproved = "APPROVED"
	MentoringRejected = "REJECTED"
	MentoringEnded    = "ENDED"

	// Enrollment statuses.
	EnrollmentEnrolled = "ENROLLED"
	EnrollmentDropped  = "DROPPED"

	// Reservation statuses.
	ReservationBooked    = "BOOKED"
	ReservationCancelled = "CANCELLED"
)

// Account roles.
const (
	RoleAdmin   = "ADMIN"
	RoleStaff   = "STAFF"
	RoleStudent = "STUDENT"
)

// AccountRoles is the full set of allowed roles, used for validation.
var AccountRoles = []string{RoleAdmin, RoleStaff, RoleStudent}

// IsValidRole checks if a value is a valid account role.
func IsValidRole(role string) bool {
	for _, r := range AccountRoles {
		if r == role {
			return true
		}
	}
	return false
}

// SurveyTransitionOK reports whether a survey may move from one lifecycle
// state to another. The only legal transitions are DRAFT→OPEN and OPEN→CLOSED.
func SurveyTransitionOK(from, to string) bool {
	switch {
	case from == SurveyDraft && to == SurveyOpen:
		return true
	case from == SurveyOpen && to == SurveyClosed:
		return true
	}
	return false
}

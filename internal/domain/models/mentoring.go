// internal/domain/models/mentoring.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MentoringMatch pairs a mentor account with a mentee account.
//
// A match starts PENDING (requested by the mentee or created by staff) and is
// moved to APPROVED or REJECTED by an admin/staff account. APPROVED matches
// are later moved to ENDED when the mentoring period finishes.
type MentoringMatch struct {
	OID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MatchID int64              `bson:"match_id" json:"id"`

	MentorID   int64  `bson:"mentor_id" json:"mentorId"`
	MentorName string `bson:"mentor_name" json:"mentorName"`
	MenteeID   int64  `bson:"mentee_id" json:"menteeId"`
	MenteeName string `bson:"mentee_name" json:"menteeName"`

	Topic  string `bson:"topic,omitempty" json:"topic,omitempty"`
	Status string `bson:"status" json:"status"` // PENDING | APPROVED | REJECTED | ENDED

	// DecidedByID records the staff/admin account that approved or rejected.
	DecidedByID int64      `bson:"decided_by_id,omitempty" json:"-"`
	DecidedAt   *time.Time `bson:"decided_at,omitempty" json:"decidedAt,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Decided reports whether the match has left the PENDING state.
func (m *MentoringMatch) Decided() bool {
	return m.Status != MentoringPending
}

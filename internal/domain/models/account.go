// internal/domain/models/account.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Terminology: Account Identifiers
//   - AccountID / account_id: the numeric id served over the API and used by
//     clients to address a row. Allocated from the counters collection.
//   - LoginID / login_id: the human-readable string accounts type to log in.
//
// Every entity carries both a Mongo ObjectID (_id, internal only) and a
// numeric AccountID-style id so list rows have stable numeric identity.

// Account represents admins, staff, and students.
type Account struct {
	OID       primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	AccountID int64              `bson:"account_id" json:"id"`

	LoginID   string `bson:"login_id" json:"loginId"`
	LoginIDCI string `bson:"login_id_ci" json:"-"` // lowercase, diacritics-stripped
	FullName  string `bson:"full_name" json:"name"`
	FullNameCI string `bson:"full_name_ci" json:"-"`
	Email     string `bson:"email,omitempty" json:"email,omitempty"`

	// PasswordHash is a bcrypt hash; never serialized.
	PasswordHash []byte `bson:"password_hash,omitempty" json:"-"`

	Role   string `bson:"role" json:"role"`     // ADMIN | STAFF | STUDENT
	Status string `bson:"status" json:"status"` // ACTIVE | SUSPENDED

	// DepartmentID links students/staff to their department (0 = none).
	DepartmentID int64 `bson:"department_id,omitempty" json:"departmentId,omitempty"`
	MajorID      int64 `bson:"major_id,omitempty" json:"majorId,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the account may sign in.
func (a *Account) IsActive() bool {
	return a.Status == AccountActive
}

// internal/domain/models/department.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department includes a case/diacritic-insensitive name for search/sort.
type Department struct {
	OID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	DepartmentID int64              `bson:"department_id" json:"id"`

	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"` // always stored
	Code   string `bson:"code" json:"code"` // short unique code, e.g. "CSE"

	Status string `bson:"status" json:"status"` // ACTIVE | INACTIVE

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Major is a field of study inside a department.
type Major struct {
	OID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	MajorID int64              `bson:"major_id" json:"id"`

	DepartmentID int64 `bson:"department_id" json:"departmentId"`

	Name   string `bson:"name" json:"name"`
	NameCI string `bson:"name_ci" json:"-"`

	Status string `bson:"status" json:"status"` // ACTIVE | INACTIVE

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

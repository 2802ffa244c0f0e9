// internal/domain/models/space.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Space is a reservable study space (reading room, seminar room, carrel).
type Space struct {
	OID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	SpaceID int64              `bson:"space_id" json:"id"`

	Name     string `bson:"name" json:"name"`
	NameCI   string `bson:"name_ci" json:"-"`
	Location string `bson:"location" json:"location"`
	Capacity int    `bson:"capacity" json:"capacity"`

	Status string `bson:"status" json:"status"` // ACTIVE | INACTIVE

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Reservation books a space for a half-open time slot [StartsAt, EndsAt).
//
// Two BOOKED reservations on the same space must not overlap; the store
// rejects inserts whose slot intersects an existing booking.
type Reservation struct {
	OID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ReservationID int64              `bson:"reservation_id" json:"id"`

	SpaceID     int64  `bson:"space_id" json:"spaceId"`
	AccountID   int64  `bson:"account_id" json:"accountId"`
	AccountName string `bson:"account_name" json:"accountName"`

	StartsAt time.Time `bson:"starts_at" json:"startsAt"`
	EndsAt   time.Time `bson:"ends_at" json:"endsAt"`

	Status string `bson:"status" json:"status"` // BOOKED | CANCELLED

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Overlaps reports whether two half-open intervals intersect.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartsAt.Before(end) && start.Before(r.EndsAt)
}

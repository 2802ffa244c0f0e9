// internal/app/features/spaces/types.go
package spaces

import "time"

// spaceRequest covers both create and update payloads.
type spaceRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Capacity int    `json:"capacity"`
}

// statusRequest is the payload for PATCH /api/spaces/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// reserveRequest is the payload for POST /api/spaces/{id}/reservations.
type reserveRequest struct {
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

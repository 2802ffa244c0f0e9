// internal/app/features/mentoring/types.go
package mentoring

// createRequest is the payload for POST /api/mentoring/matches.
type createRequest struct {
	MentorID int64  `json:"mentorId"`
	MenteeID int64  `json:"menteeId"`
	Topic    string `json:"topic"`
}

// internal/app/features/offerings/types.go
package offerings

// createRequest is the payload for POST /api/offerings.
type createRequest struct {
	CourseCode   string `json:"courseCode"`
	Title        string `json:"title"`
	Term         string `json:"term"`
	Credits      int    `json:"credits"`
	DepartmentID int64  `json:"departmentId"`
	Instructor   string `json:"instructor"`
	Capacity     int    `json:"capacity"`
}

// updateRequest is the payload for PATCH /api/offerings/{id}.
type updateRequest struct {
	Title      string `json:"title"`
	Instructor string `json:"instructor"`
	Credits    int    `json:"credits"`
	Capacity   int    `json:"capacity"`
}

// statusRequest is the payload for PATCH /api/offerings/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// enrollRequest is the payload for POST /api/offerings/{id}/enrollments.
// StudentID is honored only for staff; students always enroll themselves.
type enrollRequest struct {
	StudentID int64 `json:"studentId"`
}

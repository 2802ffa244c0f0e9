// internal/app/features/departments/types.go
package departments

// departmentRequest covers both create and update payloads.
type departmentRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// majorRequest covers both create and update payloads for majors.
type majorRequest struct {
	Name string `json:"name"`
}

// statusRequest is the payload for the status toggle endpoints.
type statusRequest struct {
	Status string `json:"status"`
}

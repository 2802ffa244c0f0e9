// internal/app/features/accounts/types.go
package accounts

// createRequest is the payload for POST /api/accounts.
type createRequest struct {
	LoginID      string `json:"loginId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	DepartmentID int64  `json:"departmentId"`
	MajorID      int64  `json:"majorId"`
}

// updateRequest is the payload for PATCH /api/accounts/{id}.
// Empty fields are left unchanged.
type updateRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	DepartmentID int64  `json:"departmentId"`
	MajorID      int64  `json:"majorId"`
}

// statusRequest is the payload for PATCH /api/accounts/{id}/status.
type statusRequest struct {
	Status string `json:"status"`
}

// passwordRequest is the payload for PATCH /api/accounts/{id}/password.
type passwordRequest struct {
	Password string `json:"password"`
}

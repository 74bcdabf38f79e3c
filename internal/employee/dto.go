package employee

import "time"

// EmployeeDTO is the transport shape for create and update. UserID links
// the profile to a credential; leaving it empty clears the link.
type EmployeeDTO struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         string `json:"role"`
	DepartmentID *int64 `json:"department_id"`
	UserID       *int64 `json:"user_id"`
	JoiningDate  string `json:"joining_date"`
}

type EmployeeResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	DepartmentID *int64    `json:"department_id"`
	UserID       *int64    `json:"user_id,omitempty"`
	JoiningDate  string    `json:"joining_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// UnlinkedUserResponse is a credential not yet linked to any employee,
// offered as a link candidate in the employee form.
type UnlinkedUserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

package department

import "time"

type DepartmentDTO struct {
	Name string `json:"name"`
}

type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package employee

import "time"

// Employee is an HR profile. Role is a display value only; DepartmentID and
// UserID are plain references without DB-level foreign keys, so a deleted
// department leaves a dangling reference (accepted limitation).
type Employee struct {
	ID           int64     `gorm:"primaryKey"`
	Name         string    `gorm:"column:name;not null"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Role         string    `gorm:"column:role;not null"`
	DepartmentID *int64    `gorm:"column:department_id;index"`
	UserID       *int64    `gorm:"column:user_id;index"`
	JoiningDate  time.Time `gorm:"column:joining_date;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Employee) TableName() string {
	return "employees"
}

package postgres

import (
	"strings"

	"github.com/frahmantamala/hr-management/internal/auth"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
	"github.com/frahmantamala/hr-management/internal/employee"
	"gorm.io/gorm"
)

type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) List(filter employee.Filter) ([]*employeeDatamodel.Employee, error) {
	query := r.db.Order("name ASC")

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}

	var employees []*employeeDatamodel.Employee
	err := query.Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("id = ?", id).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) GetByEmail(email string) (*employeeDatamodel.Employee, error) {
	var emp employeeDatamodel.Employee
	err := r.db.Where("email = ?", email).First(&emp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &emp, nil
}

func (r *EmployeeRepository) Create(emp *employeeDatamodel.Employee) error {
	return r.db.Create(emp).Error
}

func (r *EmployeeRepository) Update(emp *employeeDatamodel.Employee) error {
	return r.db.Save(emp).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Where("id = ?", id).Delete(&employeeDatamodel.Employee{}).Error
}

// ListUnlinkedUsers set-subtracts linked credential ids from all
// employee-role credentials.
func (r *EmployeeRepository) ListUnlinkedUsers() ([]*userDatamodel.User, error) {
	linked := r.db.Model(&employeeDatamodel.Employee{}).
		Select("user_id").
		Where("user_id IS NOT NULL")

	var users []*userDatamodel.User
	err := r.db.
		Where("role = ?", auth.RoleEmployee).
		Where("id NOT IN (?)", linked).
		Order("email ASC").
		Find(&users).Error
	return users, err
}

package employee

import (
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
	userDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/user"
)

// Filter narrows employee listings. Search matches name or email
// case-insensitively; DepartmentID is an exact match. Both compose with AND.
type Filter struct {
	Search       string
	DepartmentID *int64
}

type RepositoryAPI interface {
	List(filter Filter) ([]*employeeDatamodel.Employee, error)
	GetByID(id int64) (*employeeDatamodel.Employee, error)
	GetByEmail(email string) (*employeeDatamodel.Employee, error)
	Create(employee *employeeDatamodel.Employee) error
	Update(employee *employeeDatamodel.Employee) error
	Delete(id int64) error
	ListUnlinkedUsers() ([]*userDatamodel.User, error)
}

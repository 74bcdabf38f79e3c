package department

import (
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

type RepositoryAPI interface {
	GetAll() ([]*departmentDatamodel.Department, error)
	GetByID(id int64) (*departmentDatamodel.Department, error)
	GetByName(name string) (*departmentDatamodel.Department, error)
	Create(department *departmentDatamodel.Department) error
	Update(department *departmentDatamodel.Department) error
	Delete(id int64) error
}

package employee

import (
	"log/slog"
	"time"

	internal "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/auth"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	employeeDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/employee"
)

const joiningDateLayout = "2006-01-02"

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) List(filter Filter) ([]EmployeeResponse, error) {
	employees, err := s.repo.List(filter)
	if err != nil {
		s.logger.Error("failed to list employees", "error", err)
		return nil, internal.NewInternalError("failed to retrieve employees", err)
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, toResponse(e))
	}
	return responses, nil
}

func (s *Service) Create(dto EmployeeDTO) (*EmployeeResponse, error) {
	joiningDate, err := s.validate(dto)
	if err != nil {
		return nil, err
	}

	existing, lookupErr := s.repo.GetByEmail(dto.Email)
	if lookupErr != nil {
		return nil, internal.NewInternalError("failed to check employee email", lookupErr)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateEmployeeEmail
	}

	emp := &employeeDatamodel.Employee{
		Name:         dto.Name,
		Email:        dto.Email,
		Role:         dto.Role,
		DepartmentID: dto.DepartmentID,
		UserID:       dto.UserID,
		JoiningDate:  joiningDate,
	}
	if createErr := s.repo.Create(emp); createErr != nil {
		s.logger.Error("failed to create employee", "error", createErr, "email", dto.Email)
		return nil, internal.NewInternalError("failed to create employee", createErr)
	}

	s.logger.Info("employee created", "id", emp.ID, "email", emp.Email)
	resp := toResponse(emp)
	return &resp, nil
}

func (s *Service) Update(id int64, dto EmployeeDTO) (*EmployeeResponse, error) {
	joiningDate, err := s.validate(dto)
	if err != nil {
		return nil, err
	}

	emp, lookupErr := s.repo.GetByID(id)
	if lookupErr != nil {
		return nil, internal.NewInternalError("failed to load employee", lookupErr)
	}
	if emp == nil {
		return nil, internal.ErrEmployeeNotFound
	}

	existing, lookupErr := s.repo.GetByEmail(dto.Email)
	if lookupErr != nil {
		return nil, internal.NewInternalError("failed to check employee email", lookupErr)
	}
	if existing != nil && existing.ID != id {
		return nil, internal.ErrDuplicateEmployeeEmail
	}

	emp.Name = dto.Name
	emp.Email = dto.Email
	emp.Role = dto.Role
	emp.DepartmentID = dto.DepartmentID
	emp.UserID = dto.UserID
	emp.JoiningDate = joiningDate

	if updateErr := s.repo.Update(emp); updateErr != nil {
		s.logger.Error("failed to update employee", "error", updateErr, "id", id)
		return nil, internal.NewInternalError("failed to update employee", updateErr)
	}

	resp := toResponse(emp)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	emp, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to load employee", err)
	}
	if emp == nil {
		return internal.ErrEmployeeNotFound
	}

	// deleting a profile leaves its linked credential untouched
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "error", err, "id", id)
		return internal.NewInternalError("failed to delete employee", err)
	}

	s.logger.Info("employee deleted", "id", id, "email", emp.Email)
	return nil
}

// UnlinkedUsers returns employee-role credentials not referenced by any
// profile, used to populate link selection in create/update forms.
func (s *Service) UnlinkedUsers() ([]UnlinkedUserResponse, error) {
	users, err := s.repo.ListUnlinkedUsers()
	if err != nil {
		s.logger.Error("failed to list unlinked users", "error", err)
		return nil, internal.NewInternalError("failed to retrieve unlinked users", err)
	}

	responses := make([]UnlinkedUserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, UnlinkedUserResponse{ID: u.ID, Email: u.Email})
	}
	return responses, nil
}

func (s *Service) validate(dto EmployeeDTO) (time.Time, *internal.AppError) {
	v := validation.NewValidator()
	v.Field("name", dto.Name).Required().MaxLength(100)
	v.Field("email", dto.Email).Required().Email()
	v.Field("role", dto.Role).Required().OneOf(auth.AllRoles(), internal.ErrCodeInvalidRole)
	v.Field("department_id", dto.DepartmentID).Required()
	v.Field("joining_date", dto.JoiningDate).Required()
	if err := v.Validate(); err != nil {
		return time.Time{}, err
	}

	joiningDate, err := time.Parse(joiningDateLayout, dto.JoiningDate)
	if err != nil {
		return time.Time{}, internal.NewValidationFieldError("joining_date", "joining_date must be formatted as YYYY-MM-DD", internal.ErrCodeInvalidDate)
	}
	return joiningDate, nil
}

func toResponse(e *employeeDatamodel.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Role:         e.Role,
		DepartmentID: e.DepartmentID,
		UserID:       e.UserID,
		JoiningDate:  e.JoiningDate.Format(joiningDateLayout),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

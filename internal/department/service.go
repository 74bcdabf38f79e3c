package department

import (
	"log/slog"

	internal "github.com/frahmantamala/hr-management/internal"
	"github.com/frahmantamala/hr-management/internal/core/common/validation"
	departmentDatamodel "github.com/frahmantamala/hr-management/internal/core/datamodel/department"
)

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

func (s *Service) GetAll() ([]DepartmentResponse, error) {
	departments, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get departments from repository", "error", err)
		return nil, internal.NewInternalError("failed to retrieve departments", err)
	}

	responses := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		responses = append(responses, toResponse(d))
	}
	return responses, nil
}

func (s *Service) Create(dto DepartmentDTO) (*DepartmentResponse, error) {
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}

	// duplicate check is a case-sensitive exact match, matching the unique index
	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department name", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateDepartment
	}

	dept := &departmentDatamodel.Department{Name: dto.Name}
	if err := s.repo.Create(dept); err != nil {
		s.logger.Error("failed to create department", "error", err, "name", dto.Name)
		return nil, internal.NewInternalError("failed to create department", err)
	}

	s.logger.Info("department created", "id", dept.ID, "name", dept.Name)
	resp := toResponse(dept)
	return &resp, nil
}

func (s *Service) Update(id int64, dto DepartmentDTO) (*DepartmentResponse, error) {
	if err := validateName(dto.Name); err != nil {
		return nil, err
	}

	dept, err := s.repo.GetByID(id)
	if err != nil {
		return nil, internal.NewInternalError("failed to load department", err)
	}
	if dept == nil {
		return nil, internal.ErrDepartmentNotFound
	}

	existing, err := s.repo.GetByName(dto.Name)
	if err != nil {
		return nil, internal.NewInternalError("failed to check department name", err)
	}
	if existing != nil && existing.ID != id {
		return nil, internal.ErrDuplicateDepartment
	}

	dept.Name = dto.Name
	if err := s.repo.Update(dept); err != nil {
		s.logger.Error("failed to update department", "error", err, "id", id)
		return nil, internal.NewInternalError("failed to update department", err)
	}

	resp := toResponse(dept)
	return &resp, nil
}

func (s *Service) Delete(id int64) error {
	dept, err := s.repo.GetByID(id)
	if err != nil {
		return internal.NewInternalError("failed to load department", err)
	}
	if dept == nil {
		return internal.ErrDepartmentNotFound
	}

	// Employees referencing this department keep a dangling department_id;
	// there is no cascade or nullify step.
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete department", "error", err, "id", id)
		return internal.NewInternalError("failed to delete department", err)
	}

	s.logger.Info("department deleted", "id", id, "name", dept.Name)
	return nil
}

func validateName(name string) *internal.AppError {
	v := validation.NewValidator()
	v.Field("name", name).Required().MaxLength(100)
	return v.Validate()
}

func toResponse(d *departmentDatamodel.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

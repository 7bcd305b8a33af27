package services

import (
	"context"
	"errors"
	"time"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/adapters/persistence/repositories"
	"procureflow/internal/core/domain"

	"gorm.io/gorm"
)

// ProjectService handles project management
type ProjectService struct {
	projectRepo repositories.ProjectRepository
}

// NewProjectService creates a new project service
func NewProjectService(projectRepo repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// ProjectInput represents project create/update input
type ProjectInput struct {
	Name        string     `json:"name" validate:"required,min=3,max=100"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// List lists projects with pagination
func (s *ProjectService) List(ctx context.Context, offset, limit int) ([]*models.Project, int64, error) {
	return s.projectRepo.List(ctx, offset, limit)
}

// GetByID gets a project by ID
func (s *ProjectService) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, err
	}
	return project, nil
}

// SearchByName finds projects whose name contains the given text, paginated
func (s *ProjectService) SearchByName(ctx context.Context, name string, offset, limit int) ([]*models.Project, int64, error) {
	return s.projectRepo.SearchByName(ctx, name, offset, limit)
}

// FindByStatus finds projects by status
func (s *ProjectService) FindByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.projectRepo.FindByStatus(ctx, status)
}

// FindByAdmin finds projects created by the given admin
func (s *ProjectService) FindByAdmin(ctx context.Context, adminID uint) ([]*models.Project, error) {
	return s.projectRepo.FindByAdmin(ctx, adminID)
}

// Create creates a project owned by the given admin
func (s *ProjectService) Create(ctx context.Context, input *ProjectInput, adminID uint) (*models.Project, error) {
	project := &models.Project{
		Name:        input.Name,
		Description: input.Description,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Status:      models.ProjectPlanning,
		AdminID:     &adminID,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Update updates a project's fields
func (s *ProjectService) Update(ctx context.Context, id uint, input *ProjectInput) (*models.Project, error) {
	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Name = input.Name
	project.Description = input.Description
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// UpdateStatus updates a project's status
func (s *ProjectService) UpdateStatus(ctx context.Context, id uint, status models.ProjectStatus) (*models.Project, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	project, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	project.Status = status
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

// Delete deletes a project and its tasks
func (s *ProjectService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.projectRepo.Delete(ctx, id)
}

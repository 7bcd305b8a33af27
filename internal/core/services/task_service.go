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

// TaskService handles task management
type TaskService struct {
	taskRepo     repositories.TaskRepository
	projectRepo  repositories.ProjectRepository
	supplierRepo repositories.SupplierRepository
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repositories.TaskRepository,
	projectRepo repositories.ProjectRepository,
	supplierRepo repositories.SupplierRepository,
) *TaskService {
	return &TaskService{
		taskRepo:     taskRepo,
		projectRepo:  projectRepo,
		supplierRepo: supplierRepo,
	}
}

// TaskInput represents task create/update input
type TaskInput struct {
	Name        string     `json:"name" validate:"required,min=3,max=100"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	DueDate     *time.Time `json:"due_date"`
	Budget      float64    `json:"budget" validate:"omitempty,gte=0"`
}

// List lists tasks with pagination
func (s *TaskService) List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	return s.taskRepo.List(ctx, offset, limit)
}

// GetByID gets a task by ID
func (s *TaskService) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// FindByProject finds tasks belonging to a project
func (s *TaskService) FindByProject(ctx context.Context, projectID uint) ([]*models.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByProject(ctx, projectID)
}

// FindByProjectAndStatus finds tasks in a project with the given status
func (s *TaskService) FindByProjectAndStatus(ctx context.Context, projectID uint, status models.TaskStatus) ([]*models.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.FindByProjectAndStatus(ctx, projectID, status)
}

// FindBySupplier finds tasks assigned to a supplier
func (s *TaskService) FindBySupplier(ctx context.Context, supplierID uint) ([]*models.Task, error) {
	return s.taskRepo.FindBySupplier(ctx, supplierID)
}

// FindByStatus finds tasks by status
func (s *TaskService) FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.taskRepo.FindByStatus(ctx, status)
}

// Create creates a task under the given project
func (s *TaskService) Create(ctx context.Context, input *TaskInput, projectID uint) (*models.Task, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}

	task := &models.Task{
		Name:        input.Name,
		Description: input.Description,
		DueDate:     input.DueDate,
		Budget:      input.Budget,
		Status:      models.TaskPending,
		ProjectID:   projectID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Update updates a task's fields
func (s *TaskService) Update(ctx context.Context, id uint, input *TaskInput) (*models.Task, error) {
	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Name = input.Name
	task.Description = input.Description
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.Budget > 0 {
		task.Budget = input.Budget
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Assign assigns a task to a supplier
func (s *TaskService) Assign(ctx context.Context, taskID, supplierID uint) (*models.Task, error) {
	task, err := s.GetByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if _, err := s.supplierRepo.GetByID(ctx, supplierID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}

	task.SupplierID = &supplierID
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// UpdateStatus updates a task's status. Suppliers may only change tasks
// assigned to them; admins may change any task.
func (s *TaskService) UpdateStatus(ctx context.Context, id uint, status models.TaskStatus, actorType string, actorID uint) (*models.Task, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if actorType == models.UserTypeSupplier {
		if task.SupplierID == nil || *task.SupplierID != actorID {
			return nil, domain.ErrNotTaskAssignee
		}
	}

	task.Status = status
	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// Delete deletes a task by ID
func (s *TaskService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.taskRepo.Delete(ctx, id)
}

// requireProject fails with ErrProjectNotFound when the project is missing
func (s *TaskService) requireProject(ctx context.Context, projectID uint) error {
	_, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrProjectNotFound
		}
		return err
	}
	return nil
}

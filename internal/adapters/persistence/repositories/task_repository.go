package repositories

import (
	"context"
	"time"

	"procureflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// taskRepository implements TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// GetByID gets a task by ID with its assignee
func (r *taskRepository) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).Preload("AssignedTo").Where("id = ?", id).First(&task).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update updates a task
func (r *taskRepository) Update(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// Delete deletes a task
func (r *taskRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Task{}, id).Error
}

// List lists tasks with pagination
func (r *taskRepository) List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	var tasks []*models.Task
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Task{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	return tasks, total, nil
}

// FindByProject finds tasks belonging to a project
func (r *taskRepository) FindByProject(ctx context.Context, projectID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Find(&tasks).Error
	return tasks, err
}

// FindByProjectAndStatus finds tasks in a project with the given status
func (r *taskRepository) FindByProjectAndStatus(ctx context.Context, projectID uint, status models.TaskStatus) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).
		Where("project_id = ? AND status = ?", projectID, status).
		Find(&tasks).Error
	return tasks, err
}

// FindBySupplier finds tasks assigned to a supplier
func (r *taskRepository) FindBySupplier(ctx context.Context, supplierID uint) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Find(&tasks).Error
	return tasks, err
}

// FindByStatus finds tasks by status
func (r *taskRepository) FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	var tasks []*models.Task
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&tasks).Error
	return tasks, err
}

// MarkOverdueDelayed flags open tasks past their due date as DELAYED
// and returns the number of tasks updated
func (r *taskRepository) MarkOverdueDelayed(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Where("due_date < ? AND status IN ?", time.Now(), []models.TaskStatus{models.TaskPending, models.TaskInProgress}).
		Update("status", models.TaskDelayed)
	return result.RowsAffected, result.Error
}

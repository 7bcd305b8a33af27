package repositories

import (
	"context"

	"procureflow/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// projectRepository implements ProjectRepository interface
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project
func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// GetByID gets a project by ID with its tasks
func (r *projectRepository) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).Preload("Tasks").Where("id = ?", id).First(&project).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project
func (r *projectRepository) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete deletes a project and its tasks
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, id).Error
	})
}

// List lists projects with pagination
func (r *projectRepository) List(ctx context.Context, offset, limit int) ([]*models.Project, int64, error) {
	var projects []*models.Project
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// SearchByName finds projects whose name contains the given text, paginated
func (r *projectRepository) SearchByName(ctx context.Context, name string, offset, limit int) ([]*models.Project, int64, error) {
	var projects []*models.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Project{}).Where("name LIKE ?", "%"+name+"%")

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Offset(offset).Limit(limit).Find(&projects).Error; err != nil {
		return nil, 0, err
	}

	return projects, total, nil
}

// FindByStatus finds projects by status
func (r *projectRepository) FindByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&projects).Error
	return projects, err
}

// FindByAdmin finds projects created by the given admin
func (r *projectRepository) FindByAdmin(ctx context.Context, adminID uint) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.WithContext(ctx).Where("admin_id = ?", adminID).Find(&projects).Error
	return projects, err
}

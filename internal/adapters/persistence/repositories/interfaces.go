package repositories

import (
	"context"

	"procureflow/internal/adapters/persistence/models"
)

// AdminRepository defines admin repository interface
type AdminRepository interface {
	Create(ctx context.Context, admin *models.Admin) error
	GetByID(ctx context.Context, id uint) (*models.Admin, error)
	GetByEmail(ctx context.Context, email string) (*models.Admin, error)
	Update(ctx context.Context, admin *models.Admin) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// SupplierRepository defines supplier repository interface
type SupplierRepository interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	GetByID(ctx context.Context, id uint) (*models.Supplier, error)
	GetByEmail(ctx context.Context, email string) (*models.Supplier, error)
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Supplier, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	SearchByName(ctx context.Context, name string) ([]*models.Supplier, error)
	SearchByAddress(ctx context.Context, address string) ([]*models.Supplier, error)
	FindByStatus(ctx context.Context, status models.SupplierStatus) ([]*models.Supplier, error)
	FindByCategory(ctx context.Context, category string) ([]*models.Supplier, error)
}

// ProjectRepository defines project repository interface
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id uint) (*models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Project, int64, error)
	SearchByName(ctx context.Context, name string, offset, limit int) ([]*models.Project, int64, error)
	FindByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error)
	FindByAdmin(ctx context.Context, adminID uint) ([]*models.Project, error)
}

// TaskRepository defines task repository interface
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id uint) (*models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error)
	FindByProject(ctx context.Context, projectID uint) ([]*models.Task, error)
	FindByProjectAndStatus(ctx context.Context, projectID uint, status models.TaskStatus) ([]*models.Task, error)
	FindBySupplier(ctx context.Context, supplierID uint) ([]*models.Task, error)
	FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error)
	MarkOverdueDelayed(ctx context.Context) (int64, error)
}

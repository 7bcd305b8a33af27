package repositories

import (
	"context"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/core/domain"

	"gorm.io/gorm"
)

// supplierRepository implements SupplierRepository interface
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepository{db: db}
}

// Create inserts a new supplier along with its account email row,
// in one transaction so cross-table email uniqueness is atomic
func (r *supplierRepository) Create(ctx context.Context, supplier *models.Supplier) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(supplier).Error; err != nil {
			return err
		}
		return tx.Create(&models.AccountEmail{
			Email:    supplier.Email,
			UserType: models.UserTypeSupplier,
			UserID:   supplier.ID,
		}).Error
	})
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// GetByID gets a supplier by ID
func (r *supplierRepository) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// GetByEmail gets a supplier by email
func (r *supplierRepository) GetByEmail(ctx context.Context, email string) (*models.Supplier, error) {
	var supplier models.Supplier
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// Update updates a supplier
func (r *supplierRepository) Update(ctx context.Context, supplier *models.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete soft deletes a supplier and frees its account email
func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var supplier models.Supplier
		if err := tx.Where("id = ?", id).First(&supplier).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ? AND user_type = ?", supplier.Email, models.UserTypeSupplier).
			Delete(&models.AccountEmail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&supplier).Error
	})
}

// List lists suppliers with pagination
func (r *supplierRepository) List(ctx context.Context, offset, limit int) ([]*models.Supplier, int64, error) {
	var suppliers []*models.Supplier
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Supplier{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&suppliers).Error; err != nil {
		return nil, 0, err
	}

	return suppliers, total, nil
}

// ExistsByEmail checks if a supplier email exists
func (r *supplierRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Supplier{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// SearchByName finds suppliers whose name contains the given text
func (r *supplierRepository) SearchByName(ctx context.Context, name string) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Where("supplier_name LIKE ?", "%"+name+"%").Find(&suppliers).Error
	return suppliers, err
}

// SearchByAddress finds suppliers whose address contains the given text
func (r *supplierRepository) SearchByAddress(ctx context.Context, address string) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Where("address LIKE ?", "%"+address+"%").Find(&suppliers).Error
	return suppliers, err
}

// FindByStatus finds suppliers by status
func (r *supplierRepository) FindByStatus(ctx context.Context, status models.SupplierStatus) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Where("status = ?", status).Find(&suppliers).Error
	return suppliers, err
}

// FindByCategory finds suppliers by category
func (r *supplierRepository) FindByCategory(ctx context.Context, category string) ([]*models.Supplier, error) {
	var suppliers []*models.Supplier
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&suppliers).Error
	return suppliers, err
}

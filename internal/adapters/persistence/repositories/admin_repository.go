package repositories

import (
	"context"
	"errors"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/core/domain"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// isDuplicateKey reports whether err is a MySQL duplicate entry error (1062).
// The unique index is the final authority on email uniqueness; the service
// layer's existence checks can race with concurrent registrations.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// adminRepository implements AdminRepository interface
type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create inserts a new admin along with its account email row,
// in one transaction so cross-table email uniqueness is atomic
func (r *adminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.AccountEmail{
			Email:    admin.Email,
			UserType: models.UserTypeAdmin,
			UserID:   admin.ID,
		}).Error
	})
	if isDuplicateKey(err) {
		return domain.ErrDuplicateEmail
	}
	return err
}

// GetByID gets an admin by ID
func (r *adminRepository) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// GetByEmail gets an admin by email
func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	var admin models.Admin
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update updates an admin
func (r *adminRepository) Update(ctx context.Context, admin *models.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

// Delete soft deletes an admin and frees its account email
func (r *adminRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin models.Admin
		if err := tx.Where("id = ?", id).First(&admin).Error; err != nil {
			return err
		}
		if err := tx.Where("email = ? AND user_type = ?", admin.Email, models.UserTypeAdmin).
			Delete(&models.AccountEmail{}).Error; err != nil {
			return err
		}
		return tx.Delete(&admin).Error
	})
}

// List lists admins with pagination
func (r *adminRepository) List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error) {
	var admins []*models.Admin
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Offset(offset).Limit(limit).Find(&admins).Error; err != nil {
		return nil, 0, err
	}

	return admins, total, nil
}

// ExistsByEmail checks if an admin email exists
func (r *adminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

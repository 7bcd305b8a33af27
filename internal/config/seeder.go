package config

import (
	"log"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedBootstrapAdmin(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedBootstrapAdmin seeds a default admin account for development.
// In production, create the first admin through a secure process.
func (s *Seeder) seedBootstrapAdmin() error {
	var count int64
	if err := s.db.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // at least one admin already exists
	}

	hashed, err := password.Hash("Admin12345")
	if err != nil {
		return err
	}

	admin := &models.Admin{
		FullName: "Bootstrap Admin",
		Email:    "admin@procureflow.local",
		Password: hashed,
		Roles:    models.RoleList{models.RoleAdmin},
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		return tx.Create(&models.AccountEmail{
			Email:    admin.Email,
			UserType: models.UserTypeAdmin,
			UserID:   admin.ID,
		}).Error
	})
	if err != nil {
		return err
	}

	log.Printf("✅ Bootstrap admin created: %s", admin.Email)
	return nil
}

package services

import (
	"context"
	"errors"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/adapters/persistence/repositories"
	"procureflow/internal/core/domain"

	"gorm.io/gorm"
)

// AdminService handles admin account management
type AdminService struct {
	adminRepo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(adminRepo repositories.AdminRepository) *AdminService {
	return &AdminService{adminRepo: adminRepo}
}

// UpdateAdminInput represents admin profile update input
type UpdateAdminInput struct {
	FullName    string `json:"full_name" validate:"omitempty,min=3,max=100"`
	PhoneNumber string `json:"phone_number" validate:"omitempty,phone"`
}

// List lists admins with pagination
func (s *AdminService) List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error) {
	return s.adminRepo.List(ctx, offset, limit)
}

// GetByID gets an admin by ID
func (s *AdminService) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdminNotFound
		}
		return nil, err
	}
	return admin, nil
}

// Update updates an admin's profile fields
func (s *AdminService) Update(ctx context.Context, id uint, input *UpdateAdminInput) (*models.Admin, error) {
	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FullName != "" {
		admin.FullName = input.FullName
	}
	if input.PhoneNumber != "" {
		admin.PhoneNumber = input.PhoneNumber
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Delete deletes an admin by ID
func (s *AdminService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.adminRepo.Delete(ctx, id)
}

package services

import (
	"context"
	"errors"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/adapters/persistence/repositories"
	"procureflow/internal/core/domain"

	"gorm.io/gorm"
)

// SupplierService handles supplier profile management
type SupplierService struct {
	supplierRepo repositories.SupplierRepository
}

// NewSupplierService creates a new supplier service
func NewSupplierService(supplierRepo repositories.SupplierRepository) *SupplierService {
	return &SupplierService{supplierRepo: supplierRepo}
}

// UpdateSupplierInput represents supplier profile update input
type UpdateSupplierInput struct {
	SupplierName  string `json:"supplier_name" validate:"omitempty,min=3,max=100"`
	Address       string `json:"address" validate:"omitempty,min=5,max=200"`
	PhoneNumber   string `json:"phone_number" validate:"omitempty,phone"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=100"`
	Category      string `json:"category" validate:"omitempty,max=50"`
	Description   string `json:"description" validate:"omitempty,max=1000"`
}

// List lists suppliers with pagination
func (s *SupplierService) List(ctx context.Context, offset, limit int) ([]*models.Supplier, int64, error) {
	return s.supplierRepo.List(ctx, offset, limit)
}

// GetByID gets a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	supplier, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return supplier, nil
}

// Update updates a supplier's profile fields
func (s *SupplierService) Update(ctx context.Context, id uint, input *UpdateSupplierInput) (*models.Supplier, error) {
	supplier, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.SupplierName != "" {
		supplier.SupplierName = input.SupplierName
	}
	if input.Address != "" {
		supplier.Address = input.Address
	}
	if input.PhoneNumber != "" {
		supplier.PhoneNumber = input.PhoneNumber
	}
	if input.ContactPerson != "" {
		supplier.ContactPerson = input.ContactPerson
	}
	if input.Category != "" {
		supplier.Category = input.Category
	}
	if input.Description != "" {
		supplier.Description = input.Description
	}

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateStatus updates a supplier's status
func (s *SupplierService) UpdateStatus(ctx context.Context, id uint, status models.SupplierStatus) (*models.Supplier, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	supplier, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Status = status
	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete deletes a supplier by ID
func (s *SupplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.supplierRepo.Delete(ctx, id)
}

// SearchByName finds suppliers whose name contains the given text
func (s *SupplierService) SearchByName(ctx context.Context, name string) ([]*models.Supplier, error) {
	return s.supplierRepo.SearchByName(ctx, name)
}

// SearchByAddress finds suppliers whose address contains the given text
func (s *SupplierService) SearchByAddress(ctx context.Context, address string) ([]*models.Supplier, error) {
	return s.supplierRepo.SearchByAddress(ctx, address)
}

// FindByStatus finds suppliers by status
func (s *SupplierService) FindByStatus(ctx context.Context, status models.SupplierStatus) ([]*models.Supplier, error) {
	if !status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}
	return s.supplierRepo.FindByStatus(ctx, status)
}

// FindByCategory finds suppliers by category
func (s *SupplierService) FindByCategory(ctx context.Context, category string) ([]*models.Supplier, error) {
	return s.supplierRepo.FindByCategory(ctx, category)
}

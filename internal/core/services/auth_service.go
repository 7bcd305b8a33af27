package services

import (
	"context"
	"errors"
	"log"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/adapters/persistence/repositories"
	"procureflow/internal/config"
	"procureflow/internal/core/domain"
	"procureflow/internal/pkg/jwt"
	"procureflow/internal/pkg/password"

	"gorm.io/gorm"
)

// Principal is the uniform view of an authenticated identity,
// regardless of which table it came from
type Principal struct {
	UserType     string
	ID           uint
	Email        string
	PasswordHash string
	Roles        models.RoleList
}

// AuthService handles registration, login and principal resolution
type AuthService struct {
	adminRepo    repositories.AdminRepository
	supplierRepo repositories.SupplierRepository
	cfg          *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(
	adminRepo repositories.AdminRepository,
	supplierRepo repositories.SupplierRepository,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		adminRepo:    adminRepo,
		supplierRepo: supplierRepo,
		cfg:          cfg,
	}
}

// RegisterAdminInput represents admin registration input
type RegisterAdminInput struct {
	FullName    string          `json:"full_name" validate:"required,min=3,max=100"`
	Email       string          `json:"email" validate:"required,email,max=100"`
	Password    string          `json:"password" validate:"required,min=8,max=100"`
	PhoneNumber string          `json:"phone_number" validate:"omitempty,phone"`
	Roles       models.RoleList `json:"roles"`
}

// RegisterSupplierInput represents supplier registration input
type RegisterSupplierInput struct {
	SupplierName  string          `json:"supplier_name" validate:"required,min=3,max=100"`
	Address       string          `json:"address" validate:"required,min=5,max=200"`
	Email         string          `json:"email" validate:"required,email,max=100"`
	Password      string          `json:"password" validate:"required,min=8,max=100"`
	PhoneNumber   string          `json:"phone_number" validate:"omitempty,phone"`
	ContactPerson string          `json:"contact_person" validate:"omitempty,max=100"`
	Category      string          `json:"category" validate:"omitempty,max=50"`
	Description   string          `json:"description" validate:"omitempty,max=1000"`
	Roles         models.RoleList `json:"roles"`
}

// LoginResult represents a successful authentication
type LoginResult struct {
	Token    string `json:"token"`
	UserType string `json:"user_type"`
	UserID   uint   `json:"user_id"`
}

// RegisterAdmin registers a new admin account
func (s *AuthService) RegisterAdmin(ctx context.Context, input *RegisterAdminInput) (*models.Admin, error) {
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles.Normalize()
	if len(roles) == 0 {
		roles = models.RoleList{models.RoleAdmin}
	}

	admin := &models.Admin{
		FullName:    input.FullName,
		Email:       input.Email,
		Password:    hashed,
		PhoneNumber: input.PhoneNumber,
		Roles:       roles,
	}

	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Admin registered: %s", admin.Email)
	return admin, nil
}

// RegisterSupplier registers a new supplier account
func (s *AuthService) RegisterSupplier(ctx context.Context, input *RegisterSupplierInput) (*models.Supplier, error) {
	if err := s.checkEmailFree(ctx, input.Email); err != nil {
		return nil, err
	}

	hashed, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	roles := input.Roles.Normalize()
	if len(roles) == 0 {
		roles = models.RoleList{models.RoleSupplier}
	}

	supplier := &models.Supplier{
		SupplierName:  input.SupplierName,
		Address:       input.Address,
		Email:         input.Email,
		Password:      hashed,
		PhoneNumber:   input.PhoneNumber,
		ContactPerson: input.ContactPerson,
		Category:      input.Category,
		Description:   input.Description,
		Status:        models.SupplierActive,
		Roles:         roles,
	}

	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}

	log.Printf("✅ Supplier registered: %s", supplier.Email)
	return supplier, nil
}

// Login authenticates by email across both principal tables.
// Unknown email and wrong password return the same error so callers
// cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, plaintext string) (*LoginResult, error) {
	principal, err := s.ResolveByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrPrincipalNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(plaintext, principal.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := jwt.GenerateToken(
		principal.ID,
		principal.UserType,
		principal.Email,
		principal.Roles,
		s.cfg.JWT.Secret,
		s.cfg.JWT.ExpiryHours,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ %s logged in: %s", principal.UserType, principal.Email)

	return &LoginResult{
		Token:    token,
		UserType: principal.UserType,
		UserID:   principal.ID,
	}, nil
}

// ResolveByEmail looks up an email in the admin table first, then the
// supplier table. The fixed order means an admin silently wins if the
// uniqueness invariant is ever broken.
func (s *AuthService) ResolveByEmail(ctx context.Context, email string) (*Principal, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err == nil {
		return &Principal{
			UserType:     models.UserTypeAdmin,
			ID:           admin.ID,
			Email:        admin.Email,
			PasswordHash: admin.Password,
			Roles:        admin.Roles,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	supplier, err := s.supplierRepo.GetByEmail(ctx, email)
	if err == nil {
		return &Principal{
			UserType:     models.UserTypeSupplier,
			ID:           supplier.ID,
			Email:        supplier.Email,
			PasswordHash: supplier.Password,
			Roles:        supplier.Roles,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, domain.ErrPrincipalNotFound
}

// ValidateToken validates an access token
func (s *AuthService) ValidateToken(token string) (*jwt.Claims, error) {
	return jwt.ValidateToken(token, s.cfg.JWT.Secret)
}

// checkEmailFree verifies the email is unused in both principal tables.
// This gives a friendly error before insert; the unique index on
// account_emails remains the final authority under concurrency.
func (s *AuthService) checkEmailFree(ctx context.Context, email string) error {
	exists, err := s.adminRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateEmail
	}

	exists, err = s.supplierRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrDuplicateEmail
	}

	return nil
}

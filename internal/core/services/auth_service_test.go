package services

import (
	"context"
	"errors"
	"testing"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/config"
	"procureflow/internal/core/domain"
	"procureflow/internal/pkg/jwt"
	"procureflow/internal/pkg/password"

	"gorm.io/gorm"
)

// stubEmailIndex mimics the account_emails table shared by both stores.
type stubEmailIndex struct {
	taken map[string]bool
}

func newStubEmailIndex() *stubEmailIndex {
	return &stubEmailIndex{taken: make(map[string]bool)}
}

func (i *stubEmailIndex) claim(email string) error {
	if i.taken[email] {
		return domain.ErrDuplicateEmail
	}
	i.taken[email] = true
	return nil
}

type stubAdminRepo struct {
	emails *stubEmailIndex
	admins map[string]*models.Admin
	nextID uint
}

func newStubAdminRepo(emails *stubEmailIndex) *stubAdminRepo {
	return &stubAdminRepo{emails: emails, admins: make(map[string]*models.Admin), nextID: 1}
}

func (r *stubAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	if err := r.emails.claim(admin.Email); err != nil {
		return err
	}
	admin.ID = r.nextID
	r.nextID++
	r.admins[admin.Email] = admin
	return nil
}

func (r *stubAdminRepo) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	for _, a := range r.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := r.admins[email]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubAdminRepo) Update(ctx context.Context, admin *models.Admin) error { return nil }
func (r *stubAdminRepo) Delete(ctx context.Context, id uint) error             { return nil }

func (r *stubAdminRepo) List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error) {
	return nil, 0, nil
}

func (r *stubAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.admins[email]
	return ok, nil
}

type stubSupplierRepo struct {
	emails    *stubEmailIndex
	suppliers map[string]*models.Supplier
	nextID    uint
}

func newStubSupplierRepo(emails *stubEmailIndex) *stubSupplierRepo {
	return &stubSupplierRepo{emails: emails, suppliers: make(map[string]*models.Supplier), nextID: 1}
}

func (r *stubSupplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	if err := r.emails.claim(supplier.Email); err != nil {
		return err
	}
	supplier.ID = r.nextID
	r.nextID++
	r.suppliers[supplier.Email] = supplier
	return nil
}

func (r *stubSupplierRepo) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	for _, s := range r.suppliers {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) GetByEmail(ctx context.Context, email string) (*models.Supplier, error) {
	if s, ok := r.suppliers[email]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubSupplierRepo) Update(ctx context.Context, supplier *models.Supplier) error { return nil }
func (r *stubSupplierRepo) Delete(ctx context.Context, id uint) error                   { return nil }

func (r *stubSupplierRepo) List(ctx context.Context, offset, limit int) ([]*models.Supplier, int64, error) {
	return nil, 0, nil
}

func (r *stubSupplierRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, ok := r.suppliers[email]
	return ok, nil
}

func (r *stubSupplierRepo) SearchByName(ctx context.Context, name string) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *stubSupplierRepo) SearchByAddress(ctx context.Context, address string) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *stubSupplierRepo) FindByStatus(ctx context.Context, status models.SupplierStatus) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *stubSupplierRepo) FindByCategory(ctx context.Context, category string) ([]*models.Supplier, error) {
	return nil, nil
}

const testSecret = "test-secret"

func newTestAuthService() (*AuthService, *stubAdminRepo, *stubSupplierRepo) {
	emails := newStubEmailIndex()
	adminRepo := newStubAdminRepo(emails)
	supplierRepo := newStubSupplierRepo(emails)
	cfg := &config.Config{JWT: config.JWTConfig{Secret: testSecret, ExpiryHours: 1}}
	return NewAuthService(adminRepo, supplierRepo, cfg), adminRepo, supplierRepo
}

func adminInput(email string) *RegisterAdminInput {
	return &RegisterAdminInput{
		FullName: "Jane Admin",
		Email:    email,
		Password: "Secret123",
	}
}

func supplierInput(email string) *RegisterSupplierInput {
	return &RegisterSupplierInput{
		SupplierName: "Acme Supplies",
		Address:      "12 Industrial Road",
		Email:        email,
		Password:     "Secret123",
	}
}

func TestRegisterAdminDefaultsRole(t *testing.T) {
	svc, _, _ := newTestAuthService()

	admin, err := svc.RegisterAdmin(context.Background(), adminInput("admin@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(admin.Roles) != 1 || admin.Roles[0] != models.RoleAdmin {
		t.Fatalf("expected default role %q, got %v", models.RoleAdmin, admin.Roles)
	}
	if admin.Password == "Secret123" {
		t.Fatalf("password stored as plaintext")
	}
	if !password.Verify("Secret123", admin.Password) {
		t.Fatalf("stored hash does not verify against original password")
	}
}

func TestRegisterSupplierDefaultsRoleAndStatus(t *testing.T) {
	svc, _, _ := newTestAuthService()

	supplier, err := svc.RegisterSupplier(context.Background(), supplierInput("acme@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(supplier.Roles) != 1 || supplier.Roles[0] != models.RoleSupplier {
		t.Fatalf("expected default role %q, got %v", models.RoleSupplier, supplier.Roles)
	}
	if supplier.Status != models.SupplierActive {
		t.Fatalf("expected status %q, got %q", models.SupplierActive, supplier.Status)
	}
}

func TestRegisterExplicitRolesKept(t *testing.T) {
	svc, _, _ := newTestAuthService()

	input := adminInput("super@example.com")
	input.Roles = models.RoleList{models.RoleAdmin, models.RoleSupplier, models.RoleAdmin}

	admin, err := svc.RegisterAdmin(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(admin.Roles) != 2 {
		t.Fatalf("expected deduplicated roles, got %v", admin.Roles)
	}
}

func TestRegisterDuplicateEmailAcrossStores(t *testing.T) {
	cases := []struct {
		name  string
		first func(svc *AuthService) error
		then  func(svc *AuthService) error
	}{
		{
			name: "admin then supplier",
			first: func(svc *AuthService) error {
				_, err := svc.RegisterAdmin(context.Background(), adminInput("shared@example.com"))
				return err
			},
			then: func(svc *AuthService) error {
				_, err := svc.RegisterSupplier(context.Background(), supplierInput("shared@example.com"))
				return err
			},
		},
		{
			name: "supplier then admin",
			first: func(svc *AuthService) error {
				_, err := svc.RegisterSupplier(context.Background(), supplierInput("shared@example.com"))
				return err
			},
			then: func(svc *AuthService) error {
				_, err := svc.RegisterAdmin(context.Background(), adminInput("shared@example.com"))
				return err
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _ := newTestAuthService()

			if err := tc.first(svc); err != nil {
				t.Fatalf("first registration failed: %v", err)
			}
			if err := tc.then(svc); !errors.Is(err, domain.ErrDuplicateEmail) {
				t.Fatalf("expected ErrDuplicateEmail, got %v", err)
			}
		})
	}
}

func TestRegisterDuplicateEmailUnderRace(t *testing.T) {
	// Bypass the pre-check by claiming the email only in the shared
	// index, the way a concurrent insert would.
	svc, adminRepo, _ := newTestAuthService()
	adminRepo.emails.taken["raced@example.com"] = true

	_, err := svc.RegisterSupplier(context.Background(), supplierInput("raced@example.com"))
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail from store, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newTestAuthService()

	admin, err := svc.RegisterAdmin(context.Background(), adminInput("admin@example.com"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Login(context.Background(), "admin@example.com", "Secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.UserType != models.UserTypeAdmin {
		t.Fatalf("expected user type %q, got %q", models.UserTypeAdmin, result.UserType)
	}
	if result.UserID != admin.ID {
		t.Fatalf("expected user id %d, got %d", admin.ID, result.UserID)
	}

	claims, err := jwt.ValidateToken(result.Token, testSecret)
	if err != nil {
		t.Fatalf("issued token failed validation: %v", err)
	}
	if claims.Email != "admin@example.com" {
		t.Fatalf("expected email claim, got %q", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != models.RoleAdmin {
		t.Fatalf("expected roles claim [%s], got %v", models.RoleAdmin, claims.Roles)
	}
}

func TestLoginSupplier(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.RegisterSupplier(context.Background(), supplierInput("acme@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	result, err := svc.Login(context.Background(), "acme@example.com", "Secret123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.UserType != models.UserTypeSupplier {
		t.Fatalf("expected user type %q, got %q", models.UserTypeSupplier, result.UserType)
	}
}

func TestLoginFailuresIndistinguishable(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.RegisterAdmin(context.Background(), adminInput("admin@example.com")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, wrongPass := svc.Login(context.Background(), "admin@example.com", "WrongPass1")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "Secret123")

	if !errors.Is(wrongPass, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPass)
	}
	if !errors.Is(unknown, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Fatalf("failure modes distinguishable: %q vs %q", wrongPass, unknown)
	}
}

func TestResolveByEmailOrder(t *testing.T) {
	// Seed the same email in both stores directly, skirting the
	// uniqueness index. Resolution must pick the admin.
	svc, adminRepo, supplierRepo := newTestAuthService()

	adminRepo.admins["both@example.com"] = &models.Admin{
		ID:    7,
		Email: "both@example.com",
		Roles: models.RoleList{models.RoleAdmin},
	}
	supplierRepo.suppliers["both@example.com"] = &models.Supplier{
		ID:    9,
		Email: "both@example.com",
		Roles: models.RoleList{models.RoleSupplier},
	}

	principal, err := svc.ResolveByEmail(context.Background(), "both@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if principal.UserType != models.UserTypeAdmin || principal.ID != 7 {
		t.Fatalf("expected admin principal to win, got %s/%d", principal.UserType, principal.ID)
	}
}

func TestResolveByEmailNotFound(t *testing.T) {
	svc, _, _ := newTestAuthService()

	if _, err := svc.ResolveByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, domain.ErrPrincipalNotFound) {
		t.Fatalf("expected ErrPrincipalNotFound, got %v", err)
	}
}

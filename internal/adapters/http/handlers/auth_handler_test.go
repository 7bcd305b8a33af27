package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/config"
	"procureflow/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// in-memory repositories backing the handler tests

type memEmailIndex struct {
	taken map[string]bool
}

type memAdminRepo struct {
	emails *memEmailIndex
	byMail map[string]*models.Admin
	nextID uint
}

func (r *memAdminRepo) Create(ctx context.Context, admin *models.Admin) error {
	r.emails.taken[admin.Email] = true
	admin.ID = r.nextID
	r.nextID++
	r.byMail[admin.Email] = admin
	return nil
}

func (r *memAdminRepo) GetByID(ctx context.Context, id uint) (*models.Admin, error) {
	for _, a := range r.byMail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAdminRepo) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if a, ok := r.byMail[email]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memAdminRepo) Update(ctx context.Context, admin *models.Admin) error { return nil }
func (r *memAdminRepo) Delete(ctx context.Context, id uint) error             { return nil }

func (r *memAdminRepo) List(ctx context.Context, offset, limit int) ([]*models.Admin, int64, error) {
	return nil, 0, nil
}

func (r *memAdminRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.emails.taken[email] && r.byMail[email] != nil, nil
}

type memSupplierRepo struct {
	emails *memEmailIndex
	byMail map[string]*models.Supplier
	nextID uint
}

func (r *memSupplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	r.emails.taken[supplier.Email] = true
	supplier.ID = r.nextID
	r.nextID++
	r.byMail[supplier.Email] = supplier
	return nil
}

func (r *memSupplierRepo) GetByID(ctx context.Context, id uint) (*models.Supplier, error) {
	for _, s := range r.byMail {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSupplierRepo) GetByEmail(ctx context.Context, email string) (*models.Supplier, error) {
	if s, ok := r.byMail[email]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *memSupplierRepo) Update(ctx context.Context, supplier *models.Supplier) error { return nil }
func (r *memSupplierRepo) Delete(ctx context.Context, id uint) error                   { return nil }

func (r *memSupplierRepo) List(ctx context.Context, offset, limit int) ([]*models.Supplier, int64, error) {
	return nil, 0, nil
}

func (r *memSupplierRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.emails.taken[email] && r.byMail[email] != nil, nil
}

func (r *memSupplierRepo) SearchByName(ctx context.Context, name string) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *memSupplierRepo) SearchByAddress(ctx context.Context, address string) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *memSupplierRepo) FindByStatus(ctx context.Context, status models.SupplierStatus) ([]*models.Supplier, error) {
	return nil, nil
}

func (r *memSupplierRepo) FindByCategory(ctx context.Context, category string) ([]*models.Supplier, error) {
	return nil, nil
}

func newAuthTestApp() *fiber.App {
	emails := &memEmailIndex{taken: make(map[string]bool)}
	adminRepo := &memAdminRepo{emails: emails, byMail: make(map[string]*models.Admin), nextID: 1}
	supplierRepo := &memSupplierRepo{emails: emails, byMail: make(map[string]*models.Supplier), nextID: 1}
	cfg := &config.Config{JWT: config.JWTConfig{Secret: "handler-test-secret", ExpiryHours: 1}}

	handler := NewAuthHandler(services.NewAuthService(adminRepo, supplierRepo, cfg))

	app := fiber.New()
	auth := app.Group("/api/v1/auth")
	auth.Post("/admin/register", handler.RegisterAdmin)
	auth.Post("/supplier/register", handler.RegisterSupplier)
	auth.Post("/login", handler.Login)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("invalid response body %q: %v", raw, err)
	}
	return resp.StatusCode, payload
}

const adminBody = `{"full_name":"Jane Admin","email":"admin@example.com","password":"Secret123"}`

func TestRegisterAdminCreated(t *testing.T) {
	app := newAuthTestApp()

	status, payload := postJSON(t, app, "/api/v1/auth/admin/register", adminBody)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d: %v", status, payload)
	}
	if payload["success"] != true {
		t.Fatalf("expected success=true, got %v", payload["success"])
	}

	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %v", payload["data"])
	}
	if _, leaked := data["password"]; leaked {
		t.Fatalf("password leaked in registration response")
	}
	roles, ok := data["roles"].([]interface{})
	if !ok || len(roles) != 1 || roles[0] != "ROLE_ADMIN" {
		t.Fatalf("expected default roles [ROLE_ADMIN], got %v", data["roles"])
	}
}

func TestRegisterAdminScalarRole(t *testing.T) {
	app := newAuthTestApp()

	body := `{"full_name":"Jane Admin","email":"admin@example.com","password":"Secret123","roles":"ROLE_ADMIN"}`
	status, payload := postJSON(t, app, "/api/v1/auth/admin/register", body)
	if status != fiber.StatusCreated {
		t.Fatalf("expected 201 with scalar roles, got %d: %v", status, payload)
	}
}

func TestRegisterAdminWeakPassword(t *testing.T) {
	app := newAuthTestApp()

	cases := []struct {
		name string
		body string
	}{
		{"too short", `{"full_name":"Jane Admin","email":"a@example.com","password":"Ab1"}`},
		{"no digit", `{"full_name":"Jane Admin","email":"a@example.com","password":"OnlyLetters"}`},
		{"no letter", `{"full_name":"Jane Admin","email":"a@example.com","password":"12345678"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, payload := postJSON(t, app, "/api/v1/auth/admin/register", tc.body)
			if status != fiber.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %v", status, payload)
			}
		})
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	app := newAuthTestApp()

	if status, _ := postJSON(t, app, "/api/v1/auth/admin/register", adminBody); status != fiber.StatusCreated {
		t.Fatalf("setup registration failed: %d", status)
	}

	supplierBody := `{"supplier_name":"Acme Supplies","address":"12 Industrial Road","email":"admin@example.com","password":"Secret123"}`
	status, payload := postJSON(t, app, "/api/v1/auth/supplier/register", supplierBody)
	if status != fiber.StatusConflict {
		t.Fatalf("expected 409, got %d: %v", status, payload)
	}
	if payload["message"] != "Email already registered" {
		t.Fatalf("unexpected message: %v", payload["message"])
	}
}

func TestLoginSuccessReturnsToken(t *testing.T) {
	app := newAuthTestApp()

	if status, _ := postJSON(t, app, "/api/v1/auth/admin/register", adminBody); status != fiber.StatusCreated {
		t.Fatalf("setup registration failed: %d", status)
	}

	status, payload := postJSON(t, app, "/api/v1/auth/login", `{"email":"admin@example.com","password":"Secret123"}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200, got %d: %v", status, payload)
	}

	data, ok := payload["data"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected data object, got %v", payload["data"])
	}
	if token, _ := data["token"].(string); token == "" {
		t.Fatalf("expected non-empty token, got %v", data["token"])
	}
	if data["user_type"] != "admin" {
		t.Fatalf("expected user_type admin, got %v", data["user_type"])
	}
}

func TestLoginAcceptsArrayFields(t *testing.T) {
	app := newAuthTestApp()

	if status, _ := postJSON(t, app, "/api/v1/auth/admin/register", adminBody); status != fiber.StatusCreated {
		t.Fatalf("setup registration failed: %d", status)
	}

	status, payload := postJSON(t, app, "/api/v1/auth/login", `{"email":["admin@example.com"],"password":["Secret123"]}`)
	if status != fiber.StatusOK {
		t.Fatalf("expected 200 for array-shaped fields, got %d: %v", status, payload)
	}
}

func TestLoginFailuresSameResponse(t *testing.T) {
	app := newAuthTestApp()

	if status, _ := postJSON(t, app, "/api/v1/auth/admin/register", adminBody); status != fiber.StatusCreated {
		t.Fatalf("setup registration failed: %d", status)
	}

	wrongStatus, wrongPayload := postJSON(t, app, "/api/v1/auth/login", `{"email":"admin@example.com","password":"WrongPass1"}`)
	unknownStatus, unknownPayload := postJSON(t, app, "/api/v1/auth/login", `{"email":"nobody@example.com","password":"Secret123"}`)

	if wrongStatus != fiber.StatusUnauthorized || unknownStatus != fiber.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongStatus, unknownStatus)
	}
	if wrongPayload["message"] != unknownPayload["message"] {
		t.Fatalf("failure responses distinguishable: %v vs %v", wrongPayload["message"], unknownPayload["message"])
	}
}

func TestLoginMissingFields(t *testing.T) {
	app := newAuthTestApp()

	status, _ := postJSON(t, app, "/api/v1/auth/login", `{"password":"Secret123"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", status)
	}

	status, _ = postJSON(t, app, "/api/v1/auth/login", `{"email":"admin@example.com"}`)
	if status != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", status)
	}
}

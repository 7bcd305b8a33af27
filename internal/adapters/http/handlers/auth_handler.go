package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"procureflow/internal/core/domain"
	"procureflow/internal/core/services"
	"procureflow/internal/pkg/password"
	"procureflow/internal/pkg/response"
	"procureflow/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// FlexString is a string that also accepts a singleton JSON array,
// matching the shapes Swagger UI sends for login fields
type FlexString string

// UnmarshalJSON accepts "value" or ["value"]
func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	if len(list) == 0 {
		*f = ""
		return nil
	}
	*f = FlexString(list[0])
	return nil
}

// LoginRequest represents login request body
type LoginRequest struct {
	Email    FlexString `json:"email"`
	Password FlexString `json:"password"`
}

// RegisterAdmin handles admin registration
// @Summary Register a new admin
// @Description Creates a new admin account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterAdminInput true "Admin registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/admin/register [post]
func (h *AuthHandler) RegisterAdmin(c *fiber.Ctx) error {
	var input services.RegisterAdminInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)

	if fields := validateRegistration(&input, input.Password); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	admin, err := h.authService.RegisterAdmin(c.Context(), &input)
	if err != nil {
		return h.registrationError(c, err)
	}

	return response.Created(c, "Admin registered successfully", admin)
}

// RegisterSupplier handles supplier registration
// @Summary Register a new supplier
// @Description Creates a new supplier account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.RegisterSupplierInput true "Supplier registration data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /auth/supplier/register [post]
func (h *AuthHandler) RegisterSupplier(c *fiber.Ctx) error {
	var input services.RegisterSupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input.SupplierName = strings.TrimSpace(input.SupplierName)
	input.Email = strings.TrimSpace(input.Email)

	if fields := validateRegistration(&input, input.Password); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	supplier, err := h.authService.RegisterSupplier(c.Context(), &input)
	if err != nil {
		return h.registrationError(c, err)
	}

	return response.Created(c, "Supplier registered successfully", supplier)
}

// Login handles login for both admins and suppliers
// @Summary Authenticate user
// @Description Login with email and password to get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	email := strings.TrimSpace(string(req.Email))
	if email == "" {
		return response.BadRequest(c, "Email is required")
	}
	if req.Password == "" {
		return response.BadRequest(c, "Password is required")
	}

	result, err := h.authService.Login(c.Context(), email, string(req.Password))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return response.Unauthorized(c, "Invalid email or password")
		}
		return response.InternalServerError(c, "Failed to login")
	}

	return response.Success(c, "Authentication successful", result)
}

// registrationError maps registration failures to HTTP responses
func (h *AuthHandler) registrationError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrDuplicateEmail) {
		return response.Conflict(c, "Email already registered")
	}
	return response.InternalServerError(c, "Failed to register account")
}

// validateRegistration runs struct validation plus the password policy
func validateRegistration(input interface{}, plaintext string) map[string]string {
	fields := validate.Struct(input)

	if plaintext != "" && !password.ValidatePassword(plaintext) {
		if fields == nil {
			fields = make(map[string]string)
		}
		if _, ok := fields["password"]; !ok {
			fields["password"] = "password must contain at least one letter and one number"
		}
	}

	return fields
}

package handlers

import (
	"errors"
	"strconv"

	"procureflow/internal/core/domain"
	"procureflow/internal/core/services"
	"procureflow/internal/pkg/pagination"
	"procureflow/internal/pkg/response"
	"procureflow/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles admin management endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// parseID extracts a numeric path parameter
func parseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// List lists admins
// @Summary List admins
// @Description Returns admins with pagination
// @Tags Admins
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /admins [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	admins, total, err := h.adminService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list admins")
	}

	return response.Success(c, "Admins retrieved successfully", pagination.NewResponse(admins, params, total))
}

// Get gets an admin by ID
// @Summary Get admin
// @Description Returns a single admin by ID
// @Tags Admins
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admins/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	admin, err := h.adminService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		return response.InternalServerError(c, "Failed to get admin")
	}

	return response.Success(c, "Admin retrieved successfully", admin)
}

// Update updates an admin profile
// @Summary Update admin
// @Description Updates an admin's profile fields
// @Tags Admins
// @Accept json
// @Produce json
// @Param id path int true "Admin ID"
// @Param body body services.UpdateAdminInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admins/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	var input services.UpdateAdminInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	admin, err := h.adminService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		return response.InternalServerError(c, "Failed to update admin")
	}

	return response.Success(c, "Admin updated successfully", admin)
}

// Delete deletes an admin
// @Summary Delete admin
// @Description Deletes an admin by ID
// @Tags Admins
// @Produce json
// @Param id path int true "Admin ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /admins/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid admin ID")
	}

	if err := h.adminService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAdminNotFound) {
			return response.NotFound(c, "Admin not found")
		}
		return response.InternalServerError(c, "Failed to delete admin")
	}

	return response.Success(c, "Admin deleted successfully", nil)
}

package handlers

import (
	"errors"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/core/domain"
	"procureflow/internal/core/services"
	"procureflow/internal/pkg/pagination"
	"procureflow/internal/pkg/response"
	"procureflow/internal/pkg/validate"

	"github.com/gofiber/fiber/v2"
)

// SupplierHandler handles supplier management endpoints
type SupplierHandler struct {
	supplierService *services.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// StatusRequest represents a status change request body
type StatusRequest struct {
	Status string `json:"status"`
}

// List lists suppliers
// @Summary List suppliers
// @Description Returns suppliers with pagination
// @Tags Suppliers
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	suppliers, total, err := h.supplierService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", pagination.NewResponse(suppliers, params, total))
}

// Get gets a supplier by ID
// @Summary Get supplier
// @Description Returns a single supplier by ID
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/{id} [get]
func (h *SupplierHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	supplier, err := h.supplierService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to get supplier")
	}

	return response.Success(c, "Supplier retrieved successfully", supplier)
}

// SearchByName searches suppliers by name
// @Summary Search suppliers by name
// @Description Finds suppliers whose name contains the given text
// @Tags Suppliers
// @Produce json
// @Param name query string true "Name fragment"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/search [get]
func (h *SupplierHandler) SearchByName(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return response.BadRequest(c, "Query parameter 'name' is required")
	}

	suppliers, err := h.supplierService.SearchByName(c.Context(), name)
	if err != nil {
		return response.InternalServerError(c, "Failed to search suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", suppliers)
}

// SearchByAddress searches suppliers by address
// @Summary Search suppliers by address
// @Description Finds suppliers whose address contains the given text
// @Tags Suppliers
// @Produce json
// @Param address query string true "Address fragment"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/search/address [get]
func (h *SupplierHandler) SearchByAddress(c *fiber.Ctx) error {
	address := c.Query("address")
	if address == "" {
		return response.BadRequest(c, "Query parameter 'address' is required")
	}

	suppliers, err := h.supplierService.SearchByAddress(c.Context(), address)
	if err != nil {
		return response.InternalServerError(c, "Failed to search suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", suppliers)
}

// ByStatus lists suppliers by status
// @Summary List suppliers by status
// @Description Returns suppliers with the given status
// @Tags Suppliers
// @Produce json
// @Param status path string true "Status (ACTIVE, INACTIVE, BLACKLISTED)"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/status/{status} [get]
func (h *SupplierHandler) ByStatus(c *fiber.Ctx) error {
	status := models.SupplierStatus(c.Params("status"))

	suppliers, err := h.supplierService.FindByStatus(c.Context(), status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return response.BadRequest(c, "Invalid supplier status")
		}
		return response.InternalServerError(c, "Failed to list suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", suppliers)
}

// ByCategory lists suppliers by category
// @Summary List suppliers by category
// @Description Returns suppliers in the given category
// @Tags Suppliers
// @Produce json
// @Param category query string true "Category"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/category [get]
func (h *SupplierHandler) ByCategory(c *fiber.Ctx) error {
	category := c.Query("category")
	if category == "" {
		return response.BadRequest(c, "Query parameter 'category' is required")
	}

	suppliers, err := h.supplierService.FindByCategory(c.Context(), category)
	if err != nil {
		return response.InternalServerError(c, "Failed to list suppliers")
	}

	return response.Success(c, "Suppliers retrieved successfully", suppliers)
}

// Update updates a supplier profile
// @Summary Update supplier
// @Description Updates a supplier's profile fields
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param body body services.UpdateSupplierInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	var input services.UpdateSupplierInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	supplier, err := h.supplierService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to update supplier")
	}

	return response.Success(c, "Supplier updated successfully", supplier)
}

// UpdateStatus updates a supplier's status
// @Summary Update supplier status
// @Description Sets the supplier status (ACTIVE, INACTIVE, BLACKLISTED)
// @Tags Suppliers
// @Accept json
// @Produce json
// @Param id path int true "Supplier ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/{id}/status [patch]
func (h *SupplierHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	supplier, err := h.supplierService.UpdateStatus(c.Context(), id, models.SupplierStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid supplier status")
		case errors.Is(err, domain.ErrSupplierNotFound):
			return response.NotFound(c, "Supplier not found")
		default:
			return response.InternalServerError(c, "Failed to update supplier status")
		}
	}

	return response.Success(c, "Supplier status updated successfully", supplier)
}

// Delete deletes a supplier
// @Summary Delete supplier
// @Description Deletes a supplier by ID
// @Tags Suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /suppliers/{id} [delete]
func (h *SupplierHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	if err := h.supplierService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return response.NotFound(c, "Supplier not found")
		}
		return response.InternalServerError(c, "Failed to delete supplier")
	}

	return response.Success(c, "Supplier deleted successfully", nil)
}

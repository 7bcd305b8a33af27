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

// ProjectHandler handles project management endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List lists projects
// @Summary List projects
// @Description Returns projects with pagination
// @Tags Projects
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	projects, total, err := h.projectService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list projects")
	}

	return response.Success(c, "Projects retrieved successfully", pagination.NewResponse(projects, params, total))
}

// Get gets a project by ID
// @Summary Get project
// @Description Returns a single project with its tasks
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	project, err := h.projectService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to get project")
	}

	return response.Success(c, "Project retrieved successfully", project)
}

// Search searches projects by name
// @Summary Search projects
// @Description Finds projects whose name contains the given text
// @Tags Projects
// @Produce json
// @Param name query string true "Name fragment"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /projects/search [get]
func (h *ProjectHandler) Search(c *fiber.Ctx) error {
	name := c.Query("name")
	if name == "" {
		return response.BadRequest(c, "Query parameter 'name' is required")
	}

	params := pagination.GetParams(c)

	projects, total, err := h.projectService.SearchByName(c.Context(), name, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to search projects")
	}

	return response.Success(c, "Projects retrieved successfully", pagination.NewResponse(projects, params, total))
}

// ByStatus lists projects by status
// @Summary List projects by status
// @Description Returns projects with the given status
// @Tags Projects
// @Produce json
// @Param status path string true "Status (PLANNING, IN_PROGRESS, ON_HOLD, COMPLETED, CANCELLED)"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /projects/status/{status} [get]
func (h *ProjectHandler) ByStatus(c *fiber.Ctx) error {
	status := models.ProjectStatus(c.Params("status"))

	projects, err := h.projectService.FindByStatus(c.Context(), status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return response.BadRequest(c, "Invalid project status")
		}
		return response.InternalServerError(c, "Failed to list projects")
	}

	return response.Success(c, "Projects retrieved successfully", projects)
}

// MyProjects lists projects created by the authenticated admin
// @Summary List my projects
// @Description Returns projects created by the authenticated admin
// @Tags Projects
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /projects/my-projects [get]
func (h *ProjectHandler) MyProjects(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	projects, err := h.projectService.FindByAdmin(c.Context(), adminID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list projects")
	}

	return response.Success(c, "Projects retrieved successfully", projects)
}

// Create creates a project
// @Summary Create project
// @Description Creates a project owned by the authenticated admin
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body services.ProjectInput true "Project data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	adminID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	project, err := h.projectService.Create(c.Context(), &input, adminID)
	if err != nil {
		return response.InternalServerError(c, "Failed to create project")
	}

	return response.Created(c, "Project created successfully", project)
}

// Update updates a project
// @Summary Update project
// @Description Updates a project's fields
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body services.ProjectInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /projects/{id} [put]
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	var input services.ProjectInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	project, err := h.projectService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to update project")
	}

	return response.Success(c, "Project updated successfully", project)
}

// UpdateStatus updates a project's status
// @Summary Update project status
// @Description Sets the project status
// @Tags Projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /projects/{id}/status [patch]
func (h *ProjectHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	project, err := h.projectService.UpdateStatus(c.Context(), id, models.ProjectStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid project status")
		case errors.Is(err, domain.ErrProjectNotFound):
			return response.NotFound(c, "Project not found")
		default:
			return response.InternalServerError(c, "Failed to update project status")
		}
	}

	return response.Success(c, "Project status updated successfully", project)
}

// Delete deletes a project
// @Summary Delete project
// @Description Deletes a project and its tasks
// @Tags Projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	if err := h.projectService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to delete project")
	}

	return response.Success(c, "Project deleted successfully", nil)
}

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

// TaskHandler handles task management endpoints
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List lists tasks
// @Summary List tasks
// @Description Returns tasks with pagination
// @Tags Tasks
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /tasks [get]
func (h *TaskHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	tasks, total, err := h.taskService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list tasks")
	}

	return response.Success(c, "Tasks retrieved successfully", pagination.NewResponse(tasks, params, total))
}

// Get gets a task by ID
// @Summary Get task
// @Description Returns a single task by ID
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/{id} [get]
func (h *TaskHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid task ID")
	}

	task, err := h.taskService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return response.NotFound(c, "Task not found")
		}
		return response.InternalServerError(c, "Failed to get task")
	}

	return response.Success(c, "Task retrieved successfully", task)
}

// ByProject lists tasks belonging to a project
// @Summary List tasks by project
// @Description Returns all tasks under a project
// @Tags Tasks
// @Produce json
// @Param projectId path int true "Project ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/project/{projectId} [get]
func (h *TaskHandler) ByProject(c *fiber.Ctx) error {
	projectID, err := parseID(c, "projectId")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	tasks, err := h.taskService.FindByProject(c.Context(), projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to list tasks")
	}

	return response.Success(c, "Tasks retrieved successfully", tasks)
}

// ByProjectAndStatus lists tasks in a project with the given status
// @Summary List tasks by project and status
// @Description Returns tasks under a project filtered by status
// @Tags Tasks
// @Produce json
// @Param projectId path int true "Project ID"
// @Param status path string true "Status (PENDING, IN_PROGRESS, COMPLETED, DELAYED, CANCELLED)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/project/{projectId}/status/{status} [get]
func (h *TaskHandler) ByProjectAndStatus(c *fiber.Ctx) error {
	projectID, err := parseID(c, "projectId")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	status := models.TaskStatus(c.Params("status"))

	tasks, err := h.taskService.FindByProjectAndStatus(c.Context(), projectID, status)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid task status")
		case errors.Is(err, domain.ErrProjectNotFound):
			return response.NotFound(c, "Project not found")
		default:
			return response.InternalServerError(c, "Failed to list tasks")
		}
	}

	return response.Success(c, "Tasks retrieved successfully", tasks)
}

// MyTasks lists tasks assigned to the authenticated supplier
// @Summary List my tasks
// @Description Returns tasks assigned to the authenticated supplier
// @Tags Tasks
// @Produce json
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /tasks/my-tasks [get]
func (h *TaskHandler) MyTasks(c *fiber.Ctx) error {
	supplierID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	tasks, err := h.taskService.FindBySupplier(c.Context(), supplierID)
	if err != nil {
		return response.InternalServerError(c, "Failed to list tasks")
	}

	return response.Success(c, "Tasks retrieved successfully", tasks)
}

// ByStatus lists tasks by status
// @Summary List tasks by status
// @Description Returns tasks with the given status
// @Tags Tasks
// @Produce json
// @Param status path string true "Status (PENDING, IN_PROGRESS, COMPLETED, DELAYED, CANCELLED)"
// @Success 200 {object} response.Response
// @Security BearerAuth
// @Router /tasks/status/{status} [get]
func (h *TaskHandler) ByStatus(c *fiber.Ctx) error {
	status := models.TaskStatus(c.Params("status"))

	tasks, err := h.taskService.FindByStatus(c.Context(), status)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			return response.BadRequest(c, "Invalid task status")
		}
		return response.InternalServerError(c, "Failed to list tasks")
	}

	return response.Success(c, "Tasks retrieved successfully", tasks)
}

// Create creates a task under a project
// @Summary Create task
// @Description Creates a task under the given project
// @Tags Tasks
// @Accept json
// @Produce json
// @Param projectId path int true "Project ID"
// @Param body body services.TaskInput true "Task data"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/project/{projectId} [post]
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	projectID, err := parseID(c, "projectId")
	if err != nil {
		return response.BadRequest(c, "Invalid project ID")
	}

	var input services.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	task, err := h.taskService.Create(c.Context(), &input, projectID)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			return response.NotFound(c, "Project not found")
		}
		return response.InternalServerError(c, "Failed to create task")
	}

	return response.Created(c, "Task created successfully", task)
}

// Update updates a task
// @Summary Update task
// @Description Updates a task's fields
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param body body services.TaskInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/{id} [put]
func (h *TaskHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid task ID")
	}

	var input services.TaskInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if fields := validate.Struct(&input); fields != nil {
		return response.ValidationFailed(c, fields)
	}

	task, err := h.taskService.Update(c.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return response.NotFound(c, "Task not found")
		}
		return response.InternalServerError(c, "Failed to update task")
	}

	return response.Success(c, "Task updated successfully", task)
}

// Assign assigns a task to a supplier
// @Summary Assign task
// @Description Assigns a task to a supplier
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Param supplierId path int true "Supplier ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/{id}/assign/{supplierId} [patch]
func (h *TaskHandler) Assign(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid task ID")
	}

	supplierID, err := parseID(c, "supplierId")
	if err != nil {
		return response.BadRequest(c, "Invalid supplier ID")
	}

	task, err := h.taskService.Assign(c.Context(), id, supplierID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTaskNotFound):
			return response.NotFound(c, "Task not found")
		case errors.Is(err, domain.ErrSupplierNotFound):
			return response.NotFound(c, "Supplier not found")
		default:
			return response.InternalServerError(c, "Failed to assign task")
		}
	}

	return response.Success(c, "Task assigned successfully", task)
}

// UpdateStatus updates a task's status.
// Suppliers may only update tasks assigned to them.
// @Summary Update task status
// @Description Sets the task status; suppliers can only update their own tasks
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path int true "Task ID"
// @Param body body StatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/{id}/status [patch]
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid task ID")
	}

	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	userType, _ := c.Locals("userType").(string)

	var req StatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	task, err := h.taskService.UpdateStatus(c.Context(), id, models.TaskStatus(req.Status), userType, userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid task status")
		case errors.Is(err, domain.ErrTaskNotFound):
			return response.NotFound(c, "Task not found")
		case errors.Is(err, domain.ErrNotTaskAssignee):
			return response.Forbidden(c, "You can only update tasks assigned to you")
		default:
			return response.InternalServerError(c, "Failed to update task status")
		}
	}

	return response.Success(c, "Task status updated successfully", task)
}

// Delete deletes a task
// @Summary Delete task
// @Description Deletes a task by ID
// @Tags Tasks
// @Produce json
// @Param id path int true "Task ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Security BearerAuth
// @Router /tasks/{id} [delete]
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.BadRequest(c, "Invalid task ID")
	}

	if err := h.taskService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			return response.NotFound(c, "Task not found")
		}
		return response.InternalServerError(c, "Failed to delete task")
	}

	return response.Success(c, "Task deleted successfully", nil)
}

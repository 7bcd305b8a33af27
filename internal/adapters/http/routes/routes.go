package routes

import (
	"procureflow/internal/adapters/http/handlers"
	"procureflow/internal/adapters/http/middleware"
	"procureflow/internal/adapters/persistence/repositories"
	"procureflow/internal/config"
	"procureflow/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	adminRepo := repositories.NewAdminRepository(db)
	supplierRepo := repositories.NewSupplierRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	taskRepo := repositories.NewTaskRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminRepo, supplierRepo, cfg)
	adminService := services.NewAdminService(adminRepo)
	supplierService := services.NewSupplierService(supplierRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, supplierRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	api := app.Group("/api/v1")

	// Auth routes (public, stricter rate limit)
	auth := api.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/admin/register", authHandler.RegisterAdmin)
	auth.Post("/supplier/register", authHandler.RegisterSupplier)
	auth.Post("/login", authHandler.Login)

	// Everything below requires a valid token
	protected := middleware.Protected(cfg)

	// Admin management (admin only)
	admins := api.Group("/admins", protected, middleware.AdminOnly())
	admins.Get("/", adminHandler.List)
	admins.Get("/:id", adminHandler.Get)
	admins.Put("/:id", adminHandler.Update)
	admins.Delete("/:id", adminHandler.Delete)

	// Supplier management (reads: any authenticated, mutations: admin)
	suppliers := api.Group("/suppliers", protected)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/search", supplierHandler.SearchByName)
	suppliers.Get("/search/address", supplierHandler.SearchByAddress)
	suppliers.Get("/category", supplierHandler.ByCategory)
	suppliers.Get("/status/:status", supplierHandler.ByStatus)
	suppliers.Get("/:id", supplierHandler.Get)
	suppliers.Put("/:id", middleware.AdminOnly(), supplierHandler.Update)
	suppliers.Patch("/:id/status", middleware.AdminOnly(), supplierHandler.UpdateStatus)
	suppliers.Delete("/:id", middleware.AdminOnly(), supplierHandler.Delete)

	// Project management
	projects := api.Group("/projects", protected)
	projects.Get("/", middleware.AdminOnly(), projectHandler.List)
	projects.Get("/search", middleware.AdminOnly(), projectHandler.Search)
	projects.Get("/my-projects", middleware.AdminOnly(), projectHandler.MyProjects)
	projects.Get("/status/:status", middleware.AdminOnly(), projectHandler.ByStatus)
	projects.Get("/:id", middleware.AdminOrSupplier(), projectHandler.Get)
	projects.Post("/", middleware.AdminOnly(), projectHandler.Create)
	projects.Put("/:id", middleware.AdminOnly(), projectHandler.Update)
	projects.Patch("/:id/status", middleware.AdminOnly(), projectHandler.UpdateStatus)
	projects.Delete("/:id", middleware.AdminOnly(), projectHandler.Delete)

	// Task management
	tasks := api.Group("/tasks", protected)
	tasks.Get("/", middleware.AdminOnly(), taskHandler.List)
	tasks.Get("/my-tasks", middleware.SupplierOnly(), taskHandler.MyTasks)
	tasks.Get("/status/:status", middleware.AdminOnly(), taskHandler.ByStatus)
	tasks.Get("/project/:projectId", middleware.AdminOrSupplier(), taskHandler.ByProject)
	tasks.Get("/project/:projectId/status/:status", middleware.AdminOrSupplier(), taskHandler.ByProjectAndStatus)
	tasks.Get("/:id", middleware.AdminOrSupplier(), taskHandler.Get)
	tasks.Post("/project/:projectId", middleware.AdminOnly(), taskHandler.Create)
	tasks.Put("/:id", middleware.AdminOnly(), taskHandler.Update)
	tasks.Patch("/:id/assign/:supplierId", middleware.AdminOnly(), taskHandler.Assign)
	tasks.Patch("/:id/status", middleware.AdminOrSupplier(), taskHandler.UpdateStatus)
	tasks.Delete("/:id", middleware.AdminOnly(), taskHandler.Delete)
}

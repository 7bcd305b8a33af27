package services

import (
	"context"
	"errors"
	"testing"

	"procureflow/internal/adapters/persistence/models"
	"procureflow/internal/core/domain"

	"gorm.io/gorm"
)

type stubTaskRepo struct {
	tasks map[uint]*models.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[uint]*models.Task)}
}

func (r *stubTaskRepo) Create(ctx context.Context, task *models.Task) error {
	task.ID = uint(len(r.tasks) + 1)
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) GetByID(ctx context.Context, id uint) (*models.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTaskRepo) Update(ctx context.Context, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) Delete(ctx context.Context, id uint) error {
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) List(ctx context.Context, offset, limit int) ([]*models.Task, int64, error) {
	return nil, 0, nil
}

func (r *stubTaskRepo) FindByProject(ctx context.Context, projectID uint) ([]*models.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) FindByProjectAndStatus(ctx context.Context, projectID uint, status models.TaskStatus) ([]*models.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) FindBySupplier(ctx context.Context, supplierID uint) ([]*models.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) FindByStatus(ctx context.Context, status models.TaskStatus) ([]*models.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) MarkOverdueDelayed(ctx context.Context) (int64, error) {
	return 0, nil
}

type stubProjectRepo struct {
	projects map[uint]*models.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[uint]*models.Project)}
}

func (r *stubProjectRepo) Create(ctx context.Context, project *models.Project) error {
	project.ID = uint(len(r.projects) + 1)
	r.projects[project.ID] = project
	return nil
}

func (r *stubProjectRepo) GetByID(ctx context.Context, id uint) (*models.Project, error) {
	if p, ok := r.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProjectRepo) Update(ctx context.Context, project *models.Project) error { return nil }
func (r *stubProjectRepo) Delete(ctx context.Context, id uint) error                 { return nil }

func (r *stubProjectRepo) List(ctx context.Context, offset, limit int) ([]*models.Project, int64, error) {
	return nil, 0, nil
}

func (r *stubProjectRepo) SearchByName(ctx context.Context, name string, offset, limit int) ([]*models.Project, int64, error) {
	return nil, 0, nil
}

func (r *stubProjectRepo) FindByStatus(ctx context.Context, status models.ProjectStatus) ([]*models.Project, error) {
	return nil, nil
}

func (r *stubProjectRepo) FindByAdmin(ctx context.Context, adminID uint) ([]*models.Project, error) {
	return nil, nil
}

func newTestTaskService() (*TaskService, *stubTaskRepo, *stubProjectRepo, *stubSupplierRepo) {
	taskRepo := newStubTaskRepo()
	projectRepo := newStubProjectRepo()
	supplierRepo := newStubSupplierRepo(newStubEmailIndex())
	return NewTaskService(taskRepo, projectRepo, supplierRepo), taskRepo, projectRepo, supplierRepo
}

func seedTask(taskRepo *stubTaskRepo, supplierID *uint) *models.Task {
	task := &models.Task{
		ID:         1,
		Name:       "Pour foundation",
		Status:     models.TaskPending,
		ProjectID:  1,
		SupplierID: supplierID,
	}
	taskRepo.tasks[task.ID] = task
	return task
}

func TestCreateTaskRequiresProject(t *testing.T) {
	svc, _, projectRepo, _ := newTestTaskService()

	input := &TaskInput{Name: "Pour foundation"}

	if _, err := svc.Create(context.Background(), input, 99); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}

	projectRepo.projects[1] = &models.Project{ID: 1, Name: "HQ build"}

	task, err := svc.Create(context.Background(), input, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != models.TaskPending {
		t.Fatalf("expected new task status %q, got %q", models.TaskPending, task.Status)
	}
}

func TestUpdateStatusAsAdmin(t *testing.T) {
	svc, taskRepo, _, _ := newTestTaskService()
	other := uint(5)
	seedTask(taskRepo, &other)

	task, err := svc.UpdateStatus(context.Background(), 1, models.TaskCompleted, models.UserTypeAdmin, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != models.TaskCompleted {
		t.Fatalf("expected status %q, got %q", models.TaskCompleted, task.Status)
	}
}

func TestUpdateStatusAsAssignedSupplier(t *testing.T) {
	svc, taskRepo, _, _ := newTestTaskService()
	assignee := uint(5)
	seedTask(taskRepo, &assignee)

	task, err := svc.UpdateStatus(context.Background(), 1, models.TaskInProgress, models.UserTypeSupplier, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != models.TaskInProgress {
		t.Fatalf("expected status %q, got %q", models.TaskInProgress, task.Status)
	}
}

func TestUpdateStatusAsOtherSupplier(t *testing.T) {
	svc, taskRepo, _, _ := newTestTaskService()
	assignee := uint(5)
	seedTask(taskRepo, &assignee)

	if _, err := svc.UpdateStatus(context.Background(), 1, models.TaskCompleted, models.UserTypeSupplier, 6); !errors.Is(err, domain.ErrNotTaskAssignee) {
		t.Fatalf("expected ErrNotTaskAssignee, got %v", err)
	}

	if taskRepo.tasks[1].Status != models.TaskPending {
		t.Fatalf("status changed despite rejection: %q", taskRepo.tasks[1].Status)
	}
}

func TestUpdateStatusUnassignedTaskBySupplier(t *testing.T) {
	svc, taskRepo, _, _ := newTestTaskService()
	seedTask(taskRepo, nil)

	if _, err := svc.UpdateStatus(context.Background(), 1, models.TaskCompleted, models.UserTypeSupplier, 5); !errors.Is(err, domain.ErrNotTaskAssignee) {
		t.Fatalf("expected ErrNotTaskAssignee, got %v", err)
	}
}

func TestUpdateStatusInvalid(t *testing.T) {
	svc, taskRepo, _, _ := newTestTaskService()
	seedTask(taskRepo, nil)

	if _, err := svc.UpdateStatus(context.Background(), 1, "DONE", models.UserTypeAdmin, 1); !errors.Is(err, domain.ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
}

func TestUpdateStatusMissingTask(t *testing.T) {
	svc, _, _, _ := newTestTaskService()

	if _, err := svc.UpdateStatus(context.Background(), 99, models.TaskCompleted, models.UserTypeAdmin, 1); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestAssignTask(t *testing.T) {
	svc, taskRepo, _, supplierRepo := newTestTaskService()
	seedTask(taskRepo, nil)

	supplierRepo.suppliers["acme@example.com"] = &models.Supplier{ID: 3, Email: "acme@example.com"}

	task, err := svc.Assign(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.SupplierID == nil || *task.SupplierID != 3 {
		t.Fatalf("expected assignee 3, got %v", task.SupplierID)
	}

	if _, err := svc.Assign(context.Background(), 1, 99); !errors.Is(err, domain.ErrSupplierNotFound) {
		t.Fatalf("expected ErrSupplierNotFound, got %v", err)
	}
}

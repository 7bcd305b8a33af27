package services

import (
	"context"
	"log"
	"time"

	"procureflow/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled background jobs
type CronService struct {
	taskRepo repositories.TaskRepository
	cron     *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(taskRepo repositories.TaskRepository) *CronService {
	return &CronService{
		taskRepo: taskRepo,
		cron:     cron.New(),
	}
}

// Start schedules the daily overdue-task sweep (08:30)
func (s *CronService) Start() {
	_, err := s.cron.AddFunc("30 8 * * *", s.sweepOverdueTasks)
	if err != nil {
		log.Printf("❌ Failed to schedule overdue task sweep: %v", err)
		return
	}

	s.cron.Start()
	log.Println("✅ Cron service started (overdue task sweep at 08:30 daily)")
}

// Stop stops the cron scheduler
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 Cron service stopped")
}

// sweepOverdueTasks flags open tasks past their due date as DELAYED
func (s *CronService) sweepOverdueTasks() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	updated, err := s.taskRepo.MarkOverdueDelayed(ctx)
	if err != nil {
		log.Printf("❌ Overdue task sweep failed: %v", err)
		return
	}

	if updated > 0 {
		log.Printf("⏰ Overdue task sweep: %d task(s) marked DELAYED", updated)
	}
}

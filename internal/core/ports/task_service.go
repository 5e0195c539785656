package ports

import (
	"context"
	"time"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// CreateTaskInput carries the data needed to create a task. Status,
// priority, and progress are optional; the service applies defaults.
type CreateTaskInput struct {
	ProjectID     string
	Title         string
	Description   string
	AssigneeID    string
	Status        domain.TaskStatus
	Priority      domain.TaskPriority
	Deadline      time.Time
	Progress      int
	ChapterNumber int
}

// TaskSummary is the list-view row, enriched with display names.
type TaskSummary struct {
	ID            string
	Title         string
	Description   string
	Status        string
	Priority      string
	Deadline      time.Time
	Progress      int
	AssigneeID    string
	AssigneeName  string
	ProjectID     string
	ProjectTitle  string
	ChapterNumber int
	CreatedAt     time.Time
}

// TaskService defines use-case operations for tasks.
type TaskService interface {
	Create(ctx context.Context, actor *domain.UserProfile, input CreateTaskInput) (*domain.Task, error)
	UpdateStatus(ctx context.Context, actor *domain.UserProfile, taskID string, status domain.TaskStatus) (*domain.Task, error)
	List(ctx context.Context, actor *domain.UserProfile) ([]TaskSummary, error)
}

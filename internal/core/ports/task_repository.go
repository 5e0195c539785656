package ports

import (
	"context"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// ListTasksFilter scopes a task listing. A zero filter means no scoping
// (admin). For non-admin viewers the service sets AssigneeID to the viewer
// and ProjectIDs to the projects the viewer is a member of; a task matches
// when either condition holds.
type ListTasksFilter struct {
	AssigneeID string
	ProjectIDs []string
}

// Unscoped reports whether the filter matches every task.
func (f ListTasksFilter) Unscoped() bool {
	return f.AssigneeID == "" && len(f.ProjectIDs) == 0
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)

	// UpdateStatus sets the status in a single statement and returns the
	// updated document.
	UpdateStatus(ctx context.Context, id string, status domain.TaskStatus) (*domain.Task, error)

	// List returns tasks matching the filter, newest first.
	List(ctx context.Context, filter ListTasksFilter) ([]*domain.Task, error)
}

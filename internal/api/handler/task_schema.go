package handler

import (
	"time"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

type createTaskRequest struct {
	ProjectID     string    `json:"project_id"  validate:"required"`
	Title         string    `json:"title"       validate:"required"`
	Description   string    `json:"description"`
	AssigneeID    string    `json:"assignee_id"`
	Status        string    `json:"status"      validate:"omitempty,oneof=not_started in_progress needs_review completed"`
	Priority      string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	Deadline      time.Time `json:"deadline"    validate:"required"`
	Progress      int       `json:"progress"`
	ChapterNumber int       `json:"chapter_number"`
}

type updateTaskStatusRequest struct {
	TaskID string `json:"task_id" validate:"required"`
	Status string `json:"status"  validate:"required,oneof=not_started in_progress needs_review completed"`
}

// taskEnvelope wraps a single task the way the dashboard consumes it.
type taskEnvelope struct {
	Task *domain.Task `json:"task"`
}

type taskSummaryResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Status        string    `json:"status"`
	Priority      string    `json:"priority"`
	Deadline      time.Time `json:"deadline"`
	Progress      int       `json:"progress"`
	AssigneeID    string    `json:"assignee_id,omitempty"`
	AssigneeName  string    `json:"assignee_name,omitempty"`
	ProjectID     string    `json:"project_id"`
	ProjectTitle  string    `json:"project_title,omitempty"`
	ChapterNumber int       `json:"chapter_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type listTasksResponse struct {
	Tasks []taskSummaryResponse `json:"tasks"`
}

func toCreateTaskInput(req createTaskRequest) ports.CreateTaskInput {
	return ports.CreateTaskInput{
		ProjectID:     req.ProjectID,
		Title:         req.Title,
		Description:   req.Description,
		AssigneeID:    req.AssigneeID,
		Status:        domain.TaskStatus(req.Status),
		Priority:      domain.TaskPriority(req.Priority),
		Deadline:      req.Deadline,
		Progress:      req.Progress,
		ChapterNumber: req.ChapterNumber,
	}
}

func toListTasksResponse(items []ports.TaskSummary) listTasksResponse {
	out := make([]taskSummaryResponse, len(items))
	for i, t := range items {
		out[i] = taskSummaryResponse{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Status:        t.Status,
			Priority:      t.Priority,
			Deadline:      t.Deadline,
			Progress:      t.Progress,
			AssigneeID:    t.AssigneeID,
			AssigneeName:  t.AssigneeName,
			ProjectID:     t.ProjectID,
			ProjectTitle:  t.ProjectTitle,
			ChapterNumber: t.ChapterNumber,
			CreatedAt:     t.CreatedAt,
		}
	}
	return listTasksResponse{Tasks: out}
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/core/access"
	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

type taskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	users    ports.UserRepository
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewTaskService returns a TaskService implementation.
func NewTaskService(
	tasks ports.TaskRepository,
	projects ports.ProjectRepository,
	users ports.UserRepository,
	notifier ports.Notifier,
	log zerolog.Logger,
) ports.TaskService {
	return &taskService{
		tasks:    tasks,
		projects: projects,
		users:    users,
		notifier: notifier,
		log:      log,
	}
}

// Create persists a new task. Staff roles only; project_id, title, and
// deadline are required, and the project must exist. When an assignee is
// given, a task_assigned notice is dispatched after the insert commits.
func (s *taskService) Create(ctx context.Context, actor *domain.UserProfile, input ports.CreateTaskInput) (*domain.Task, error) {
	if !access.CanCreateTask(actor) {
		return nil, domain.ErrForbidden
	}
	if input.ProjectID == "" || input.Title == "" || input.Deadline.IsZero() {
		return nil, domain.ErrMissingFields
	}

	// Every task must reference an existing project.
	if _, err := s.projects.FindByID(ctx, input.ProjectID); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = domain.TaskNotStarted
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ProjectID:     input.ProjectID,
		Title:         input.Title,
		Description:   input.Description,
		AssigneeID:    input.AssigneeID,
		Status:        status,
		Priority:      priority,
		Deadline:      input.Deadline,
		Progress:      input.Progress,
		ChapterNumber: input.ChapterNumber,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.log.Error().Err(err).Str("project_id", input.ProjectID).Msg("failed to create task")
		return nil, fmt.Errorf("create task: %w", err)
	}

	if created.AssigneeID != "" {
		s.notifier.Notify(ports.NotificationInput{
			UserID:  created.AssigneeID,
			Title:   "New Task Assigned",
			Message: fmt.Sprintf("You have been assigned a new task: %s", created.Title),
			Type:    domain.NotifyTaskAssigned,
		})
	}

	s.log.Info().Str("task_id", created.ID).Str("project_id", created.ProjectID).Msg("task created")
	return created, nil
}

// UpdateStatus sets a task's status. Admin, any editor, or the assignee
// may write any enum value; there is no transition graph. Notices to the
// assignee and (on completion) the project's client are best-effort side
// effects and never affect the result.
func (s *taskService) UpdateStatus(ctx context.Context, actor *domain.UserProfile, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}
	if taskID == "" || status == "" {
		return nil, domain.ErrMissingFields
	}

	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if !access.CanUpdateTaskStatus(actor, task) {
		return nil, domain.ErrForbidden
	}

	updated, err := s.tasks.UpdateStatus(ctx, taskID, status)
	if err != nil {
		s.log.Error().Err(err).Str("task_id", taskID).Msg("failed to update task status")
		return nil, fmt.Errorf("update task status: %w", err)
	}

	if task.AssigneeID != "" && task.AssigneeID != actor.ID {
		s.notifier.Notify(ports.NotificationInput{
			UserID: task.AssigneeID,
			Title:  "Task Status Updated",
			Message: fmt.Sprintf("The status of your task %q was updated to %s",
				task.Title, strings.ReplaceAll(string(status), "_", " ")),
			Type: domain.NotifyTaskAssigned,
		})
	}

	if status == domain.TaskCompleted {
		s.notifyProjectClient(ctx, task)
	}

	s.log.Info().
		Str("task_id", taskID).
		Str("status", string(status)).
		Str("actor_id", actor.ID).
		Msg("task status updated")
	return updated, nil
}

// notifyProjectClient tells the owning client that a task in their project
// was completed. Lookup failures are logged and swallowed.
func (s *taskService) notifyProjectClient(ctx context.Context, task *domain.Task) {
	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		s.log.Warn().Err(err).Str("project_id", task.ProjectID).Msg("completion notice skipped: project lookup failed")
		return
	}
	if project.ClientID == "" {
		return
	}
	s.notifier.Notify(ports.NotificationInput{
		UserID:  project.ClientID,
		Title:   "Task Completed",
		Message: fmt.Sprintf("A task in your project %q was marked as completed.", project.Title),
		Type:    domain.NotifyProjectUpdate,
	})
}

// List returns tasks visible to the actor: everything for admins,
// otherwise tasks assigned to the actor plus tasks in projects whose
// ownership fields contain the actor.
func (s *taskService) List(ctx context.Context, actor *domain.UserProfile) ([]ports.TaskSummary, error) {
	if actor == nil {
		return nil, domain.ErrForbidden
	}

	filter := ports.ListTasksFilter{}
	if !access.IsAdmin(actor) {
		memberProjects, err := s.projects.IDsForMember(ctx, actor.ID)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		filter.AssigneeID = actor.ID
		filter.ProjectIDs = memberProjects
	}

	tasks, err := s.tasks.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}

	assigneeNames, projectTitles := s.listLookups(ctx, tasks)

	summaries := make([]ports.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, ports.TaskSummary{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Status:        string(t.Status),
			Priority:      string(t.Priority),
			Deadline:      t.Deadline,
			Progress:      t.Progress,
			AssigneeID:    t.AssigneeID,
			AssigneeName:  assigneeNames[t.AssigneeID],
			ProjectID:     t.ProjectID,
			ProjectTitle:  projectTitles[t.ProjectID],
			ChapterNumber: t.ChapterNumber,
			CreatedAt:     t.CreatedAt,
		})
	}
	return summaries, nil
}

func (s *taskService) listLookups(ctx context.Context, tasks []*domain.Task) (map[string]string, map[string]string) {
	assigneeSet := make(map[string]struct{})
	projectSet := make(map[string]struct{})
	for _, t := range tasks {
		if t.AssigneeID != "" {
			assigneeSet[t.AssigneeID] = struct{}{}
		}
		projectSet[t.ProjectID] = struct{}{}
	}

	var names map[string]string
	if len(assigneeSet) > 0 {
		ids := make([]string, 0, len(assigneeSet))
		for id := range assigneeSet {
			ids = append(ids, id)
		}
		var err error
		if names, err = s.users.NamesByIDs(ctx, ids); err != nil {
			s.log.Warn().Err(err).Msg("failed to resolve assignee names")
			names = nil
		}
	}

	var titles map[string]string
	if len(projectSet) > 0 {
		ids := make([]string, 0, len(projectSet))
		for id := range projectSet {
			ids = append(ids, id)
		}
		var err error
		if titles, err = s.projects.TitlesByIDs(ctx, ids); err != nil {
			s.log.Warn().Err(err).Msg("failed to resolve project titles")
			titles = nil
		}
	}
	return names, titles
}

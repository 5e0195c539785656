package domain

import "time"

// NotificationType classifies what triggered a notification.
type NotificationType string

const (
	NotifyTaskAssigned     NotificationType = "task_assigned"
	NotifyProjectUpdate    NotificationType = "project_update"
	NotifyDeadlineReminder NotificationType = "deadline_reminder"
	NotifySystem           NotificationType = "system"
)

// Notification is a best-effort notice to a single user, created only as a
// side effect of domain events. Immutable once written; read-state toggling
// belongs to the presentation layer, not this service.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}

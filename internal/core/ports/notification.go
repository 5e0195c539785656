package ports

import (
	"context"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// NotificationInput is the DTO handed from a domain mutation to the
// notification pipeline.
type NotificationInput struct {
	UserID  string
	Title   string
	Message string
	Type    domain.NotificationType
}

// Notifier is the fire-and-forget side of the notification pipeline.
// Notify never blocks the caller and never reports failure; delivery is
// best-effort with no ordering guarantee across calls.
type Notifier interface {
	Notify(input NotificationInput)
}

// NotificationService persists a single notification. Called by the
// dispatcher workers, never directly by a mutation path.
type NotificationService interface {
	Deliver(ctx context.Context, input NotificationInput) error
}

// NotificationRepository defines persistence for notifications. Records
// are immutable once inserted.
type NotificationRepository interface {
	Insert(ctx context.Context, n *domain.Notification) error
}

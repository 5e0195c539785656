package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

type notificationService struct {
	repo ports.NotificationRepository
	log  zerolog.Logger
}

// NewNotificationService returns a NotificationService implementation.
func NewNotificationService(repo ports.NotificationRepository, log zerolog.Logger) ports.NotificationService {
	return &notificationService{repo: repo, log: log}
}

// Deliver persists one notification. Type defaults to "system" when the
// caller left it empty.
func (s *notificationService) Deliver(ctx context.Context, input ports.NotificationInput) error {
	notifType := input.Type
	if notifType == "" {
		notifType = domain.NotifySystem
	}

	n := &domain.Notification{
		UserID:    input.UserID,
		Title:     input.Title,
		Message:   input.Message,
		Type:      notifType,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, n); err != nil {
		return fmt.Errorf("deliver notification: %w", err)
	}

	s.log.Debug().
		Str("user_id", input.UserID).
		Str("type", string(notifType)).
		Msg("notification delivered")
	return nil
}

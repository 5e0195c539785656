package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// DeliveryDedup abstracts the webhook redelivery store (Redis).
type DeliveryDedup interface {
	Seen(ctx context.Context, deliveryID string) (bool, error)
	Mark(ctx context.Context, deliveryID string) error
}

type identityService struct {
	users ports.UserRepository
	dedup DeliveryDedup
	log   zerolog.Logger
}

// NewIdentityService returns an IdentityService implementation.
func NewIdentityService(users ports.UserRepository, dedup DeliveryDedup, log zerolog.Logger) ports.IdentityService {
	return &identityService{users: users, dedup: dedup, log: log}
}

// Resolve maps the provider's subject id to the stored profile.
func (s *identityService) Resolve(ctx context.Context, externalID string) (*domain.UserProfile, error) {
	if externalID == "" {
		return nil, domain.ErrUserNotFound
	}
	return s.users.FindByExternalID(ctx, externalID)
}

// ProcessEvent applies a verified lifecycle event from the identity
// provider. Redelivered events are skipped via the dedup store; a dedup
// store failure is logged and the event is processed anyway.
func (s *identityService) ProcessEvent(ctx context.Context, event ports.WebhookEventInput) error {
	if event.DeliveryID != "" {
		seen, err := s.dedup.Seen(ctx, event.DeliveryID)
		if err != nil {
			s.log.Warn().Err(err).Str("delivery_id", event.DeliveryID).Msg("dedup check failed, processing anyway")
		} else if seen {
			s.log.Debug().Str("delivery_id", event.DeliveryID).Str("type", event.Type).Msg("redelivered event skipped")
			return nil
		}
	}

	var err error
	switch event.Type {
	case ports.EventUserCreated:
		err = s.createProfile(ctx, event.User)
	case ports.EventUserUpdated:
		err = s.updateProfile(ctx, event.User)
	case ports.EventUserDeleted:
		err = s.users.DeleteByExternalID(ctx, event.User.ExternalID)
	default:
		s.log.Debug().Str("type", event.Type).Msg("ignoring unhandled webhook event type")
		return nil
	}
	if err != nil {
		return fmt.Errorf("process %s: %w", event.Type, err)
	}

	if event.DeliveryID != "" {
		if markErr := s.dedup.Mark(ctx, event.DeliveryID); markErr != nil {
			s.log.Warn().Err(markErr).Str("delivery_id", event.DeliveryID).Msg("failed to mark delivery as processed")
		}
	}

	s.log.Info().Str("type", event.Type).Str("external_id", event.User.ExternalID).Msg("identity event processed")
	return nil
}

// createProfile stores a new profile with the default client role. The
// role is promoted later by an admin, never by webhook data.
func (s *identityService) createProfile(ctx context.Context, u ports.WebhookUserData) error {
	now := time.Now().UTC()
	_, err := s.users.Create(ctx, &domain.UserProfile{
		ExternalID: u.ExternalID,
		Email:      u.Email,
		FullName:   fullName(u),
		Role:       domain.RoleClient,
		AvatarURL:  u.AvatarURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	return err
}

func (s *identityService) updateProfile(ctx context.Context, u ports.WebhookUserData) error {
	name := fullName(u)
	return s.users.UpdateByExternalID(ctx, u.ExternalID, ports.ProfilePatch{
		Email:     &u.Email,
		FullName:  &name,
		AvatarURL: &u.AvatarURL,
	})
}

// ListAssignable returns the translator/editor view used by the assignee
// picker.
func (s *identityService) ListAssignable(ctx context.Context) ([]ports.AssignableUser, error) {
	profiles, err := s.users.ListAssignable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignable users: %w", err)
	}

	users := make([]ports.AssignableUser, 0, len(profiles))
	for _, p := range profiles {
		users = append(users, ports.AssignableUser{
			ID:       p.ID,
			FullName: p.FullName,
			Role:     string(p.Role),
		})
	}
	return users, nil
}

func fullName(u ports.WebhookUserData) string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

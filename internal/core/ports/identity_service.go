package ports

import (
	"context"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// Identity lifecycle event types delivered by the provider's webhook.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// WebhookUserData is the user payload of a verified lifecycle event.
type WebhookUserData struct {
	ExternalID string
	Email      string
	FirstName  string
	LastName   string
	AvatarURL  string
}

// WebhookEventInput is a signature-verified lifecycle event. DeliveryID is
// the provider's message id, used to skip redeliveries.
type WebhookEventInput struct {
	DeliveryID string
	Type       string
	User       WebhookUserData
}

// AssignableUser is the restricted user view exposed to the dashboard's
// assignee picker.
type AssignableUser struct {
	ID       string
	FullName string
	Role     string
}

// IdentityService resolves authenticated identities to profiles and
// processes the provider's lifecycle webhook events.
type IdentityService interface {
	// Resolve maps the provider's subject id to the stored profile.
	// Returns domain.ErrUserNotFound for unknown identities.
	Resolve(ctx context.Context, externalID string) (*domain.UserProfile, error)

	// ProcessEvent applies one verified lifecycle event. Redelivered
	// events (same DeliveryID) are skipped.
	ProcessEvent(ctx context.Context, event WebhookEventInput) error

	// ListAssignable returns translator/editor users for assignment.
	ListAssignable(ctx context.Context) ([]AssignableUser, error)
}

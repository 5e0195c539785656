package ports

import (
	"context"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// ProfilePatch carries the provider-owned fields synced on a user.updated
// webhook event. Nil means the field is left untouched; the role is never
// writable through this path.
type ProfilePatch struct {
	Email     *string
	FullName  *string
	AvatarURL *string
}

// UserRepository defines persistence operations for user profiles.
type UserRepository interface {
	Create(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)

	// FindByExternalID resolves the provider's subject id to a profile.
	FindByExternalID(ctx context.Context, externalID string) (*domain.UserProfile, error)

	FindByID(ctx context.Context, id string) (*domain.UserProfile, error)

	// UpdateByExternalID applies a profile patch keyed by the provider id.
	UpdateByExternalID(ctx context.Context, externalID string, patch ProfilePatch) error

	DeleteByExternalID(ctx context.Context, externalID string) error

	// ListAssignable returns translator and editor profiles ordered by
	// full name. This backs the assignee picker; it never includes
	// admins or clients.
	ListAssignable(ctx context.Context) ([]*domain.UserProfile, error)

	// NamesByIDs returns a full-name lookup for the given profile ids.
	// Missing ids are simply absent from the result.
	NamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

package ports

import (
	"context"
	"time"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// ProjectPatch is an explicit partial update: nil fields are left
// untouched, non-nil fields are written. Only title, description, and
// deadline are client-editable; status/progress mutation is reserved.
type ProjectPatch struct {
	Title       *string
	Description *string
	Deadline    *time.Time
}

// Empty reports whether the patch carries no field at all.
func (p ProjectPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Deadline == nil
}

// ListProjectsFilter scopes a project listing.
// MemberID is always set by the service layer for non-admin viewers.
type ListProjectsFilter struct {
	// MemberID: empty = no filter (admin); non-empty = only projects
	// where the id appears in client_id, translator_id, or editor_id.
	MemberID string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)

	// Update applies the patch in a single statement and returns the
	// updated document.
	Update(ctx context.Context, id string, patch ProjectPatch) (*domain.Project, error)

	// List returns projects matching the filter, newest first.
	List(ctx context.Context, filter ListProjectsFilter) ([]*domain.Project, error)

	// IDsForMember returns the ids of all projects whose ownership
	// fields contain userID. Used to scope task listings.
	IDsForMember(ctx context.Context, userID string) ([]string, error)

	// TitlesByIDs returns a title lookup for the given project ids.
	TitlesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

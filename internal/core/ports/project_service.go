package ports

import (
	"context"
	"time"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
)

// CreateProjectInput carries the data needed to create a project. The
// acting client becomes the owner.
type CreateProjectInput struct {
	Title       string
	Description string
	Deadline    time.Time
}

// ProjectSummary is the list-view row, enriched with display names the way
// the dashboard renders them.
type ProjectSummary struct {
	ID                string
	Title             string
	Description       string
	Status            string
	Progress          int
	Deadline          time.Time
	ClientID          string
	ClientName        string
	TranslatorID      string
	TranslatorName    string
	Chapters          int
	CompletedChapters int
	CreatedAt         time.Time
}

// ProjectService defines use-case operations for projects. Every operation
// authorizes the actor before touching storage.
type ProjectService interface {
	Create(ctx context.Context, actor *domain.UserProfile, input CreateProjectInput) (*domain.Project, error)
	Update(ctx context.Context, actor *domain.UserProfile, projectID string, patch ProjectPatch) (*domain.Project, error)
	List(ctx context.Context, actor *domain.UserProfile) ([]ProjectSummary, error)
}

package domain

import "time"

// ProjectStatus represents the lifecycle state of a translation project.
type ProjectStatus string

const (
	ProjectNotStarted ProjectStatus = "not_started"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectReview     ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectNotStarted, ProjectInProgress, ProjectReview, ProjectCompleted:
		return true
	}
	return false
}

// Project is a translation project owned by a client. TranslatorID and
// EditorID are optional staffing assignments; together with ClientID they
// form the ownership fields that scope list visibility.
//
// Status values form an enumerated domain with no enforced transition
// graph: an authorized writer may set any value directly. Progress is by
// convention within [0,100] but is not clamped.
type Project struct {
	ID                string        `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description,omitempty"`
	ClientID          string        `json:"client_id"`
	TranslatorID      string        `json:"translator_id,omitempty"`
	EditorID          string        `json:"editor_id,omitempty"`
	Status            ProjectStatus `json:"status"`
	Progress          int           `json:"progress"`
	Deadline          time.Time     `json:"deadline"`
	Chapters          int           `json:"chapters"`
	CompletedChapters int           `json:"completed_chapters"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

// IsMember reports whether userID appears in any of the project's
// ownership fields.
func (p *Project) IsMember(userID string) bool {
	if userID == "" {
		return false
	}
	return p.ClientID == userID || p.TranslatorID == userID || p.EditorID == userID
}

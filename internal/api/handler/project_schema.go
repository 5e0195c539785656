package handler

import (
	"time"

	"github.com/linguahub/translation-dashboard/internal/core/domain"
	"github.com/linguahub/translation-dashboard/internal/core/ports"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProjectRequest struct {
	Title       string    `json:"title"       validate:"required"`
	Description string    `json:"description"`
	Deadline    time.Time `json:"deadline"    validate:"required"`
}

// updateProjectRequest is an explicit patch: only keys present in the
// request body are written, nil pointers leave the field untouched.
type updateProjectRequest struct {
	ProjectID   string     `json:"project_id" validate:"required"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Deadline    *time.Time `json:"deadline"`
}

// projectEnvelope wraps a single project the way the dashboard consumes it.
type projectEnvelope struct {
	Project *domain.Project `json:"project"`
}

type projectSummaryResponse struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	Description       string    `json:"description,omitempty"`
	Status            string    `json:"status"`
	Progress          int       `json:"progress"`
	Deadline          time.Time `json:"deadline"`
	ClientID          string    `json:"client_id"`
	ClientName        string    `json:"client_name,omitempty"`
	TranslatorID      string    `json:"translator_id,omitempty"`
	TranslatorName    string    `json:"translator_name,omitempty"`
	Chapters          int       `json:"chapters"`
	CompletedChapters int       `json:"completed_chapters"`
	CreatedAt         time.Time `json:"created_at"`
}

type listProjectsResponse struct {
	Projects []projectSummaryResponse `json:"projects"`
}

func toProjectPatch(req updateProjectRequest) ports.ProjectPatch {
	return ports.ProjectPatch{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	}
}

func toListProjectsResponse(items []ports.ProjectSummary) listProjectsResponse {
	out := make([]projectSummaryResponse, len(items))
	for i, p := range items {
		out[i] = projectSummaryResponse{
			ID:                p.ID,
			Title:             p.Title,
			Description:       p.Description,
			Status:            p.Status,
			Progress:          p.Progress,
			Deadline:          p.Deadline,
			ClientID:          p.ClientID,
			ClientName:        p.ClientName,
			TranslatorID:      p.TranslatorID,
			TranslatorName:    p.TranslatorName,
			Chapters:          p.Chapters,
			CompletedChapters: p.CompletedChapters,
			CreatedAt:         p.CreatedAt,
		}
	}
	return listProjectsResponse{Projects: out}
}

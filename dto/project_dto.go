package dto

import (
	"time"

	"github.com/greenstamp/greenstamp/models"
)

// SubmitProjectRequest represents the payload for registering a new project
type SubmitProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// SubmitProjectResponse represents the result of a project submission
type SubmitProjectResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProjectID uint   `json:"project_id,omitempty"`
}

// ProjectResponse is the JSON projection of a project. The background image
// URL is deliberately not part of the API surface.
type ProjectResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	CreatedAt   *string `json:"created_at"`
	CertifiedAt *string `json:"certified_at"`
}

func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// NewProjectResponse maps a project model to its API projection
func NewProjectResponse(p models.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		Status:      string(p.Status),
		CreatedAt:   isoTime(p.CreatedAt),
	}
	if p.CertifiedAt != nil {
		resp.CertifiedAt = isoTime(*p.CertifiedAt)
	}
	return resp
}

// NewProjectResponseList maps a slice of projects to API projections
func NewProjectResponseList(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, NewProjectResponse(p))
	}
	return responses
}

package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/greenstamp/greenstamp/models"
	"github.com/greenstamp/greenstamp/repositories"
	"gorm.io/gorm"
)

// ProjectService handles business logic for project submission and review
type ProjectService struct {
	projects *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService(projects *repositories.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

// Submit validates and stores a new project. The record starts in pending
// status with no certification timestamp.
func (s *ProjectService) Submit(name, location, description string) (models.Project, error) {
	if strings.TrimSpace(name) == "" {
		return models.Project{}, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if strings.TrimSpace(location) == "" {
		return models.Project{}, fmt.Errorf("%w: location is required", ErrValidation)
	}
	if strings.TrimSpace(description) == "" {
		return models.Project{}, fmt.Errorf("%w: description is required", ErrValidation)
	}

	project := models.Project{
		Name:        name,
		Location:    location,
		Description: description,
		Status:      models.StatusPending,
	}

	created, err := s.projects.Create(project)
	if err != nil {
		return models.Project{}, fmt.Errorf("failed to store project: %w", err)
	}
	return created, nil
}

// ListApproved returns all certified projects for the public listing
func (s *ProjectService) ListApproved() ([]models.Project, error) {
	return s.projects.FindByStatus(models.StatusApproved)
}

// ListAll returns every project regardless of status
func (s *ProjectService) ListAll() ([]models.Project, error) {
	return s.projects.FindAll()
}

// ListAllByRecency returns every project, newest submissions first
func (s *ProjectService) ListAllByRecency() ([]models.Project, error) {
	return s.projects.FindAllByRecency()
}

// Get retrieves a single project by ID
func (s *ProjectService) Get(id uint) (models.Project, error) {
	project, err := s.projects.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrNotFound
	}
	return project, err
}

// Approve certifies a project. The certification timestamp is stamped with
// the current time on every call, so re-approving an already approved
// project moves certified_at forward.
func (s *ProjectService) Approve(id uint) (models.Project, error) {
	now := time.Now().UTC()
	project, err := s.projects.UpdateStatus(id, models.StatusApproved, &now)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrNotFound
	}
	return project, err
}

// Reject marks a project as rejected. An existing certification timestamp is
// left in place; only the status changes.
func (s *ProjectService) Reject(id uint) (models.Project, error) {
	project, err := s.projects.UpdateStatus(id, models.StatusRejected, nil)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, ErrNotFound
	}
	return project, err
}

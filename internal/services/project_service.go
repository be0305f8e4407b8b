package services

import (
	"errors"
	"fmt"

	"jun.dev/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested id
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations.
// The catalog is read-only after construction and safe for concurrent use.
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return s.Filter(models.FilterAll)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id int) (models.Project, error) {
	for _, p := range s.projects.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, fmt.Errorf("%w: %d", ErrProjectNotFound, id)
}

// Filter returns the projects visible under f, preserving catalog order.
// The returned slice is freshly allocated on every call.
func (s *ProjectService) Filter(f models.Filter) []models.Project {
	visible := make([]models.Project, 0, len(s.projects.Projects))
	for _, p := range s.projects.Projects {
		if f == models.FilterAll || p.HasCategory(models.Category(f)) {
			visible = append(visible, p)
		}
	}
	return visible
}

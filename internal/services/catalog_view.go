package services

import "jun.dev/internal/models"

// CatalogView holds the one piece of mutable state on the page: the
// selected filter. The visible set is derived from it on every read.
//
// A CatalogView has a single owner (one HTTP request or one terminal
// session) and is not safe for concurrent use.
type CatalogView struct {
	projects *ProjectService
	filter   models.Filter
}

// NewCatalogView creates a view showing the whole catalog
func NewCatalogView(ps *ProjectService) *CatalogView {
	return &CatalogView{projects: ps, filter: models.FilterAll}
}

// SelectFilter replaces the active filter
func (v *CatalogView) SelectFilter(f models.Filter) {
	v.filter = f
}

// ActiveFilter returns the currently selected filter
func (v *CatalogView) ActiveFilter() models.Filter {
	return v.filter
}

// VisibleProjects derives the projects matching the active filter
func (v *CatalogView) VisibleProjects() []models.Project {
	return v.projects.Filter(v.filter)
}

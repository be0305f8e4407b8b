package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jun.dev/internal/models"
	"jun.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ProjectsResponse is the body of GET /api/projects
type ProjectsResponse struct {
	Filter   models.Filter    `json:"filter"`
	Projects []models.Project `json:"projects"`
}

// ListProjects handles GET /api/projects?filter={tag}
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	view := services.NewCatalogView(h.projectService)
	view.SelectFilter(filter)
	respondJSON(w, h.logger, http.StatusOK, ProjectsResponse{
		Filter:   view.ActiveFilter(),
		Projects: view.VisibleProjects(),
	})
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.logger, http.StatusBadRequest, "Invalid project id")
		return
	}

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.logger.Error("get project", zap.Int("id", id), zap.Error(err))
		respondError(w, h.logger, http.StatusInternalServerError, "Internal error")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}

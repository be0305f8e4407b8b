package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jun.dev/internal/models"
	"jun.dev/internal/services"
	"jun.dev/internal/views"
)

// htmxRequestHeader is set by htmx on requests it issues
const htmxRequestHeader = "HX-Request"

// PageHandler serves the portfolio page
type PageHandler struct {
	projectService *services.ProjectService
	site           models.Site
	logger         *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, site *models.Site, logger *zap.Logger) *PageHandler {
	h := &PageHandler{projectService: ps, logger: logger}
	if site != nil {
		h.site = *site
	}
	return h
}

// Home handles GET / - the page with every project visible
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	h.renderCatalog(w, r, models.FilterAll)
}

// Filtered handles GET /filter/{tag}
func (h *PageHandler) Filtered(w http.ResponseWriter, r *http.Request) {
	filter, err := models.ParseFilter(chi.URLParam(r, "tag"))
	if err != nil {
		renderError(w, r, h.logger, http.StatusNotFound, "There is no project category with that name.")
		return
	}
	h.renderCatalog(w, r, filter)
}

// renderCatalog renders the catalog fragment for htmx requests and the full
// page otherwise
func (h *PageHandler) renderCatalog(w http.ResponseWriter, r *http.Request, filter models.Filter) {
	view := services.NewCatalogView(h.projectService)
	view.SelectFilter(filter)
	data := views.CatalogData{
		Active:   view.ActiveFilter(),
		Projects: view.VisibleProjects(),
	}

	w.Header().Add("Vary", htmxRequestHeader)
	if isHTMXRequest(r) {
		renderComponent(w, r, h.logger, views.Catalog(data))
		return
	}
	renderComponent(w, r, h.logger, views.Page(h.site, data))
}

// isHTMXRequest reports whether the request was initiated by htmx
func isHTMXRequest(r *http.Request) bool {
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

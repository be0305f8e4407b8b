package handlers

import (
	"encoding/json"
	"io/fs"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"jun.dev/internal/config"
	"jun.dev/internal/content"
	"jun.dev/internal/middleware"
	"jun.dev/internal/services"
	"jun.dev/internal/views"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))

	// Initialize services
	projectService := services.NewProjectService(cfg.Projects)

	// Initialize handlers
	pageHandler := NewPageHandler(projectService, cfg.Site, logger)
	projectHandler := NewProjectHandler(projectService, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Project endpoints
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	staticFS, err := fs.Sub(content.FS, content.StaticDir)
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/filter/{tag}", pageHandler.Filtered)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		renderError(w, r, logger, http.StatusNotFound, "There is nothing at "+r.URL.Path+".")
	})

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("encode json response", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}

// renderError writes the HTML error page
func renderError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, message string) {
	renderComponent(w, r, logger, views.ErrorPage(status, message), templ.WithStatus(status))
}

// renderComponent streams c as the response body
func renderComponent(w http.ResponseWriter, r *http.Request, logger *zap.Logger, c templ.Component, opts ...func(*templ.ComponentHandler)) {
	opts = append(opts, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		logger.Error("render component", zap.String("path", r.URL.Path), zap.Error(err))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		})
	}))
	templ.Handler(c, opts...).ServeHTTP(w, r)
}

// Package site writes the portfolio as a static site that any file host can
// serve with the same URLs as the server.
package site

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/a-h/templ"
	"go.uber.org/zap"

	"jun.dev/internal/content"
	"jun.dev/internal/models"
	"jun.dev/internal/services"
	"jun.dev/internal/views"
)

// Exporter renders pages and API documents into a directory
type Exporter struct {
	projects *services.ProjectService
	site     models.Site
	logger   *zap.Logger
}

// NewExporter creates a new Exporter
func NewExporter(ps *services.ProjectService, site models.Site, logger *zap.Logger) *Exporter {
	return &Exporter{projects: ps, site: site, logger: logger}
}

// projectsDocument mirrors the body of GET /api/projects
type projectsDocument struct {
	Filter   models.Filter    `json:"filter"`
	Projects []models.Project `json:"projects"`
}

// Export writes index.html, filter/{tag}/index.html, api/projects.json,
// api/projects/{id}.json and static/ under dir
func (e *Exporter) Export(ctx context.Context, dir string) error {
	view := services.NewCatalogView(e.projects)

	for _, f := range models.Filters() {
		if err := ctx.Err(); err != nil {
			return err
		}
		view.SelectFilter(f)
		page := views.Page(e.site, views.CatalogData{
			Active:   view.ActiveFilter(),
			Projects: view.VisibleProjects(),
		})

		path := filepath.Join(dir, filepath.FromSlash(f.Path()), "index.html")
		if err := writeComponent(ctx, path, page); err != nil {
			return err
		}
		e.logger.Debug("wrote page", zap.String("filter", string(f)), zap.String("path", path))
	}

	view.SelectFilter(models.FilterAll)
	all := view.VisibleProjects()
	if err := writeJSON(filepath.Join(dir, "api", "projects.json"), projectsDocument{
		Filter:   models.FilterAll,
		Projects: all,
	}); err != nil {
		return err
	}
	for _, p := range all {
		path := filepath.Join(dir, "api", "projects", strconv.Itoa(p.ID)+".json")
		if err := writeJSON(path, p); err != nil {
			return err
		}
	}

	if err := copyStatic(filepath.Join(dir, content.StaticDir)); err != nil {
		return err
	}

	e.logger.Info("exported site", zap.String("dir", dir), zap.Int("projects", len(all)))
	return nil
}

// writeComponent renders c into a new file at path
func writeComponent(ctx context.Context, path string, c templ.Component) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := c.Render(ctx, f); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

// writeJSON writes v as indented JSON at path
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// copyStatic copies the embedded static assets into dst
func copyStatic(dst string) error {
	staticFS, err := fs.Sub(content.FS, content.StaticDir)
	if err != nil {
		return err
	}
	return fs.WalkDir(staticFS, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(staticFS, name)
		if err != nil {
			return fmt.Errorf("read static %s: %w", name, err)
		}
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", target, err)
		}
		return nil
	})
}

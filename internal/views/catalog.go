package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"jun.dev/internal/models"
)

// CatalogID is the element id of the catalog fragment swapped by htmx
const CatalogID = "catalog"

// CatalogData is the state the catalog fragment renders
type CatalogData struct {
	Active   models.Filter
	Projects []models.Project
}

// Catalog renders the filter bar and the grid of visible projects
func Catalog(data CatalogData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("div", "id", CatalogID)
		hw.render(FilterBar(data.Active))
		hw.open("div", "class", "grid")
		for _, p := range data.Projects {
			hw.render(ProjectCard(p))
		}
		hw.close("div")
		hw.close("div")
		return hw.err
	})
}

// FilterBar renders one control per filter. Each control is a plain link to
// the filtered page; with htmx loaded it swaps only the catalog in place.
func FilterBar(active models.Filter) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("nav", "class", "filters", "aria-label", "Project categories")
		for _, f := range models.Filters() {
			path := f.Path()
			hw.raw("<a")
			hw.url("href", path)
			hw.attr("hx-get", path)
			hw.attr("hx-target", "#"+CatalogID)
			hw.attr("hx-select", "#"+CatalogID)
			hw.attr("hx-swap", "outerHTML")
			hw.attr("data-filter", string(f))
			if f == active {
				hw.attr("aria-current", "true")
			}
			hw.raw(">")
			hw.text(f.Label())
			hw.close("a")
		}
		hw.close("nav")
		return hw.err
	})
}

// ProjectCard renders one project. Only present links get an action, and a
// missing image leaves an empty placeholder of the same size.
func ProjectCard(p models.Project) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("article", "class", "card", "data-project-id", strconv.Itoa(p.ID))

		if p.HasImage() {
			hw.open("div", "class", "media")
			hw.raw("<img")
			hw.url("src", p.Image)
			hw.attr("alt", p.Title)
			hw.raw(">")
		} else {
			hw.open("div", "class", "media placeholder")
		}
		hw.open("div", "class", "actions")
		for _, link := range p.ActionLinks() {
			class := "button secondary"
			if link.Kind.Primary() {
				class = "button"
			}
			hw.raw("<a")
			hw.url("href", link.URL)
			hw.attr("class", class)
			hw.attr("data-link", string(link.Kind))
			hw.raw(">")
			hw.text(link.Kind.Label())
			hw.close("a")
		}
		hw.close("div")
		hw.close("div")

		hw.open("div", "class", "body")
		hw.open("ul", "class", "tech")
		for _, tech := range p.Technologies {
			hw.element("li", tech)
		}
		hw.close("ul")
		hw.element("h3", p.Title)
		hw.element("p", p.Description, "class", "description")
		hw.element("p", "Role: "+p.Role, "class", "role")
		hw.close("div")

		hw.close("article")
		return hw.err
	})
}

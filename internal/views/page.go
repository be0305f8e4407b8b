// Package views renders the portfolio page as templ components.
package views

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"jun.dev/internal/models"
)

const (
	stylesheetPath = "/static/site.css"
	htmxScriptURL  = "https://unpkg.com/htmx.org@2.0.4"
)

// Page renders the full document: nav, hero, about, projects and contact
func Page(site models.Site, data CatalogData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.render(documentHead(site.Title))
		hw.raw("<body>")
		hw.render(navbar())
		hw.raw("<main>")
		hw.render(Hero(site.Profile))
		hw.render(About(site.Profile))
		hw.render(ProjectsSection(site.Profile, data))
		hw.render(ContactSection(site.Contact))
		hw.raw("</main></body></html>")
		return hw.err
	})
}

func documentHead(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.element("title", title)
		hw.raw(`<link rel="stylesheet"`)
		hw.url("href", stylesheetPath)
		hw.raw(`><script defer`)
		hw.attr("src", htmxScriptURL)
		hw.raw(`></script></head>`)
		return hw.err
	})
}

func navbar() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.raw(`<nav class="nav"><ul>`)
		for _, item := range []struct{ anchor, label string }{
			{"#home", "Home"},
			{"#about", "About"},
			{"#projects", "Projects"},
			{"#contact", "Contact"},
		} {
			hw.raw("<li><a")
			hw.url("href", item.anchor)
			hw.raw(">")
			hw.text(item.label)
			hw.raw("</a></li>")
		}
		hw.raw(`</ul></nav>`)
		return hw.err
	})
}

// Hero renders the greeting and call to action
func Hero(p models.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("section", "id", "home", "class", "hero")
		hw.open("div", "class", "container")
		hw.raw("<h1>")
		hw.text("Hi, I'm ")
		hw.element("span", p.Name)
		hw.raw("</h1>")
		hw.element("p", p.Tagline)
		hw.raw(`<a class="button large"`)
		hw.url("href", "#projects")
		hw.raw(">")
		hw.text(p.CallToAction)
		hw.raw("</a></div></section>")
		return hw.err
	})
}

// About renders the about paragraphs
func About(p models.Profile) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("section", "id", "about", "class", "about alt")
		hw.open("div", "class", "container")
		hw.element("h2", "About Me")
		for _, para := range p.About {
			hw.element("p", para)
		}
		hw.raw("</div></section>")
		return hw.err
	})
}

// ProjectsSection renders the projects heading, intro and catalog
func ProjectsSection(p models.Profile, data CatalogData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("section", "id", "projects")
		hw.open("div", "class", "container")
		hw.element("h2", "My Projects")
		if p.ProjectsIntro != "" {
			hw.element("p", p.ProjectsIntro, "class", "intro")
		}
		hw.render(Catalog(data))
		hw.raw("</div></section>")
		return hw.err
	})
}

// ContactSection renders the contact form. The form has no action and its
// button does not submit; message delivery is not part of the site.
func ContactSection(form models.ContactForm) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		hw.open("section", "id", "contact", "class", "contact alt")
		hw.open("div", "class", "container")
		hw.element("h2", form.Heading)
		hw.raw("<form>")
		for _, f := range form.Fields {
			hw.raw("<div>")
			hw.element("label", f.Label, "for", f.ID)
			if f.Multiline() {
				rows := f.Rows
				if rows <= 0 {
					rows = 4
				}
				hw.open("textarea", "id", f.ID, "name", f.ID, "rows", strconv.Itoa(rows))
				hw.close("textarea")
			} else {
				hw.open("input", "type", f.Type, "id", f.ID, "name", f.ID)
			}
			hw.raw("</div>")
		}
		hw.element("button", form.SubmitLabel, "type", "button", "class", "button")
		hw.raw("</form></div></section>")
		return hw.err
	})
}

// ErrorPage renders a minimal standalone page for failed requests
func ErrorPage(status int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := newHTMLWriter(ctx, w)
		heading := http.StatusText(status)
		hw.render(documentHead(heading))
		hw.raw(`<body><main><section><div class="container">`)
		hw.element("h2", heading)
		hw.element("p", message, "class", "intro")
		hw.raw(`<p class="intro"><a class="button"`)
		hw.url("href", "/")
		hw.raw(">Back to the portfolio</a></p></div></section></main></body></html>")
		return hw.err
	})
}

package views

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jun.dev/internal/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	return b.String()
}

func TestProjectCardRendersOnlyPresentLinks(t *testing.T) {
	got := render(t, ProjectCard(models.Project{
		ID:         7,
		Title:      "Demo Only",
		Categories: []models.Category{models.CategoryWeb},
		Links:      map[models.LinkKind]string{models.LinkDemo: "https://x"},
	}))

	assert.Equal(t, 1, strings.Count(got, "data-link="))
	assert.Contains(t, got, `<a href="https://x" class="button" data-link="demo">Live Demo</a>`)
	assert.NotContains(t, got, "GitHub")
	assert.NotContains(t, got, "Case Study")
	assert.NotContains(t, got, "Prototype")
}

func TestProjectCardWithoutImageRendersPlaceholder(t *testing.T) {
	got := render(t, ProjectCard(models.Project{ID: 1, Title: "No Image"}))

	assert.Contains(t, got, `class="media placeholder"`)
	assert.NotContains(t, got, "<img")
}

func TestProjectCardWithImage(t *testing.T) {
	got := render(t, ProjectCard(models.Project{ID: 1, Title: "Shot", Image: "/img/shot.png"}))

	assert.Contains(t, got, `<img src="/img/shot.png" alt="Shot">`)
	assert.NotContains(t, got, "placeholder")
}

func TestProjectCardMetadata(t *testing.T) {
	got := render(t, ProjectCard(models.Project{
		ID:           3,
		Title:        "Task <App>",
		Description:  "Real-time & collaborative",
		Role:         "Frontend Developer",
		Technologies: []string{"Next.js", "TypeScript"},
	}))

	assert.Contains(t, got, `data-project-id="3"`)
	assert.Contains(t, got, "<h3>Task &lt;App&gt;</h3>")
	assert.Contains(t, got, "Real-time &amp; collaborative")
	assert.Contains(t, got, "Role: Frontend Developer")
	assert.Contains(t, got, `<ul class="tech"><li>Next.js</li><li>TypeScript</li></ul>`)
}

func TestProjectCardSanitizesUnsafeURLs(t *testing.T) {
	got := render(t, ProjectCard(models.Project{
		ID:    1,
		Title: "Bad",
		Links: map[models.LinkKind]string{models.LinkGitHub: "javascript:alert(1)"},
	}))

	assert.NotContains(t, got, "javascript:")
	assert.Contains(t, got, `data-link="github"`)
}

func TestFilterBarMarksActiveFilter(t *testing.T) {
	got := render(t, FilterBar(models.Filter(models.CategoryUIUX)))

	assert.Equal(t, 3, strings.Count(got, "data-filter="))
	assert.Equal(t, 1, strings.Count(got, `aria-current="true"`))
	assert.Contains(t, got, `data-filter="uiux" aria-current="true">UI/UX Design</a>`)
	assert.Contains(t, got, `href="/filter/web" hx-get="/filter/web"`)
	assert.Contains(t, got, `href="/" hx-get="/"`)
}

func TestCatalogRendersCardsInOrder(t *testing.T) {
	got := render(t, Catalog(CatalogData{
		Active: models.FilterAll,
		Projects: []models.Project{
			{ID: 1, Title: "First"},
			{ID: 3, Title: "Third"},
		},
	}))

	require.True(t, strings.HasPrefix(got, `<div id="catalog">`))
	first := strings.Index(got, `data-project-id="1"`)
	third := strings.Index(got, `data-project-id="3"`)
	assert.True(t, first >= 0 && third > first)
	assert.Equal(t, 2, strings.Count(got, "<article"))
}

func TestPageContainsAllSections(t *testing.T) {
	site := models.Site{
		Title: "Jun | Portfolio",
		Profile: models.Profile{
			Name:         "Jun",
			Tagline:      "Full Stack Web Developer",
			CallToAction: "View My Work",
			About:        []string{"First paragraph.", "Second paragraph."},
		},
		Contact: models.ContactForm{
			Heading:     "Get In Touch",
			SubmitLabel: "Send Message",
			Fields: []models.FormField{
				{ID: "name", Label: "Name", Type: "text"},
				{ID: "email", Label: "Email", Type: "email"},
				{ID: "message", Label: "Message", Type: "textarea"},
			},
		},
	}

	got := render(t, Page(site, CatalogData{Active: models.FilterAll}))

	assert.True(t, strings.HasPrefix(got, "<!DOCTYPE html>"))
	assert.Contains(t, got, "<title>Jun | Portfolio</title>")
	for _, id := range []string{"home", "about", "projects", "contact", CatalogID} {
		assert.Contains(t, got, `id="`+id+`"`)
	}
	assert.Contains(t, got, "<span>Jun</span>")
	assert.Contains(t, got, "<p>Second paragraph.</p>")
	assert.Contains(t, got, `<textarea id="message" name="message" rows="4"></textarea>`)
	assert.Contains(t, got, `<input type="email" id="email" name="email">`)
	assert.Contains(t, got, `<button type="button" class="button">Send Message</button>`)
	assert.NotContains(t, got, "action=")
}

func TestErrorPage(t *testing.T) {
	got := render(t, ErrorPage(http.StatusNotFound, `no filter "x"`))

	assert.Contains(t, got, "<h2>Not Found</h2>")
	assert.Contains(t, got, "no filter &#34;x&#34;")
}

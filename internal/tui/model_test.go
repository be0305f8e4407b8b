package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jun.dev/internal/models"
	"jun.dev/internal/services"
)

func testModel(t *testing.T) Model {
	t.Helper()
	catalog := &models.ProjectList{Projects: []models.Project{
		{ID: 1, Title: "Shop", Categories: []models.Category{models.CategoryWeb}, Role: "Dev",
			Technologies: []string{"React"}, Links: map[models.LinkKind]string{models.LinkDemo: "https://shop"}},
		{ID: 2, Title: "Finance", Categories: []models.Category{models.CategoryUIUX}, Role: "Designer",
			Image: "https://img/finance.png"},
		{ID: 3, Title: "Tasks", Categories: []models.Category{models.CategoryWeb, models.CategoryUIUX}, Role: "Dev"},
	}}
	site := models.Site{Profile: models.Profile{
		Name:    "Jun",
		Tagline: "Full Stack Web Developer",
		About:   []string{"Builds things."},
	}}

	m, err := New(services.NewProjectService(catalog), site, "notty")
	require.NoError(t, err)
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewStartsAtAll(t *testing.T) {
	m := testModel(t)

	assert.Equal(t, models.FilterAll, m.ActiveFilter())
	view := m.View()
	for _, title := range []string{"Shop", "Finance", "Tasks"} {
		assert.Contains(t, view, title)
	}
	assert.Contains(t, view, "Builds things.")
}

func TestTabCyclesFiltersAndWraps(t *testing.T) {
	m := testModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Filter(models.CategoryWeb), m.ActiveFilter())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.Filter(models.CategoryUIUX), m.ActiveFilter())
	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, models.FilterAll, m.ActiveFilter())

	m = press(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, models.Filter(models.CategoryUIUX), m.ActiveFilter())
}

func TestNumberKeysPickFilter(t *testing.T) {
	m := testModel(t)

	m = press(t, m, runes("2"))
	assert.Equal(t, models.Filter(models.CategoryWeb), m.ActiveFilter())
	view := m.View()
	assert.Contains(t, view, "Shop")
	assert.Contains(t, view, "Tasks")
	assert.NotContains(t, view, "Finance")

	m = press(t, m, runes("1"))
	assert.Equal(t, models.FilterAll, m.ActiveFilter())
}

func TestCursorClampsAndResetsOnFilterChange(t *testing.T) {
	m := testModel(t)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.Cursor())

	for range 5 {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.Cursor())

	m = press(t, m, runes("3"))
	assert.Equal(t, 0, m.Cursor())
}

func TestCardShowsOnlyPresentLinksAndPlaceholder(t *testing.T) {
	m := testModel(t)
	view := m.View()

	assert.Equal(t, 1, strings.Count(view, "Live Demo:"))
	assert.NotContains(t, view, "GitHub:")
	assert.Contains(t, view, "Image: https://img/finance.png")
	assert.Equal(t, 2, strings.Count(view, "[no image]"))
}

func TestQuitReturnsQuitCmd(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestWindowResize(t *testing.T) {
	m := testModel(t)

	updated, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, updated.(Model).width)
}

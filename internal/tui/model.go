// Package tui is a terminal browser for the project catalog.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"jun.dev/internal/models"
	"jun.dev/internal/services"
)

var (
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	taglineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	tabStyle      = lipgloss.NewStyle().Padding(0, 1)
	activeTab     = tabStyle.Background(lipgloss.Color("33")).Foreground(lipgloss.Color("15"))
	cardStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	selectedCard  = cardStyle.BorderForeground(lipgloss.Color("33"))
	chipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	linkStyle     = lipgloss.NewStyle().Underline(true)
)

const (
	defaultWidth = 80
	cardMargin   = 4
)

// Model is the bubbletea model. It owns one CatalogView; every key that
// changes the filter is followed by a fresh VisibleProjects derivation.
type Model struct {
	view   *services.CatalogView
	site   models.Site
	about  string
	cursor int
	width  int
	keys   keyMap
	help   help.Model
}

// New creates the model. style names the glamour style used for the about
// blurb ("dark", "light", "notty", ...).
func New(ps *services.ProjectService, site models.Site, style string) (Model, error) {
	about, err := glamour.Render(strings.Join(site.Profile.About, "\n\n"), style)
	if err != nil {
		return Model{}, fmt.Errorf("render about: %w", err)
	}
	return Model{
		view:  services.NewCatalogView(ps),
		site:  site,
		about: strings.TrimRight(about, "\n"),
		width: defaultWidth,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}, nil
}

// ActiveFilter returns the selected filter
func (m Model) ActiveFilter() models.Filter {
	return m.view.ActiveFilter()
}

// Cursor returns the index of the highlighted project
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.selectFilter(m.shiftFilter(1))
		case key.Matches(msg, m.keys.Prev):
			m.selectFilter(m.shiftFilter(-1))
		case key.Matches(msg, m.keys.Pick):
			filters := models.Filters()
			idx := int(msg.String()[0] - '1')
			if idx >= 0 && idx < len(filters) {
				m.selectFilter(filters[idx])
			}
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.view.VisibleProjects())-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m *Model) selectFilter(f models.Filter) {
	m.view.SelectFilter(f)
	m.cursor = 0
}

// shiftFilter returns the filter delta positions away from the active one,
// wrapping around
func (m Model) shiftFilter(delta int) models.Filter {
	filters := models.Filters()
	idx := 0
	for i, f := range filters {
		if f == m.view.ActiveFilter() {
			idx = i
			break
		}
	}
	n := len(filters)
	return filters[((idx+delta)%n+n)%n]
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(nameStyle.Render("Hi, I'm "+m.site.Profile.Name) + "\n")
	b.WriteString(taglineStyle.Render(m.site.Profile.Tagline) + "\n")
	if m.about != "" {
		b.WriteString(m.about + "\n")
	}
	b.WriteString("\n")

	var tabs []string
	for i, f := range models.Filters() {
		label := fmt.Sprintf("%d %s", i+1, f.Label())
		if f == m.view.ActiveFilter() {
			tabs = append(tabs, activeTab.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	visible := m.view.VisibleProjects()
	if len(visible) == 0 {
		b.WriteString(mutedStyle.Render("No projects in this category.") + "\n")
	}
	for i, p := range visible {
		b.WriteString(m.renderCard(p, i == m.cursor) + "\n")
	}

	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

func (m Model) renderCard(p models.Project, selected bool) string {
	var lines []string

	chips := make([]string, 0, len(p.Technologies))
	for _, tech := range p.Technologies {
		chips = append(chips, chipStyle.Render("["+tech+"]"))
	}
	lines = append(lines, strings.Join(chips, " "))
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render(p.Title))
	lines = append(lines, p.Description)
	lines = append(lines, mutedStyle.Render("Role: "+p.Role))

	if p.HasImage() {
		lines = append(lines, mutedStyle.Render("Image: "+p.Image))
	} else {
		lines = append(lines, mutedStyle.Render("[no image]"))
	}
	for _, link := range p.ActionLinks() {
		lines = append(lines, link.Kind.Label()+": "+linkStyle.Render(link.URL))
	}

	style := cardStyle
	if selected {
		style = selectedCard
	}
	width := m.width - cardMargin
	if width < 20 {
		width = 20
	}
	return style.Width(width).Render(strings.Join(lines, "\n"))
}

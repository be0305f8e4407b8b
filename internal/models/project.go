package models

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrUnknownFilter is returned when a filter tag is outside the closed set
var ErrUnknownFilter = errors.New("unknown filter")

// ErrUnknownCategory is returned when a category tag is outside the closed set
var ErrUnknownCategory = errors.New("unknown category")

// Category is a project category tag
type Category string

const (
	CategoryWeb  Category = "web"
	CategoryUIUX Category = "uiux"
)

// Categories returns every category in display order
func Categories() []Category {
	return []Category{CategoryWeb, CategoryUIUX}
}

// Label returns the human-readable name of the category
func (c Category) Label() string {
	switch c {
	case CategoryWeb:
		return "Web Development"
	case CategoryUIUX:
		return "UI/UX Design"
	}
	return string(c)
}

// Valid reports whether c belongs to the closed set of categories
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// Filter selects which part of the catalog is visible: FilterAll or one category
type Filter string

// FilterAll shows every project
const FilterAll Filter = "all"

// Filters returns the filter controls in display order
func Filters() []Filter {
	filters := []Filter{FilterAll}
	for _, c := range Categories() {
		filters = append(filters, Filter(c))
	}
	return filters
}

// ParseFilter converts a raw tag into a Filter. The empty string means FilterAll.
func ParseFilter(raw string) (Filter, error) {
	tag := strings.TrimSpace(raw)
	if tag == "" || Filter(tag) == FilterAll {
		return FilterAll, nil
	}
	if !Category(tag).Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFilter, raw)
	}
	return Filter(tag), nil
}

// Label returns the text shown on the filter control
func (f Filter) Label() string {
	if f == FilterAll {
		return "All"
	}
	return Category(f).Label()
}

// Path returns the page URL that renders the catalog with this filter applied
func (f Filter) Path() string {
	if f == FilterAll || f == "" {
		return "/"
	}
	return "/filter/" + string(f)
}

// LinkKind is the type of an action link on a project card
type LinkKind string

const (
	LinkDemo      LinkKind = "demo"
	LinkGitHub    LinkKind = "github"
	LinkCaseStudy LinkKind = "caseStudy"
	LinkPrototype LinkKind = "prototype"
)

// LinkKinds returns every link kind in the order actions are rendered
func LinkKinds() []LinkKind {
	return []LinkKind{LinkDemo, LinkGitHub, LinkCaseStudy, LinkPrototype}
}

// Label returns the text shown on the action control
func (k LinkKind) Label() string {
	switch k {
	case LinkDemo:
		return "Live Demo"
	case LinkGitHub:
		return "GitHub"
	case LinkCaseStudy:
		return "Case Study"
	case LinkPrototype:
		return "Prototype"
	}
	return string(k)
}

// Primary reports whether the action uses the accent button style
func (k LinkKind) Primary() bool {
	return k == LinkDemo || k == LinkCaseStudy
}

// Valid reports whether k belongs to the closed set of link kinds
func (k LinkKind) Valid() bool {
	return slices.Contains(LinkKinds(), k)
}

// ActionLink is a present link on a project card
type ActionLink struct {
	Kind LinkKind `json:"kind"`
	URL  string   `json:"url"`
}

// Project represents a portfolio project
type Project struct {
	ID           int                 `json:"id" yaml:"id"`
	Title        string              `json:"title" yaml:"title"`
	Description  string              `json:"description" yaml:"description"`
	Categories   []Category          `json:"categories" yaml:"categories"`
	Role         string              `json:"role" yaml:"role"`
	Technologies []string            `json:"technologies" yaml:"technologies"`
	Links        map[LinkKind]string `json:"links,omitempty" yaml:"links"`
	Image        string              `json:"image,omitempty" yaml:"image"`
}

// HasCategory reports whether the project is tagged with c
func (p Project) HasCategory(c Category) bool {
	return slices.Contains(p.Categories, c)
}

// HasImage reports whether the project has a cover image
func (p Project) HasImage() bool {
	return strings.TrimSpace(p.Image) != ""
}

// ActionLinks returns the present links in render order.
// Kinds without a URL are skipped entirely.
func (p Project) ActionLinks() []ActionLink {
	var links []ActionLink
	for _, kind := range LinkKinds() {
		url := strings.TrimSpace(p.Links[kind])
		if url == "" {
			continue
		}
		links = append(links, ActionLink{Kind: kind, URL: url})
	}
	return links
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" yaml:"projects"`
}

// Validate checks the catalog fixture for structural problems
func (l *ProjectList) Validate() error {
	seen := make(map[int]bool, len(l.Projects))
	for i, p := range l.Projects {
		if seen[p.ID] {
			return fmt.Errorf("project %d: duplicate id", p.ID)
		}
		seen[p.ID] = true

		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project at index %d: title is required", i)
		}
		if len(p.Categories) == 0 {
			return fmt.Errorf("project %d: at least one category is required", p.ID)
		}
		for _, c := range p.Categories {
			if !c.Valid() {
				return fmt.Errorf("project %d: %w: %q", p.ID, ErrUnknownCategory, c)
			}
		}
		for kind := range p.Links {
			if !kind.Valid() {
				return fmt.Errorf("project %d: unknown link kind %q", p.ID, kind)
			}
		}
	}
	return nil
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		raw  string
		want Filter
	}{
		{"", FilterAll},
		{"all", FilterAll},
		{"web", Filter(CategoryWeb)},
		{" uiux ", Filter(CategoryUIUX)},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}

func TestParseFilterUnknown(t *testing.T) {
	_, err := ParseFilter("mobile")
	assert.ErrorIs(t, err, ErrUnknownFilter)

	_, err = ParseFilter("WEB")
	assert.ErrorIs(t, err, ErrUnknownFilter)
}

func TestFiltersOrder(t *testing.T) {
	assert.Equal(t, []Filter{FilterAll, "web", "uiux"}, Filters())
}

func TestFilterLabelsAndPaths(t *testing.T) {
	assert.Equal(t, "All", FilterAll.Label())
	assert.Equal(t, "Web Development", Filter(CategoryWeb).Label())
	assert.Equal(t, "UI/UX Design", Filter(CategoryUIUX).Label())

	assert.Equal(t, "/", FilterAll.Path())
	assert.Equal(t, "/filter/uiux", Filter(CategoryUIUX).Path())
}

func TestActionLinksSkipsAbsentKindsInFixedOrder(t *testing.T) {
	p := Project{Links: map[LinkKind]string{
		LinkPrototype: "https://proto",
		LinkDemo:      "https://demo",
		LinkGitHub:    "  ",
	}}

	assert.Equal(t, []ActionLink{
		{Kind: LinkDemo, URL: "https://demo"},
		{Kind: LinkPrototype, URL: "https://proto"},
	}, p.ActionLinks())
}

func TestActionLinksOnlyDemo(t *testing.T) {
	p := Project{Links: map[LinkKind]string{LinkDemo: "https://x"}}

	links := p.ActionLinks()
	require.Len(t, links, 1)
	assert.Equal(t, "Live Demo", links[0].Kind.Label())
}

func TestHasCategoryAndImage(t *testing.T) {
	p := Project{Categories: []Category{CategoryWeb}}
	assert.True(t, p.HasCategory(CategoryWeb))
	assert.False(t, p.HasCategory(CategoryUIUX))
	assert.False(t, p.HasImage())

	p.Image = "/img/cover.png"
	assert.True(t, p.HasImage())
}

func TestValidate(t *testing.T) {
	valid := func() ProjectList {
		return ProjectList{Projects: []Project{
			{ID: 1, Title: "A", Categories: []Category{CategoryWeb}},
			{ID: 2, Title: "B", Categories: []Category{CategoryWeb, CategoryUIUX}, Links: map[LinkKind]string{LinkDemo: "#"}},
		}}
	}

	l := valid()
	require.NoError(t, l.Validate())

	l = valid()
	l.Projects[1].ID = 1
	assert.ErrorContains(t, l.Validate(), "duplicate id")

	l = valid()
	l.Projects[0].Title = " "
	assert.ErrorContains(t, l.Validate(), "title is required")

	l = valid()
	l.Projects[0].Categories = nil
	assert.ErrorContains(t, l.Validate(), "at least one category")

	l = valid()
	l.Projects[0].Categories = []Category{"mobile"}
	assert.ErrorIs(t, l.Validate(), ErrUnknownCategory)

	l = valid()
	l.Projects[1].Links = map[LinkKind]string{"blog": "#"}
	assert.ErrorContains(t, l.Validate(), "unknown link kind")
}

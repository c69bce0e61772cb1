package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/route"
)

func TestCreatePageURL(t *testing.T) {
	tests := []struct {
		page route.Page
		want string
	}{
		{route.Home, "/"},
		{route.Discover, "/discover"},
		{route.AthleteDashboard, "/athlete-dashboard"},
		{route.AthleteSignup, "/athlete-signup"},
		{route.Page("HowItWorks"), "/how-it-works"},
		{route.Page("404"), route.NotFoundPath},
		{route.Page("!!"), route.NotFoundPath},
		{route.Page(""), route.NotFoundPath},
		{route.Page("Go"), route.NotFoundPath},
	}

	for _, tt := range tests {
		t.Run("page "+string(tt.page), func(t *testing.T) {
			assert.Equal(t, tt.want, route.CreatePageURL(tt.page))
		})
	}
}

func TestPageSlugsAreValid(t *testing.T) {
	for _, p := range route.Pages() {
		if p == route.Home {
			continue
		}
		slug := route.CreatePageURL(p)[1:]
		assert.NoError(t, domain.ValidateSlug(slug), "page %s", p)
	}
}

func TestCreatePageURL_OnlyHomeIsRoot(t *testing.T) {
	for _, p := range []route.Page{"404", "___", "Discover", "x"} {
		assert.NotEqual(t, "/", route.CreatePageURL(p), "page %q", p)
	}
}

func TestNavEntries(t *testing.T) {
	entries := route.NavEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, route.NavEntry{Label: "Home", Page: route.Home}, entries[0])
	assert.Equal(t, route.NavEntry{Label: "Discover", Page: route.Discover}, entries[1])

	// Callers cannot mutate the shared list.
	entries[0].Label = "Changed"
	assert.Equal(t, "Home", route.NavEntries()[0].Label)
}

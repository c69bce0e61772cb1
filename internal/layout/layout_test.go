package layout_test

import (
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/layout"
	"github.com/gospors/gospors/internal/route"
)

func render(t *testing.T, p layout.Props) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, layout.Page(p).Render(&b))
	return b.String()
}

func props(path string, v layout.Viewer, menu layout.MenuState, active route.Page) layout.Props {
	u, _ := url.Parse(path)
	return layout.Props{
		Title:      "Test",
		Active:     active,
		Viewer:     v,
		Menu:       menu,
		CurrentURL: u,
		Year:       2026,
		Content:    html.P(g.Text("page body")),
	}
}

// mobileSection returns the markup of the open mobile menu.
func mobileSection(t *testing.T, out string) string {
	t.Helper()
	i := strings.Index(out, `id="mobile-menu"`)
	require.NotEqual(t, -1, i, "mobile menu not rendered")
	j := strings.Index(out[i:], "<main>")
	require.NotEqual(t, -1, j)
	return out[i : i+j]
}

var hrefRe = regexp.MustCompile(`href="([^"]*)"`)

func TestPage_Anonymous(t *testing.T) {
	out := render(t, props("/discover", layout.Anonymous{}, layout.MenuClosed, route.Discover))

	assert.Contains(t, out, "<!doctype html>")
	assert.Contains(t, out, "<title>Test | Gospors</title>")
	assert.Contains(t, out, "page body")
	assert.Contains(t, out, ">Log In<")
	assert.Contains(t, out, `href="/login?return_to=%2Fdiscover"`)
	assert.Contains(t, out, ">Join as Athlete<")
	assert.Contains(t, out, `href="/athlete-signup"`)
	assert.NotContains(t, out, "Log Out")
	assert.NotContains(t, out, "My Dashboard")
}

func TestPage_Authenticated(t *testing.T) {
	out := render(t, props("/", layout.Authenticated{Profile: maya()}, layout.MenuClosed, route.Home))

	assert.Contains(t, out, "Maya Lopez")
	assert.Contains(t, out, "maya@example.com")
	assert.Contains(t, out, "My Dashboard")
	assert.Contains(t, out, `href="/athlete-dashboard"`)
	assert.Contains(t, out, `<form method="post" action="/logout">`)
	assert.Contains(t, out, "Log Out")
	assert.NotContains(t, out, ">Log In<")
}

func TestPage_AuthenticatedWithoutName(t *testing.T) {
	user := &domain.User{Email: "anon@example.com"}
	out := render(t, props("/", layout.Authenticated{Profile: user}, layout.MenuClosed, route.Home))

	assert.Contains(t, out, ">User<")
	assert.Contains(t, out, "anon@example.com")
}

func TestPage_NilViewerRendersAnonymous(t *testing.T) {
	out := render(t, layout.Props{Active: route.Home})
	assert.Contains(t, out, ">Log In<")
	assert.Contains(t, out, "<title>Gospors</title>")
}

func TestPage_ActiveNavEntry(t *testing.T) {
	for _, page := range append(route.Pages(), "") {
		t.Run(string(page), func(t *testing.T) {
			for _, menu := range []layout.MenuState{layout.MenuClosed, layout.MenuOpen} {
				out := render(t, props("/", layout.Anonymous{}, menu, page))

				want := 0
				for _, e := range route.NavEntries() {
					if e.Page == page {
						want = 1
					}
				}
				if menu.IsOpen() {
					want *= 2 // desktop and mobile
				}
				assert.Equal(t, want, strings.Count(out, layout.ActiveClass))
				assert.Equal(t, want, strings.Count(out, `aria-current="page"`))
			}
		})
	}
}

func TestPage_ActiveEntryIsTheMatchingOne(t *testing.T) {
	out := render(t, props("/discover", layout.Anonymous{}, layout.MenuClosed, route.Discover))
	assert.Regexp(t, `<a href="/discover" class="[^"]*`+regexp.QuoteMeta(layout.ActiveClass)+`" data-nav="Discover"`, out)
	assert.Regexp(t, `<a href="/" class="[^"]*`+regexp.QuoteMeta(layout.InactiveClass)+`" data-nav="Home"`, out)
}

func TestPage_MenuButton(t *testing.T) {
	closed := render(t, props("/discover", layout.Anonymous{}, layout.MenuClosed, route.Discover))
	assert.Contains(t, closed, `href="/discover?menu=open"`)
	assert.Contains(t, closed, `aria-label="Open menu"`)
	assert.NotContains(t, closed, `id="mobile-menu"`)

	open := render(t, props("/discover?menu=open", layout.Anonymous{}, layout.MenuOpen, route.Discover))
	assert.Contains(t, open, `aria-label="Close menu"`)
	assert.Contains(t, open, `id="mobile-menu"`)
}

func TestPage_MobileMenuLinksCloseTheMenu(t *testing.T) {
	viewers := []layout.Viewer{layout.Anonymous{}, layout.Authenticated{Profile: maya()}}

	for _, v := range viewers {
		out := render(t, props("/discover?menu=open&sport=rowing", v, layout.MenuOpen, route.Discover))
		section := mobileSection(t, out)

		links := hrefRe.FindAllStringSubmatch(section, -1)
		require.NotEmpty(t, links)
		for _, l := range links {
			assert.NotContains(t, l[1], "menu=", "link %q keeps the menu open", l[1])
		}

		// Nothing on an open page leads back to an open menu.
		assert.NotContains(t, out, "menu=open")
	}
}

func TestPage_MobileMenuContent(t *testing.T) {
	anon := mobileSection(t, render(t, props("/?menu=open", layout.Anonymous{}, layout.MenuOpen, route.Home)))
	assert.Contains(t, anon, ">Home<")
	assert.Contains(t, anon, ">Discover<")
	assert.Contains(t, anon, ">Log In<")
	assert.Contains(t, anon, ">Join as Athlete<")

	authed := mobileSection(t, render(t, props("/?menu=open", layout.Authenticated{Profile: maya()}, layout.MenuOpen, route.Home)))
	assert.Contains(t, authed, ">My Dashboard<")
	assert.Contains(t, authed, `action="/logout"`)
	assert.NotContains(t, authed, ">Log In<")
}

func TestPage_Footer(t *testing.T) {
	out := render(t, props("/", layout.Anonymous{}, layout.MenuClosed, route.Home))

	assert.Contains(t, out, "Connecting rising athletic stars with sponsors who believe in their potential.")
	assert.Contains(t, out, ">Discover Athletes<")
	assert.Contains(t, out, ">How It Works<")
	assert.Contains(t, out, ">Contact Us<")
	assert.Contains(t, out, "© 2026 Gospors. All rights reserved.")
}

func TestLoginURL(t *testing.T) {
	u, _ := url.Parse("/discover?sport=rowing&menu=open")
	assert.Equal(t, "/login?return_to=%2Fdiscover%3Fsport%3Drowing", layout.LoginURL(u))
	assert.Equal(t, "/login?return_to=%2F", layout.LoginURL(nil))
}

package pages_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/pages"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestHome(t *testing.T) {
	out := render(t, pages.Home(false))
	assert.Contains(t, out, "Get sponsored. Chase your dream.")
	assert.Contains(t, out, `href="/athlete-signup"`)
	assert.Contains(t, out, `href="/discover"`)
	assert.NotContains(t, out, `role="alert"`)

	failed := render(t, pages.Home(true))
	assert.Contains(t, failed, "We could not log you in.")
}

func TestDiscover(t *testing.T) {
	empty := render(t, pages.Discover(nil))
	assert.Contains(t, empty, "No athletes have joined yet.")

	joined := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	out := render(t, pages.Discover([]*domain.User{
		{FullName: "Maya Lopez", CreatedAt: joined},
		{Email: "noname@example.com", CreatedAt: joined},
	}))
	assert.NotContains(t, out, "No athletes have joined yet.")
	assert.Contains(t, out, "Maya Lopez")
	assert.Contains(t, out, ">User<")
	assert.Contains(t, out, "Joined Mar 2026")
	assert.NotContains(t, out, "noname@example.com")
}

func TestAthleteDashboard(t *testing.T) {
	out := render(t, pages.AthleteDashboard(&domain.User{FullName: "Maya <Lopez>", Email: "maya@example.com"}))
	assert.Contains(t, out, "Welcome back, Maya &lt;Lopez&gt;")
	assert.Contains(t, out, "maya@example.com")
}

func TestAthleteSignup(t *testing.T) {
	anon := render(t, pages.AthleteSignup(false, "/login?return_to=%2Fathlete-dashboard"))
	assert.Contains(t, anon, `href="/login?return_to=%2Fathlete-dashboard"`)

	member := render(t, pages.AthleteSignup(true, "/login"))
	assert.Contains(t, member, `href="/athlete-dashboard"`)
	assert.NotContains(t, member, `href="/login"`)
}

func TestNotFound(t *testing.T) {
	out := render(t, pages.NotFound())
	assert.Contains(t, out, "Page not found")
	assert.Contains(t, out, `href="/"`)
}

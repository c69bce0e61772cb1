// Package pages holds the content rendered inside the layout shell.
package pages

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/route"
)

const (
	primaryButton   = "inline-block px-6 py-3 rounded-xl bg-gradient-to-r from-orange-500 to-orange-600 text-white font-semibold"
	secondaryButton = "inline-block px-6 py-3 rounded-xl border border-gray-300 text-gray-800 font-semibold hover:bg-gray-100"
)

func section(children ...g.Node) g.Node {
	return html.Section(html.Class("max-w-6xl mx-auto px-6 py-16"), g.Group(children))
}

// Home is the landing page. loginFailed shows a notice after a failed login.
func Home(loginFailed bool) g.Node {
	return section(
		g.If(loginFailed,
			html.Div(
				html.Class("mb-8 rounded-xl border border-red-200 bg-red-50 px-4 py-3 text-red-700"),
				g.Attr("role", "alert"),
				g.Text("We could not log you in. Please try again."),
			),
		),
		html.H1(html.Class("text-4xl sm:text-6xl font-black text-slate-900"), g.Text("Get sponsored. Chase your dream.")),
		html.P(
			html.Class("mt-6 text-lg text-gray-600 max-w-2xl"),
			g.Text("Gospors connects rising athletes with sponsors who want to back them early."),
		),
		html.Div(
			html.Class("mt-10 flex flex-wrap gap-4"),
			html.A(html.Href(route.CreatePageURL(route.AthleteSignup)), html.Class(primaryButton), g.Text("Join as Athlete")),
			html.A(html.Href(route.CreatePageURL(route.Discover)), html.Class(secondaryButton), g.Text("Discover Athletes")),
		),
	)
}

// Discover lists recently joined athletes.
func Discover(athletes []*domain.User) g.Node {
	return section(
		html.H1(html.Class("text-3xl font-black text-slate-900"), g.Text("Discover Athletes")),
		html.P(html.Class("mt-2 text-gray-600"), g.Text("Rising talent open to sponsorship.")),
		g.If(len(athletes) == 0,
			html.P(html.Class("mt-10 text-gray-500"), g.Attr("data-empty", ""), g.Text("No athletes have joined yet.")),
		),
		g.If(len(athletes) > 0,
			html.Ul(
				html.Class("mt-10 grid sm:grid-cols-2 lg:grid-cols-3 gap-6"),
				g.Map(athletes, athleteCard),
			),
		),
	)
}

func athleteCard(u *domain.User) g.Node {
	return html.Li(
		html.Class("rounded-2xl bg-white shadow-sm border border-gray-100 p-6 flex items-center gap-4"),
		g.If(u.AvatarURL != "",
			html.Img(html.Src(u.AvatarURL), html.Alt(""), html.Class("w-12 h-12 rounded-full")),
		),
		html.Div(
			html.P(html.Class("font-semibold text-slate-900"), g.Text(u.DisplayName())),
			html.P(html.Class("text-sm text-gray-500"), g.Textf("Joined %s", u.CreatedAt.Format("Jan 2006"))),
		),
	)
}

// AthleteDashboard greets the logged-in athlete.
func AthleteDashboard(profile *domain.User) g.Node {
	return section(
		html.H1(html.Class("text-3xl font-black text-slate-900"), g.Textf("Welcome back, %s", profile.DisplayName())),
		html.P(html.Class("mt-2 text-gray-600"), g.Text(profile.Email)),
		html.Div(
			html.Class("mt-10 rounded-2xl bg-white border border-gray-100 p-6"),
			html.H2(html.Class("font-bold text-slate-900"), g.Text("Your profile")),
			html.P(html.Class("mt-2 text-gray-600"), g.Text("Sponsors browsing Discover can find you.")),
			html.A(html.Href(route.CreatePageURL(route.Discover)), html.Class("mt-4 "+secondaryButton), g.Text("See the directory")),
		),
	)
}

// AthleteSignup invites anonymous visitors to log in; loginURL starts the flow
// and returns to the dashboard. Signed-in members get a dashboard link.
func AthleteSignup(signedIn bool, loginURL string) g.Node {
	cta := html.A(html.Href(loginURL), html.Class(primaryButton), g.Text("Join as Athlete"))
	if signedIn {
		cta = html.A(html.Href(route.CreatePageURL(route.AthleteDashboard)), html.Class(primaryButton), g.Text("Go to My Dashboard"))
	}

	return section(
		html.H1(html.Class("text-3xl font-black text-slate-900"), g.Text("Join as Athlete")),
		html.Ul(
			html.Class("mt-6 space-y-2 text-gray-600 list-disc list-inside"),
			html.Li(g.Text("Create your athlete profile in minutes.")),
			html.Li(g.Text("Get discovered by sponsors looking for rising talent.")),
			html.Li(g.Text("Keep everything you earn.")),
		),
		html.Div(html.Class("mt-10"), cta),
	)
}

// NotFound is shown for unknown paths.
func NotFound() g.Node {
	return section(
		html.H1(html.Class("text-3xl font-black text-slate-900"), g.Text("Page not found")),
		html.P(html.Class("mt-2 text-gray-600"), g.Text("The page you are looking for does not exist.")),
		html.A(html.Href(route.CreatePageURL(route.Home)), html.Class("mt-8 "+secondaryButton), g.Text("Back to Home")),
	)
}

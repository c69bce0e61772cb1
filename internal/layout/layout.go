package layout

import (
	"context"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/gospors/gospors/internal/domain"
	"github.com/gospors/gospors/internal/route"
)

// Nav link styling.
const (
	ActiveClass   = "bg-orange-100 text-orange-700"
	InactiveClass = "text-gray-700 hover:bg-gray-100"
)

const (
	brand   = "Gospors"
	tagline = "Connecting rising athletic stars with sponsors who believe in their potential."
)

// Props is everything one render of the shell depends on.
type Props struct {
	Title      string
	Active     route.Page // empty when no nav entry matches
	Viewer     Viewer
	Menu       MenuState
	CurrentURL *url.URL
	Year       int
	Content    g.Node
}

// LoginURL is the login endpoint returning to current (without the menu flag).
func LoginURL(current *url.URL) string {
	back := "/"
	if current != nil {
		back = WithMenu(current, MenuClosed)
	}
	return route.LoginPath + "?" + url.Values{route.ReturnToParam: {back}}.Encode()
}

// Page renders a complete HTML document with the shell around p.Content.
func Page(p Props) g.Node {
	title := brand
	if p.Title != "" {
		title = p.Title + " | " + brand
	}

	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(title)),
				html.Script(html.Src("https://cdn.tailwindcss.com")),
			),
			html.Body(
				Shell(p),
			),
		),
	)
}

// Component exposes Page as a templ component for templ.Handler.
func Component(p Props) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return Page(p).Render(w)
	})
}

// Shell renders the navigation, the content and the footer.
func Shell(p Props) g.Node {
	if p.Viewer == nil {
		p.Viewer = Anonymous{}
	}
	if p.CurrentURL == nil {
		p.CurrentURL = &url.URL{Path: "/"}
	}

	return html.Div(
		html.Class("min-h-screen bg-gray-50"),
		navBar(p),
		html.Main(p.Content),
		footer(p.Year),
	)
}

func navBar(p Props) g.Node {
	return html.Nav(
		html.Class("bg-white/80 backdrop-blur-lg shadow-sm sticky top-0 z-50 border-b border-gray-100"),
		html.Div(
			html.Class("max-w-7xl mx-auto px-4 sm:px-6 py-4"),
			html.Div(
				html.Class("flex justify-between items-center"),
				logo(),
				desktopNav(p),
				menuButton(p),
			),
			g.Iff(p.Menu.IsOpen(), func() g.Node { return mobileMenu(p) }),
		),
	)
}

func logo() g.Node {
	return html.A(
		html.Href(route.CreatePageURL(route.Home)),
		html.Class("flex items-center gap-3 group"),
		html.Div(
			html.Class("w-10 h-10 bg-orange-500 rounded-xl flex items-center justify-center group-hover:scale-110 transition-transform"),
			trophyIcon("w-6 h-6 text-white"),
		),
		html.Span(
			html.Class("text-xl sm:text-2xl font-black bg-gradient-to-r from-orange-500 to-orange-600 bg-clip-text text-transparent"),
			g.Text(brand),
		),
	)
}

// cn joins class lists, dropping duplicates.
func cn(inputs ...string) string {
	var classes []string
	seen := make(map[string]bool)
	for _, input := range inputs {
		for _, c := range strings.Fields(input) {
			if !seen[c] {
				classes = append(classes, c)
				seen[c] = true
			}
		}
	}
	return strings.Join(classes, " ")
}

func navClass(base string, page, active route.Page) string {
	if page == active {
		return cn(base, ActiveClass)
	}
	return cn(base, InactiveClass)
}

func navLinks(active route.Page, base string, href func(string) string) g.Node {
	return g.Map(route.NavEntries(), func(e route.NavEntry) g.Node {
		return html.A(
			html.Href(href(route.CreatePageURL(e.Page))),
			html.Class(navClass(base, e.Page, active)),
			g.Attr("data-nav", string(e.Page)),
			g.If(e.Page == active, g.Attr("aria-current", "page")),
			g.Text(e.Label),
		)
	})
}

func desktopNav(p Props) g.Node {
	return html.Div(
		html.Class("hidden md:flex items-center gap-2"),
		navLinks(p.Active, "px-5 py-2 rounded-full font-semibold transition", func(s string) string { return s }),
		accountActions(p),
	)
}

func accountActions(p Props) g.Node {
	if profile := Profile(p.Viewer); profile != nil {
		return accountMenu(profile)
	}
	return guestActions(p.CurrentURL)
}

func accountMenu(profile *domain.User) g.Node {
	return html.Details(
		html.Class("relative ml-2"),
		g.Attr("data-account-menu", ""),
		html.Summary(
			html.Class("list-none flex items-center cursor-pointer font-semibold px-3 py-2 rounded-md hover:bg-gray-100"),
			html.Div(
				html.Class("w-8 h-8 bg-orange-500 rounded-full flex items-center justify-center mr-2"),
				trophyIcon("w-5 h-5 text-white"),
			),
			chevronDownIcon(),
		),
		html.Div(
			html.Class("absolute right-0 mt-2 w-56 rounded-md border bg-white shadow-lg py-1"),
			html.Div(
				html.Class("px-3 py-2"),
				html.P(html.Class("font-semibold"), g.Text(profile.DisplayName())),
				html.P(html.Class("text-sm text-gray-500"), g.Text(profile.Email)),
			),
			html.Hr(),
			html.A(
				html.Href(route.CreatePageURL(route.AthleteDashboard)),
				html.Class("flex items-center px-3 py-2 text-sm hover:bg-gray-100 cursor-pointer"),
				userIcon(),
				g.Text("My Dashboard"),
			),
			html.Hr(),
			logoutForm("flex items-center w-full px-3 py-2 text-sm text-red-600 hover:bg-gray-100 cursor-pointer", logoutIcon()),
		),
	)
}

func guestActions(current *url.URL) g.Node {
	return html.Div(
		html.Class("flex gap-2 ml-2"),
		html.A(
			html.Href(LoginURL(current)),
			html.Class("px-4 py-2 rounded-md font-semibold hover:bg-gray-100"),
			g.Text("Log In"),
		),
		html.A(
			html.Href(route.CreatePageURL(route.AthleteSignup)),
			html.Class("px-4 py-2 rounded-md bg-gradient-to-r from-orange-500 to-orange-600 text-white font-semibold"),
			g.Text("Join as Athlete"),
		),
	)
}

// logoutForm posts to the logout endpoint; logging out changes state so it is
// never a plain link.
func logoutForm(buttonClass string, icon g.Node) g.Node {
	return html.Form(
		html.Method("post"),
		html.Action(route.LogoutPath),
		html.Button(
			html.Type("submit"),
			html.Class(buttonClass),
			icon,
			g.Text("Log Out"),
		),
	)
}

func menuButton(p Props) g.Node {
	label := "Open menu"
	icon := menuIcon()
	if p.Menu.IsOpen() {
		label = "Close menu"
		icon = closeIcon()
	}

	return html.A(
		html.Href(ToggleURL(p.CurrentURL, p.Menu)),
		html.Class("md:hidden p-2"),
		g.Attr("aria-label", label),
		g.Attr("aria-expanded", strconv.FormatBool(p.Menu.IsOpen())),
		g.Attr("aria-controls", "mobile-menu"),
		icon,
	)
}

func mobileMenu(p Props) g.Node {
	const item = "px-4 py-3 rounded-xl font-semibold"

	var actions g.Node
	if IsAuthenticated(p.Viewer) {
		actions = g.Group([]g.Node{
			html.A(
				html.Href(closeMenu(route.CreatePageURL(route.AthleteDashboard))),
				html.Class(item+" text-gray-700 hover:bg-gray-100"),
				g.Text("My Dashboard"),
			),
			logoutForm(item+" w-full text-red-600 hover:bg-red-50 text-left", nil),
		})
	} else {
		actions = g.Group([]g.Node{
			html.A(
				html.Href(LoginURL(p.CurrentURL)),
				html.Class(item+" text-gray-700 hover:bg-gray-100 text-left"),
				g.Text("Log In"),
			),
			html.A(
				html.Href(closeMenu(route.CreatePageURL(route.AthleteSignup))),
				html.Class(item+" bg-gradient-to-r from-orange-500 to-orange-600 text-white text-center"),
				g.Text("Join as Athlete"),
			),
		})
	}

	return html.Div(
		html.ID("mobile-menu"),
		html.Class("md:hidden mt-4 pb-4 border-t pt-4"),
		html.Div(
			html.Class("flex flex-col gap-2"),
			navLinks(p.Active, item+" transition", closeMenu),
			actions,
		),
	)
}

func footer(year int) g.Node {
	return html.Footer(
		html.Class("bg-slate-900 text-white py-12"),
		html.Div(
			html.Class("max-w-6xl mx-auto px-6"),
			html.Div(
				html.Class("grid md:grid-cols-4 gap-8"),
				html.Div(
					html.Class("md:col-span-2"),
					html.Div(
						html.Class("flex items-center gap-3 mb-4"),
						html.Div(
							html.Class("w-10 h-10 bg-orange-500 rounded-xl flex items-center justify-center"),
							trophyIcon("w-6 h-6 text-white"),
						),
						html.Span(html.Class("text-2xl font-black"), g.Text(brand)),
					),
					html.P(html.Class("text-slate-400 max-w-sm"), g.Text(tagline)),
				),
				footerColumn("Platform",
					footerLink(route.CreatePageURL(route.Discover), "Discover Athletes"),
					footerLink(route.CreatePageURL(route.AthleteSignup), "Join as Athlete"),
				),
				footerColumn("Support",
					footerLink("#", "How It Works"),
					footerLink("#", "Contact Us"),
				),
			),
			html.Div(
				html.Class("border-t border-slate-800 mt-10 pt-8 text-center text-slate-500 text-sm"),
				g.Textf("© %d %s. All rights reserved.", year, brand),
			),
		),
	)
}

func footerColumn(title string, links ...g.Node) g.Node {
	return html.Div(
		html.H4(html.Class("font-bold mb-4"), g.Text(title)),
		html.Ul(html.Class("space-y-2 text-slate-400"), g.Group(links)),
	)
}

func footerLink(href, label string) g.Node {
	return html.Li(html.A(html.Href(href), html.Class("hover:text-white transition"), g.Text(label)))
}

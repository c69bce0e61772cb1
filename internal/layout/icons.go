package layout

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

const trophyPath = "M2 19h20v3H2v-3zm2-9l4 4 4-6 4 6 4-4v9H4v-9z"

func svgIcon(class string, children ...g.Node) g.Node {
	return g.El("svg",
		html.Class(class),
		g.Attr("viewBox", "0 0 24 24"),
		g.Attr("aria-hidden", "true"),
		g.Group(children),
	)
}

func trophyIcon(class string) g.Node {
	return svgIcon(class,
		g.Attr("fill", "currentColor"),
		g.El("path", g.Attr("d", trophyPath)),
	)
}

func strokeIcon(class string, paths ...string) g.Node {
	return svgIcon(class,
		g.Attr("fill", "none"),
		g.Attr("stroke", "currentColor"),
		g.Attr("stroke-width", "2"),
		g.Attr("stroke-linecap", "round"),
		g.Map(paths, func(d string) g.Node {
			return g.El("path", g.Attr("d", d))
		}),
	)
}

func menuIcon() g.Node {
	return strokeIcon("w-6 h-6", "M4 6h16", "M4 12h16", "M4 18h16")
}

func closeIcon() g.Node {
	return strokeIcon("w-6 h-6", "M18 6 6 18", "M6 6l12 12")
}

func chevronDownIcon() g.Node {
	return strokeIcon("w-4 h-4", "m6 9 6 6 6-6")
}

func userIcon() g.Node {
	return strokeIcon("w-4 h-4 mr-2", "M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2", "M12 11a4 4 0 1 0 0-8 4 4 0 0 0 0 8z")
}

func logoutIcon() g.Node {
	return strokeIcon("w-4 h-4 mr-2", "M9 21H5a2 2 0 0 1-2-2V5a2 2 0 0 1 2-2h4", "m16 17 5-5-5-5", "M21 12H9")
}

package layouts

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Base is the HTML shell every page renders into. It wires the htmx and
// Tailwind CDN builds the same way for every page so fragments swapped in
// later can rely on both being present.
func Base(title string, content cmp.Node) cmp.Node {
	return g.Doctype(
		g.HTML(
			g.Lang("en"),
			g.Head(
				g.Meta(g.Charset("utf-8")),
				g.Meta(g.Name("viewport"), g.Content("width=device-width, initial-scale=1")),
				g.TitleEl(cmp.Text(CalculateTitle(title))),
				g.Script(g.Src("https://unpkg.com/htmx.org@1.9.12")),
				g.Script(g.Src("https://cdn.tailwindcss.com")),
			),
			g.Body(
				g.Class("bg-stone-50 text-stone-900 min-h-screen"),
				content,
			),
		),
	)
}

// CalculateTitle handles the conditional logic for the page title.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - Vasthra Silks"
	}
	return "Vasthra Silks"
}

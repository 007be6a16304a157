package components

import (
	"fmt"

	"github.com/vasthra/storefront/internal/catalog"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// Controls renders the search bar, the category filter chips, and the
// favorites toggle. All three live in one form so any change re-requests
// the grid fragment with the complete filter state.
func Controls(all catalog.Catalog, q catalog.Query) cmp.Node {
	active := make(map[string]bool, len(q.Categories))
	for _, slug := range q.Categories {
		active[slug] = true
	}

	return g.FormEl(
		g.ID("filter-form"),
		g.Action("/"),
		g.Method("get"),
		g.Class("mb-8 space-y-4"),
		hx.Get("/catalog/grid"),
		hx.Target("#gallery-grid"),
		hx.Swap("outerHTML"),
		hx.Trigger("submit, change, keyup changed delay:300ms from:find input[name='q']"),

		g.Input(
			g.Type("search"),
			g.Name("q"),
			g.Value(q.Search),
			g.Placeholder("Search sarees..."),
			g.AutoComplete("off"),
			g.Class("w-full max-w-xl rounded-full border border-stone-300 bg-white px-5 py-2.5 shadow-sm focus:border-amber-600 focus:outline-none"),
		),

		g.Div(
			g.Class("flex flex-wrap items-center gap-2"),
			cmp.Map(all, func(cat catalog.Category) cmp.Node {
				return chip(cat, active[cat.Slug])
			}),
			g.LabelEl(
				g.Class("ml-2 flex cursor-pointer items-center gap-1.5 text-sm text-stone-600"),
				g.Input(
					g.Type("checkbox"),
					g.Name("favorites"),
					g.Value("1"),
					g.Class("accent-rose-600"),
					cmp.If(q.FavoritesOnly, g.Checked()),
				),
				cmp.Text("Favorites only"),
			),
		),
	)
}

func chip(cat catalog.Category, active bool) cmp.Node {
	classes := "cursor-pointer select-none rounded-full border px-3 py-1 text-sm transition-colors"
	if active {
		classes += " border-amber-700 bg-amber-700 text-white"
	} else {
		classes += " border-stone-300 bg-white text-stone-700 hover:border-amber-600"
	}

	return g.LabelEl(
		g.Class(classes),
		g.Input(
			g.Type("checkbox"),
			g.Name("category"),
			g.Value(cat.Slug),
			g.Class("hidden"),
			cmp.If(active, g.Checked()),
		),
		cmp.Text(cat.Name),
	)
}

// StatsLine summarizes the catalog in the gallery header.
func StatsLine(stats catalog.Stats) cmp.Node {
	return g.P(
		g.Class("text-sm text-stone-500"),
		cmp.Text(fmt.Sprintf("%d designs across %d collections", stats.Items, stats.Categories)),
	)
}

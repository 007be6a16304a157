package components

import (
	"fmt"
	"net/url"

	"github.com/vasthra/storefront/internal/catalog"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// PreviewSize is how many items a collapsed subfolder shows before the
// "view all" expansion.
const PreviewSize = 8

// Grid renders the filtered gallery. expanded names the one subfolder shown
// in full, as "category-slug/subfolder-slug".
func Grid(view catalog.Catalog, favorites map[string]bool, expanded string) cmp.Node {
	if len(view) == 0 {
		return g.Div(
			g.ID("gallery-grid"),
			EmptyState(),
		)
	}

	return g.Div(
		g.ID("gallery-grid"),
		g.Class("space-y-10"),
		cmp.Map(view, func(cat catalog.Category) cmp.Node {
			return categorySection(cat, favorites, expanded)
		}),
	)
}

func categorySection(cat catalog.Category, favorites map[string]bool, expanded string) cmp.Node {
	return g.Div(
		g.Class("space-y-6"),
		g.H2(
			g.Class("border-b border-stone-200 pb-1 text-2xl font-semibold text-stone-800"),
			cmp.Text(cat.Name),
		),
		cmp.Map(cat.Subfolders, func(sub catalog.Subfolder) cmp.Node {
			return SubfolderSection(cat, sub, expanded == cat.Slug+"/"+sub.Slug, favorites)
		}),
	)
}

// SubfolderSection renders one subfolder: a preview of PreviewSize items
// with a "view all" affordance, or every item when expanded.
func SubfolderSection(cat catalog.Category, sub catalog.Subfolder, expanded bool, favorites map[string]bool) cmp.Node {
	sectionID := "sub-" + cat.Slug + "-" + sub.Slug

	shown := sub.Items
	hidden := 0
	if !expanded && len(shown) > PreviewSize {
		hidden = len(shown) - PreviewSize
		shown = shown[:PreviewSize]
	}

	return g.Section(
		g.ID(sectionID),
		g.Class("space-y-3"),
		g.Div(
			g.Class("flex items-baseline justify-between"),
			g.H3(
				g.Class("text-lg font-medium text-stone-700"),
				cmp.Text(sub.Name),
			),
			g.Span(
				g.Class("text-sm text-stone-400"),
				cmp.Text(fmt.Sprintf("%d designs", len(sub.Items))),
			),
		),
		g.Div(
			g.Class("grid grid-cols-2 gap-4 sm:grid-cols-3 lg:grid-cols-4"),
			cmp.Map(shown, func(it catalog.Item) cmp.Node {
				return ItemCard(it, favorites[it.ID])
			}),
		),
		cmp.If(hidden > 0,
			g.Button(
				g.Type("button"),
				g.Class("rounded-md border border-stone-300 bg-white px-4 py-1.5 text-sm text-stone-700 hover:border-amber-600"),
				hx.Get("/catalog/"+cat.Slug+"/"+sub.Slug),
				hx.Target("#"+sectionID),
				hx.Swap("outerHTML"),
				hx.Include("#filter-form"),
				cmp.Text(fmt.Sprintf("View all %d", len(sub.Items))),
			),
		),
		cmp.If(expanded,
			g.Button(
				g.Type("button"),
				g.Class("rounded-md border border-stone-300 bg-white px-4 py-1.5 text-sm text-stone-700 hover:border-amber-600"),
				hx.Get("/catalog/grid"),
				hx.Target("#gallery-grid"),
				hx.Swap("outerHTML"),
				hx.Include("#filter-form"),
				cmp.Text("Show less"),
			),
		),
	)
}

// ItemCard is a single gallery tile: the image opens the lightbox, the
// heart toggles the favorite.
func ItemCard(it catalog.Item, favorite bool) cmp.Node {
	return g.Div(
		g.Class("group overflow-hidden rounded-lg bg-white shadow-sm transition-shadow hover:shadow-md"),
		g.A(
			g.Href("#"),
			hx.Get(lightboxPath(it.ID)),
			hx.Target("#lightbox"),
			hx.Swap("innerHTML"),
			g.Img(
				g.Src(imagePath(it.ID)),
				g.Alt(it.Name),
				g.Loading("lazy"),
				g.Class("aspect-[3/4] w-full object-cover transition-transform group-hover:scale-105"),
			),
		),
		g.Div(
			g.Class("flex items-center justify-between px-3 py-2"),
			g.Span(
				g.Class("truncate text-sm text-stone-700"),
				g.Title(it.Name),
				cmp.Text(it.Name),
			),
			FavoriteButton(it, favorite),
		),
	)
}

// FavoriteButton is rendered standalone by the toggle endpoint, so it must
// carry everything needed to re-toggle.
func FavoriteButton(it catalog.Item, favorite bool) cmp.Node {
	glyph, classes, label := "♡", "text-stone-400 hover:text-rose-600", "Add to favorites"
	if favorite {
		glyph, classes, label = "♥", "text-rose-600", "Remove from favorites"
	}

	return g.Button(
		g.Type("button"),
		g.Class("text-lg leading-none "+classes),
		g.Aria("label", label),
		hx.Post(favoritePath(it.ID)),
		hx.Target("this"),
		hx.Swap("outerHTML"),
		cmp.Text(glyph),
	)
}

// EmptyState covers a filter combination with no matches.
func EmptyState() cmp.Node {
	return g.Div(
		g.Class("rounded-lg border border-dashed border-stone-300 bg-white p-12 text-center text-stone-500"),
		g.P(g.Class("text-lg"), cmp.Text("No sarees match your filters.")),
		g.P(g.Class("text-sm"), cmp.Text("Try a different search or clear a category.")),
	)
}

func imagePath(itemID string) string {
	return "/images/" + url.PathEscape(itemID)
}

func lightboxPath(itemID string) string {
	return "/items/" + url.PathEscape(itemID) + "/lightbox"
}

func favoritePath(itemID string) string {
	return "/items/" + url.PathEscape(itemID) + "/favorite"
}

package components

import (
	"github.com/vasthra/storefront/internal/catalog"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	g "maragu.dev/gomponents/html"
)

// LightboxMount is the empty element fragments render into. It lives at the
// bottom of the gallery page.
func LightboxMount() cmp.Node {
	return g.Div(g.ID("lightbox"))
}

// Lightbox is the modal image viewer for one item. prevID and nextID are
// the neighbors within the item's subfolder, wrapping at the ends; they are
// empty when the subfolder has a single item.
func Lightbox(it catalog.Item, prevID, nextID string) cmp.Node {
	return g.Div(
		g.ID("lightbox-overlay"),
		g.Class("fixed inset-0 z-50 flex items-center justify-center bg-black/80 p-4"),
		g.Div(
			g.Class("relative max-h-full max-w-3xl overflow-hidden rounded-lg bg-white"),
			g.Img(
				g.Src(imagePath(it.ID)),
				g.Alt(it.Name),
				g.Class("max-h-[75vh] w-full object-contain bg-stone-100"),
			),
			g.Div(
				g.Class("flex items-center justify-between gap-4 px-4 py-3"),
				cmp.If(prevID != "",
					lightboxNav(prevID, "‹ Previous"),
				),
				g.Div(
					g.Class("min-w-0 text-center"),
					g.P(g.Class("truncate font-medium text-stone-800"), cmp.Text(it.Name)),
					g.P(g.Class("text-sm text-stone-500"), cmp.Text(it.Category+" · "+it.Subfolder)),
				),
				cmp.If(nextID != "",
					lightboxNav(nextID, "Next ›"),
				),
			),
			g.Button(
				g.Type("button"),
				g.Class("absolute right-2 top-2 rounded-full bg-black/50 px-2.5 py-0.5 text-lg text-white hover:bg-black/70"),
				g.Aria("label", "Close viewer"),
				cmp.Attr("onclick", "document.getElementById('lightbox').innerHTML=''"),
				cmp.Text("×"),
			),
		),
	)
}

func lightboxNav(itemID, label string) cmp.Node {
	return g.Button(
		g.Type("button"),
		g.Class("shrink-0 text-sm text-amber-700 hover:underline"),
		hx.Get(lightboxPath(itemID)),
		hx.Target("#lightbox"),
		hx.Swap("innerHTML"),
		cmp.Text(label),
	)
}

// ErrorBanner is the catalog failure state: a static message and a manual
// retry that forces a refetch.
func ErrorBanner() cmp.Node {
	return g.Div(
		g.ID("catalog-error"),
		g.Class("rounded-lg border border-rose-200 bg-rose-50 p-8 text-center"),
		g.P(
			g.Class("mb-1 text-lg font-medium text-rose-800"),
			cmp.Text("We couldn't load the catalog."),
		),
		g.P(
			g.Class("mb-4 text-sm text-rose-700"),
			cmp.Text("Please check your connection and try again."),
		),
		g.Button(
			g.Type("button"),
			g.Class("rounded-md bg-rose-700 px-5 py-2 text-sm font-medium text-white hover:bg-rose-800"),
			hx.Post("/catalog/refresh"),
			hx.Target("#catalog-body"),
			hx.Swap("innerHTML"),
			cmp.Text("Try again"),
		),
	)
}

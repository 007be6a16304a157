package pages

import (
	"github.com/vasthra/storefront/internal/catalog"
	"github.com/vasthra/storefront/web/src/templates/components"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// GalleryData carries everything the gallery page needs: the full catalog
// (for the filter chips), the filtered view, the query that produced it,
// and the visitor's favorites.
type GalleryData struct {
	All       catalog.Catalog
	View      catalog.Catalog
	Query     catalog.Query
	Stats     catalog.Stats
	Favorites map[string]bool
	Expanded  string
	FeedDown  bool
}

// Gallery is the storefront's single page.
func Gallery(data GalleryData) cmp.Node {
	return g.Main(
		g.Class("mx-auto max-w-6xl px-4 py-8"),
		g.Header(
			g.Class("mb-8"),
			g.H1(
				g.Class("text-3xl font-bold tracking-tight text-amber-900"),
				cmp.Text("Vasthra Silks"),
			),
			cmp.If(!data.FeedDown, components.StatsLine(data.Stats)),
		),
		g.Div(
			g.ID("catalog-body"),
			GalleryContent(data),
		),
	)
}

// GalleryContent is the body below the header. The refresh endpoint renders
// it standalone to replace an error banner after a successful retry.
func GalleryContent(data GalleryData) cmp.Node {
	if data.FeedDown {
		return components.ErrorBanner()
	}

	return cmp.Group{
		components.Controls(data.All, data.Query),
		components.Grid(data.View, data.Favorites, data.Expanded),
		components.LightboxMount(),
	}
}

package catalog

import (
	"strings"

	"golang.org/x/text/cases"
)

// Query describes one view of the catalog: free-text search, the active
// category chips, and the favorites toggle. The zero value selects the
// whole catalog.
type Query struct {
	// Search matches item names and subfolder names, case-insensitively.
	Search string
	// Categories holds category slugs. Empty means every category.
	Categories []string
	// FavoritesOnly keeps only items whose ID is in Favorites.
	FavoritesOnly bool
	// Favorites is the visitor's favorites set, keyed by item ID.
	Favorites map[string]bool
}

// IsZero reports whether the query selects the whole catalog.
func (q Query) IsZero() bool {
	return q.Search == "" && len(q.Categories) == 0 && !q.FavoritesOnly
}

// Filter computes the catalog view for a query in a single pass.
// The input catalog is never mutated; subfolders and categories left with
// no items are pruned from the result.
func Filter(c Catalog, q Query) Catalog {
	if q.IsZero() {
		return c
	}

	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(q.Search))

	var chips map[string]bool
	if len(q.Categories) > 0 {
		chips = make(map[string]bool, len(q.Categories))
		for _, slug := range q.Categories {
			chips[slug] = true
		}
	}

	out := make(Catalog, 0, len(c))
	for _, cat := range c {
		if chips != nil && !chips[cat.Slug] {
			continue
		}

		filtered := Category{Name: cat.Name, Slug: cat.Slug}
		for _, sub := range cat.Subfolders {
			subMatches := needle != "" && strings.Contains(fold.String(sub.Name), needle)

			var items []Item
			for _, it := range sub.Items {
				if q.FavoritesOnly && !q.Favorites[it.ID] {
					continue
				}
				if needle != "" && !subMatches &&
					!strings.Contains(fold.String(it.Name), needle) {
					continue
				}
				items = append(items, it)
			}
			if len(items) == 0 {
				continue
			}
			filtered.Subfolders = append(filtered.Subfolders, Subfolder{
				Name:  sub.Name,
				Slug:  sub.Slug,
				Items: items,
			})
		}
		if len(filtered.Subfolders) == 0 {
			continue
		}
		out = append(out, filtered)
	}
	return out
}

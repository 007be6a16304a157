package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/vasthra/storefront/internal/catalog"
	"github.com/vasthra/storefront/internal/middleware"
	"github.com/vasthra/storefront/internal/view"
	"github.com/vasthra/storefront/web/src/templates/components"
	"github.com/vasthra/storefront/web/src/templates/layouts"
	"github.com/vasthra/storefront/web/src/templates/pages"
)

// CatalogSource is the slice of catalog.Service the handlers use. Tests
// substitute a stub.
type CatalogSource interface {
	Catalog(ctx context.Context) (catalog.Catalog, error)
	Refresh(ctx context.Context) (catalog.Catalog, error)
}

// CatalogHandler serves the gallery page and its htmx fragments.
type CatalogHandler struct {
	source CatalogSource
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(source CatalogSource) *CatalogHandler {
	return &CatalogHandler{source: source}
}

// GalleryGet handles GET / — the full page. The filter form submits here
// without htmx, so the same query parameters the grid fragment takes are
// honored. A feed failure renders the page with the error banner; the
// original page showed a banner with a retry button, not an error page.
func (h *CatalogHandler) GalleryGet(c echo.Context) error {
	req, err := bindGridRequest(c)
	if err != nil {
		return err
	}

	full, fetchErr := h.source.Catalog(c.Request().Context())
	if fetchErr != nil {
		middleware.FromContext(c.Request().Context()).Error("catalog unavailable", "error", fetchErr)
		page := layouts.Base("Catalog", pages.Gallery(pages.GalleryData{FeedDown: true}))
		return c.Render(http.StatusOK, "", page)
	}

	data := h.galleryData(c, full, req)
	return c.Render(http.StatusOK, "", layouts.Base("Catalog", pages.Gallery(data)))
}

// GridGet handles GET /catalog/grid — the filtered grid fragment.
func (h *CatalogHandler) GridGet(c echo.Context) error {
	req, err := bindGridRequest(c)
	if err != nil {
		return err
	}

	full, fetchErr := h.source.Catalog(c.Request().Context())
	if fetchErr != nil {
		return c.Render(http.StatusOK, "", components.ErrorBanner())
	}

	data := h.galleryData(c, full, req)
	return c.Render(http.StatusOK, "", components.Grid(data.View, data.Favorites, data.Expanded))
}

// SubfolderGet handles GET /catalog/:category/:subfolder — one subfolder
// expanded past its preview, still honoring the active filters.
func (h *CatalogHandler) SubfolderGet(c echo.Context) error {
	req, err := bindGridRequest(c)
	if err != nil {
		return err
	}

	full, fetchErr := h.source.Catalog(c.Request().Context())
	if fetchErr != nil {
		return c.Render(http.StatusOK, "", components.ErrorBanner())
	}

	favorites := view.Favorites(c)
	filtered := catalog.Filter(full, h.query(req, favorites))

	categorySlug := c.Param("category")
	subfolderSlug := c.Param("subfolder")

	cat, sub, ok := filtered.SubfolderBySlug(categorySlug, subfolderSlug)
	if !ok {
		// The filters may have pruned it since the button rendered.
		cat, sub, ok = full.SubfolderBySlug(categorySlug, subfolderSlug)
	}
	if !ok {
		return c.String(http.StatusNotFound, "Collection not found.")
	}

	return c.Render(http.StatusOK, "", components.SubfolderSection(cat, sub, true, favorites))
}

// LightboxGet handles GET /items/:id/lightbox — the modal viewer fragment.
func (h *CatalogHandler) LightboxGet(c echo.Context) error {
	full, fetchErr := h.source.Catalog(c.Request().Context())
	if fetchErr != nil {
		return c.String(http.StatusNotFound, "Item not found.")
	}

	id := pathParam(c, "id")
	it, ok := full.ItemByID(id)
	if !ok {
		return c.String(http.StatusNotFound, "Item not found.")
	}

	prevID, nextID := neighborIDs(full, it)
	return c.Render(http.StatusOK, "", components.Lightbox(it, prevID, nextID))
}

// FavoritePost handles POST /items/:id/favorite — toggles the session
// favorite and answers with the re-rendered button.
func (h *CatalogHandler) FavoritePost(c echo.Context) error {
	full, fetchErr := h.source.Catalog(c.Request().Context())
	if fetchErr != nil {
		return c.String(http.StatusNotFound, "Item not found.")
	}

	id := pathParam(c, "id")
	it, ok := full.ItemByID(id)
	if !ok {
		return c.String(http.StatusNotFound, "Item not found.")
	}

	now, err := view.ToggleFavorite(c, it.ID)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("favorite toggle failed",
			"item_id", it.ID, "error", err)
		return c.String(http.StatusInternalServerError, "Could not save favorite.")
	}

	return c.Render(http.StatusOK, "", components.FavoriteButton(it, now))
}

// RefreshPost handles POST /catalog/refresh — the retry button. It forces a
// refetch and swaps the whole catalog body back in on success.
func (h *CatalogHandler) RefreshPost(c echo.Context) error {
	full, err := h.source.Refresh(c.Request().Context())
	if err != nil {
		middleware.FromContext(c.Request().Context()).Error("catalog refresh failed", "error", err)
		return c.Render(http.StatusOK, "", components.ErrorBanner())
	}

	data := h.galleryData(c, full, GridRequest{})
	return c.Render(http.StatusOK, "", pages.GalleryContent(data))
}

func (h *CatalogHandler) galleryData(c echo.Context, full catalog.Catalog, req GridRequest) pages.GalleryData {
	favorites := view.Favorites(c)
	q := h.query(req, favorites)
	return pages.GalleryData{
		All:       full,
		View:      catalog.Filter(full, q),
		Query:     q,
		Stats:     catalog.CountStats(full),
		Favorites: favorites,
		Expanded:  req.Expanded,
	}
}

func (h *CatalogHandler) query(req GridRequest, favorites map[string]bool) catalog.Query {
	return catalog.Query{
		Search:        req.Q,
		Categories:    req.Categories,
		FavoritesOnly: req.Favorites,
		Favorites:     favorites,
	}
}

func bindGridRequest(c echo.Context) (GridRequest, error) {
	var req GridRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid query parameters")
	}
	return req, nil
}

// pathParam returns an unescaped path parameter. Item IDs come from the
// feed and are treated as opaque strings.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if unescaped, err := url.PathUnescape(raw); err == nil {
		return unescaped
	}
	return raw
}

// neighborIDs finds the previous and next item within the item's subfolder,
// wrapping at the ends. Both are empty for a single-item subfolder.
func neighborIDs(full catalog.Catalog, it catalog.Item) (string, string) {
	for _, cat := range full {
		if cat.Name != it.Category {
			continue
		}
		for _, sub := range cat.Subfolders {
			if sub.Name != it.Subfolder {
				continue
			}
			n := len(sub.Items)
			if n < 2 {
				return "", ""
			}
			for i, candidate := range sub.Items {
				if candidate.ID == it.ID {
					return sub.Items[(i-1+n)%n].ID, sub.Items[(i+1)%n].ID
				}
			}
		}
	}
	return "", ""
}

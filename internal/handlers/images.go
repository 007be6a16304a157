package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vasthra/storefront/internal/middleware"
)

// ImageStore serves cached image bytes for a remote URL.
type ImageStore interface {
	Get(ctx context.Context, url string) ([]byte, string, error)
}

// ImageHandler proxies the feed's remote images through the storefront so
// the gallery never hotlinks the upstream host.
type ImageHandler struct {
	source CatalogSource
	store  ImageStore
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(source CatalogSource, store ImageStore) *ImageHandler {
	return &ImageHandler{source: source, store: store}
}

// ImageGet handles GET /images/:id. The ID is resolved against the catalog
// to its upstream URL, so arbitrary URLs cannot be requested through the
// proxy.
func (h *ImageHandler) ImageGet(c echo.Context) error {
	full, err := h.source.Catalog(c.Request().Context())
	if err != nil {
		return c.String(http.StatusNotFound, "Image not found.")
	}

	it, ok := full.ItemByID(pathParam(c, "id"))
	if !ok {
		return c.String(http.StatusNotFound, "Image not found.")
	}

	data, contentType, err := h.store.Get(c.Request().Context(), it.ImageURL)
	if err != nil {
		if data == nil {
			middleware.FromContext(c.Request().Context()).Error("image fetch failed",
				"item_id", it.ID, "error", err)
			return c.String(http.StatusBadGateway, "Image unavailable.")
		}
		// Cache write failed but the bytes arrived; serve them and log.
		middleware.FromContext(c.Request().Context()).Warn("image cache write failed",
			"item_id", it.ID, "error", err)
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, contentType, data)
}

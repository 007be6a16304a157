package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vasthra/storefront/internal/middleware"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	rateLimiter := middleware.RateLimiter()

	s.E.GET("/", s.catalogHandler.GalleryGet)

	s.E.GET("/catalog/grid", s.catalogHandler.GridGet)
	s.E.GET("/catalog/:category/:subfolder", s.catalogHandler.SubfolderGet)
	s.E.POST("/catalog/refresh", s.catalogHandler.RefreshPost, rateLimiter)

	s.E.GET("/items/:id/lightbox", s.catalogHandler.LightboxGet)
	s.E.POST("/items/:id/favorite", s.catalogHandler.FavoritePost)

	s.E.GET("/images/:id", s.imageHandler.ImageGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}

package main

import (
	"context"
	"log/slog"

	"github.com/vasthra/storefront/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()

	// Warm the catalog cache so the first visitor doesn't wait on the feed.
	go func() {
		if _, err := s.CatalogService().Catalog(context.Background()); err != nil {
			slog.Warn("catalog warm-up failed, first page load will show the retry banner", "error", err)
		}
	}()

	s.Start()
}

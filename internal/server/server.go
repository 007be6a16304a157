package server

import (
	"log"

	"github.com/gorilla/sessions"
	"github.com/joho/godotenv"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/afero"
	"github.com/vasthra/storefront/internal/catalog"
	"github.com/vasthra/storefront/internal/config"
	"github.com/vasthra/storefront/internal/handlers"
	"github.com/vasthra/storefront/internal/imagecache"
	"github.com/vasthra/storefront/internal/logging"
	"github.com/vasthra/storefront/internal/middleware"
	"github.com/vasthra/storefront/internal/rendering"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	Cfg config.Provider

	catalogService *catalog.Service
	catalogHandler *handlers.CatalogHandler
	imageHandler   *handlers.ImageHandler
}

// New creates a new Server instance with production dependencies.
func New() *Server {
	// Load environment variables from .env file if it exists. We don't
	// have slog configured yet, so the standard logger is used here.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	logging.New()
	cfg := config.New()

	client := catalog.NewClient(cfg.GetCatalogAPIURL(), cfg.GetCatalogTimeout())
	service := catalog.NewService(client, cfg.GetCatalogCacheTTL())

	imageFs := afero.NewBasePathFs(afero.NewOsFs(), cfg.GetImageCacheDir())
	images := imagecache.New(imageFs)

	return newServer(cfg, service, handlers.NewCatalogHandler(service), handlers.NewImageHandler(service, images))
}

// newServer wires the Echo instance. Split from New so tests can inject
// stub catalog sources and image stores.
func newServer(cfg config.Provider, service *catalog.Service, catalogHandler *handlers.CatalogHandler, imageHandler *handlers.ImageHandler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.New()

	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	return &Server{
		E:              e,
		Cfg:            cfg,
		catalogService: service,
		catalogHandler: catalogHandler,
		imageHandler:   imageHandler,
	}
}

// CatalogService is a getter for the server's catalog service, useful for
// warming the cache at startup.
func (s *Server) CatalogService() *catalog.Service {
	return s.catalogService
}

package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasthra/storefront/internal/catalog"
	"github.com/vasthra/storefront/internal/handlers"
	"github.com/vasthra/storefront/internal/rendering"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

// stubSource is a CatalogSource with canned responses.
type stubSource struct {
	catalog    catalog.Catalog
	err        error
	refreshErr error
}

func (s *stubSource) Catalog(ctx context.Context) (catalog.Catalog, error) {
	return s.catalog, s.err
}

func (s *stubSource) Refresh(ctx context.Context) (catalog.Catalog, error) {
	if s.refreshErr != nil {
		return nil, s.refreshErr
	}
	return s.catalog, nil
}

func testCatalog() catalog.Catalog {
	return catalog.Catalog{
		{
			Name: "Kanjivaram", Slug: "kanjivaram",
			Subfolders: []catalog.Subfolder{
				{
					Name: "Bridal", Slug: "bridal",
					Items: []catalog.Item{
						{ID: "k1", Name: "Peacock Blue", Category: "Kanjivaram", Subfolder: "Bridal", ImageURL: "https://cdn.example.com/k1.jpg"},
						{ID: "k2", Name: "Temple Red", Category: "Kanjivaram", Subfolder: "Bridal", ImageURL: "https://cdn.example.com/k2.jpg"},
						{ID: "k3", Name: "Mustard", Category: "Kanjivaram", Subfolder: "Bridal", ImageURL: "https://cdn.example.com/k3.jpg"},
					},
				},
			},
		},
		{
			Name: "Banarasi", Slug: "banarasi",
			Subfolders: []catalog.Subfolder{
				{
					Name: "Georgette", Slug: "georgette",
					Items: []catalog.Item{
						{ID: "b1", Name: "Royal Blue", Category: "Banarasi", Subfolder: "Georgette", ImageURL: "https://cdn.example.com/b1.jpg"},
					},
				},
			},
		},
	}
}

func setupCatalogTest(source handlers.CatalogSource) *echo.Echo {
	e := echo.New()
	e.Renderer = rendering.New()
	e.Validator = handlers.NewValidator()

	cookieStore := sessions.NewCookieStore([]byte(testSessionSecret))
	e.Use(session.Middleware(cookieStore))

	h := handlers.NewCatalogHandler(source)
	e.GET("/", h.GalleryGet)
	e.GET("/catalog/grid", h.GridGet)
	e.GET("/catalog/:category/:subfolder", h.SubfolderGet)
	e.POST("/catalog/refresh", h.RefreshPost)
	e.GET("/items/:id/lightbox", h.LightboxGet)
	e.POST("/items/:id/favorite", h.FavoritePost)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGalleryGet_RendersCatalog(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Vasthra Silks")
	assert.Contains(t, body, "Peacock Blue")
	assert.Contains(t, body, "Banarasi")
	assert.Contains(t, body, "4 designs across 2 collections")
	assert.NotContains(t, body, "couldn&#39;t load the catalog")
}

func TestGalleryGet_FeedDownShowsErrorBanner(t *testing.T) {
	e := setupCatalogTest(&stubSource{err: errors.New("feed unreachable")})

	rec := get(e, "/")
	require.Equal(t, http.StatusOK, rec.Code, "the banner is part of the page, not an error response")

	body := rec.Body.String()
	assert.Contains(t, body, "couldn&#39;t load the catalog")
	assert.Contains(t, body, "/catalog/refresh")
	assert.NotContains(t, body, "Peacock Blue")
}

func TestGridGet_SearchFiltersItems(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/grid?q=blue")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Peacock Blue")
	assert.Contains(t, body, "Royal Blue")
	assert.NotContains(t, body, "Temple Red")
}

func TestGridGet_CategoryChipFilters(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/grid?category=banarasi")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Royal Blue")
	assert.NotContains(t, body, "Peacock Blue")
}

func TestGridGet_NoMatchesShowsEmptyState(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/grid?q=chiffon")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No sarees match your filters.")
}

func TestGridGet_OverlongSearchIsRejected(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/grid?q="+strings.Repeat("a", 300))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubfolderGet_ExpandsAllItems(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/kanjivaram/bridal")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Peacock Blue")
	assert.Contains(t, body, "Mustard")
	assert.Contains(t, body, "Show less")
}

func TestSubfolderGet_UnknownSlugIs404(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/catalog/kanjivaram/no-such-folder")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLightboxGet_RendersViewerWithNeighbors(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/items/k2/lightbox")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Temple Red")
	assert.Contains(t, body, "/images/k2")
	assert.Contains(t, body, "/items/k1/lightbox", "previous neighbor")
	assert.Contains(t, body, "/items/k3/lightbox", "next neighbor")
}

func TestLightboxGet_SingleItemSubfolderHasNoNavigation(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/items/b1/lightbox")
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.NotContains(t, body, "Previous")
	assert.NotContains(t, body, "Next")
}

func TestLightboxGet_UnknownItemIs404(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	rec := get(e, "/items/nope/lightbox")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavoritePost_TogglesAcrossRequests(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	req := httptest.NewRequest(http.MethodPost, "/items/k1/favorite", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Remove from favorites")

	// Second toggle carries the session cookie and removes the favorite.
	req2 := httptest.NewRequest(http.MethodPost, "/items/k1/favorite", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	e.ServeHTTP(rec2, req2)
	require.Equal(t, http.StatusOK, rec2.Code)
	assert.Contains(t, rec2.Body.String(), "Add to favorites")
}

func TestFavoritePost_UnknownItemIs404(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	req := httptest.NewRequest(http.MethodPost, "/items/nope/favorite", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRefreshPost_SuccessSwapsGalleryBackIn(t *testing.T) {
	e := setupCatalogTest(&stubSource{catalog: testCatalog()})

	req := httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Peacock Blue")
	assert.Contains(t, body, "filter-form")
	assert.NotContains(t, body, "couldn&#39;t load the catalog")
}

func TestRefreshPost_FailureKeepsErrorBanner(t *testing.T) {
	e := setupCatalogTest(&stubSource{
		catalog:    testCatalog(),
		refreshErr: errors.New("still down"),
	})

	req := httptest.NewRequest(http.MethodPost, "/catalog/refresh", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "couldn&#39;t load the catalog")
}

func TestGridGet_PreviewCapsItemsUntilExpanded(t *testing.T) {
	// Build a subfolder larger than the preview size.
	big := catalog.Catalog{{
		Name: "Silk", Slug: "silk",
		Subfolders: []catalog.Subfolder{{Name: "All", Slug: "all"}},
	}}
	for i := 0; i < 12; i++ {
		big[0].Subfolders[0].Items = append(big[0].Subfolders[0].Items, catalog.Item{
			ID:        string(rune('a' + i)),
			Name:      "Saree " + string(rune('A'+i)),
			Category:  "Silk",
			Subfolder: "All",
			ImageURL:  "https://cdn.example.com/x.jpg",
		})
	}
	e := setupCatalogTest(&stubSource{catalog: big})

	rec := get(e, "/catalog/grid")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Saree A")
	assert.NotContains(t, body, "Saree L", "items past the preview stay hidden")
	assert.Contains(t, body, "View all 12")

	rec = get(e, "/catalog/silk/all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Saree L")
}

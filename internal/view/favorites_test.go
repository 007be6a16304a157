package view_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vasthra/storefront/internal/view"
)

const testSessionSecret = "a-very-secret-key-for-testing-!"

func newTestContext(t *testing.T, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	store := sessions.NewCookieStore([]byte(testSessionSecret))
	handler := session.Middleware(store)(func(c echo.Context) error { return nil })
	require.NoError(t, handler(c))
	return c, rec
}

func TestFavorites_EmptyWithoutSession(t *testing.T) {
	c, _ := newTestContext(t, nil)
	assert.Empty(t, view.Favorites(c))
}

func TestToggleFavorite_RoundTrip(t *testing.T) {
	c, rec := newTestContext(t, nil)

	now, err := view.ToggleFavorite(c, "k1")
	require.NoError(t, err)
	assert.True(t, now)
	assert.True(t, view.Favorites(c)["k1"])
	assert.NotEmpty(t, view.VisitorID(c), "first write mints a visitor ID")

	// A follow-up request carrying the session cookie sees the favorite.
	res := rec.Result()
	c2, _ := newTestContext(t, res.Cookies())
	assert.True(t, view.Favorites(c2)["k1"])

	// Toggling again removes it.
	now, err = view.ToggleFavorite(c2, "k1")
	require.NoError(t, err)
	assert.False(t, now)
	assert.False(t, view.Favorites(c2)["k1"])
}

func TestToggleFavorite_KeepsOtherItems(t *testing.T) {
	c, _ := newTestContext(t, nil)

	_, err := view.ToggleFavorite(c, "k1")
	require.NoError(t, err)
	_, err = view.ToggleFavorite(c, "k2")
	require.NoError(t, err)
	_, err = view.ToggleFavorite(c, "k1")
	require.NoError(t, err)

	favorites := view.Favorites(c)
	assert.False(t, favorites["k1"])
	assert.True(t, favorites["k2"])
}

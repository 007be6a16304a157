package view

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	favoritesSessionName = "favorites-session"
	favoritesKey         = "favorites"
	visitorIDKey         = "visitor_id"
)

// Favorites returns the visitor's favorites set from the cookie session.
// A missing or unreadable session yields an empty set.
func Favorites(c echo.Context) map[string]bool {
	sess, err := session.Get(favoritesSessionName, c)
	if err != nil {
		return map[string]bool{}
	}

	ids, ok := sess.Values[favoritesKey].([]string)
	if !ok {
		return map[string]bool{}
	}

	favorites := make(map[string]bool, len(ids))
	for _, id := range ids {
		favorites[id] = true
	}
	return favorites
}

// ToggleFavorite flips an item in the favorites set and saves the session.
// It reports whether the item is a favorite after the toggle. The first
// write also mints a visitor ID so log lines can correlate a session.
func ToggleFavorite(c echo.Context, itemID string) (bool, error) {
	sess, err := session.Get(favoritesSessionName, c)
	if err != nil {
		return false, err
	}

	if _, ok := sess.Values[visitorIDKey].(string); !ok {
		sess.Values[visitorIDKey] = uuid.NewString()
	}

	ids, _ := sess.Values[favoritesKey].([]string)

	now := false
	next := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		if id == itemID {
			continue
		}
		next = append(next, id)
	}
	if len(next) == len(ids) {
		next = append(next, itemID)
		now = true
	}

	sess.Values[favoritesKey] = next
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return false, err
	}
	return now, nil
}

// VisitorID returns the session's visitor ID, or an empty string before the
// first favorite is saved.
func VisitorID(c echo.Context) string {
	sess, err := session.Get(favoritesSessionName, c)
	if err != nil {
		return ""
	}
	id, _ := sess.Values[visitorIDKey].(string)
	return id
}

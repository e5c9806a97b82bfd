package cartid

import (
	"net/http"
	"time"
)

const (
	// CookieName is shared with the browser-side store, which keeps the same
	// identifier under this key in local storage.
	CookieName = "cart_id"

	// Carts on the backend are abandoned after a while anyway; expiring the
	// cookie bounds unbounded cart growth.
	maxAge = 30 * 24 * time.Hour
)

type cookieStore struct {
	secure bool
}

func NewCookieStore(secure bool) Store {
	return &cookieStore{
		secure: secure,
	}
}

func (s *cookieStore) Get(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (s *cookieStore) Set(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *cookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

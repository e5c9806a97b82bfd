package cartid

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCookieStore(t *testing.T) {
	t.Run("Absent is not an error", func(t *testing.T) {
		store := NewCookieStore(false)

		request := httptest.NewRequest(http.MethodGet, "/api/cart/get", nil)
		id, found := store.Get(request)
		assert.False(t, found)
		assert.Empty(t, id)
	})

	t.Run("Set and get", func(t *testing.T) {
		store := NewCookieStore(true)

		response := httptest.NewRecorder()
		store.Set(response, "gid://shopify/Cart/abc123")

		cookies := response.Result().Cookies()
		assert.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, CookieName, cookie.Name)
		assert.Equal(t, "gid://shopify/Cart/abc123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
		assert.Equal(t, 30*24*60*60, cookie.MaxAge)

		request := httptest.NewRequest(http.MethodGet, "/api/cart/get", nil)
		request.AddCookie(cookie)
		id, found := store.Get(request)
		assert.True(t, found)
		assert.Equal(t, "gid://shopify/Cart/abc123", id)
	})

	t.Run("Clear expires cookie", func(t *testing.T) {
		store := NewCookieStore(false)

		response := httptest.NewRecorder()
		store.Clear(response)

		cookies := response.Result().Cookies()
		assert.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.True(t, cookies[0].MaxAge < 0)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()

	_, found := store.Get(nil)
	assert.False(t, found)

	store.Set(nil, "cart-1")
	id, found := store.Get(nil)
	assert.True(t, found)
	assert.Equal(t, "cart-1", id)

	store.Clear(nil)
	_, found = store.Get(nil)
	assert.False(t, found)
}

package cartid

import "net/http"

// Store persists the current cart identifier for a shopper. Absence is a
// normal state, not a failure: a shopper without a cart simply has no value.
type Store interface {
	Get(r *http.Request) (string, bool)
	Set(w http.ResponseWriter, id string)
	Clear(w http.ResponseWriter)
}

package shopify

import "fmt"

// BackendRejectedError carries the backend's own user-facing error list. The
// first message is suitable for display, the rest is diagnostic.
type BackendRejectedError struct {
	Messages []string
}

func (e *BackendRejectedError) Error() string {
	if len(e.Messages) == 0 {
		return "rejected by commerce backend"
	}
	return e.Messages[0]
}

// TransportError indicates the request never produced a usable backend
// answer: network failure, non-2xx status or a malformed payload. Callers may
// retry these; they must not retry a BackendRejectedError.
type TransportError struct {
	Operation string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport failure: %s", e.Operation, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// InvalidCartError means the supplied cart identifier no longer resolves on
// the backend, typically because the cart expired.
type InvalidCartError struct {
	CartID string
}

func (e *InvalidCartError) Error() string {
	return fmt.Sprintf("cart %s does not resolve on the commerce backend", e.CartID)
}

package myhttp

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

func HostnameWithScheme(r *http.Request) string {
	scheme := "https"
	if r.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GuessHostnameWithScheme derives the service's own base URL when no request
// is at hand, e.g. when registering pubsub push subscriptions at startup.
func GuessHostnameWithScheme() string {
	if project := os.Getenv("GOOGLE_CLOUD_PROJECT"); project != "" {
		return fmt.Sprintf("https://%s.appspot.com", project)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	return fmt.Sprintf("http://localhost:%s", port)
}

// BuyerIP extracts the originating client address from proxy headers.
func BuyerIP(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}

	return r.Header.Get("X-Real-Ip")
}

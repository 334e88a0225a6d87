package handlers

import (
	"net/http"
	"strings"
)

// anonymousClient keys requests that arrive without proxy headers. Direct
// connections all share one rate-limit bucket, which is acceptable behind
// the reverse proxy this service is deployed under.
const anonymousClient = "anonymous"

// clientKey derives the rate-limit key for a request: the first entry of
// X-Forwarded-For, else X-Real-IP, else a fixed fallback.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	return anonymousClient
}

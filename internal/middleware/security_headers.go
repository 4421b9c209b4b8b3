package middleware

import (
	"net/http"
)

// SecurityHeaders sets the baseline response headers for every page.
// csp is the Content-Security-Policy value; empty skips that header.
func SecurityHeaders(csp string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			headers := w.Header()

			// Clickjacking protection
			headers.Set("X-Frame-Options", "DENY")

			// Prevent MIME type sniffing
			headers.Set("X-Content-Type-Options", "nosniff")

			// Referrer policy for privacy
			headers.Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// Disable unnecessary browser features
			headers.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=(), payment=()")

			if csp != "" {
				headers.Set("Content-Security-Policy", csp)
			}

			next.ServeHTTP(w, r)
		})
	}
}

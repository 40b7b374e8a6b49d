// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders stamps hardening headers onto every response, API and
// published pages alike.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// No MIME sniffing; published pages already declare text/html.
		h.Set("X-Content-Type-Options", "nosniff")

		// SAMEORIGIN rather than DENY: the editor previews drafts in an
		// iframe on the same origin.
		h.Set("X-Frame-Options", "SAMEORIGIN")

		// The legacy XSS auditor is off in modern browsers; 0 avoids its
		// filter-bypass quirks in old ones.
		h.Set("X-XSS-Protection", "0")

		// Full referrer stays on-origin; cross-origin gets origin only.
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")

		// Keep published pages out of cohort experiments.
		h.Set("Permissions-Policy", "interest-cohort=()")

		next.ServeHTTP(w, r)
	})
}

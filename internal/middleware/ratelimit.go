// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// pruneInterval is how often idle client entries are dropped from memory.
const pruneInterval = 5 * time.Minute

// visitor holds the recent request times for one client key.
type visitor struct {
	mu   sync.Mutex
	hits []time.Time
}

// RateLimiter caps requests per client IP over a sliding window. It exists
// for the credential endpoints: login and register are the only routes
// worth brute-forcing, so the limiter stays in-process rather than in
// Valkey.
type RateLimiter struct {
	mu      sync.RWMutex
	clients map[string]*visitor
	limit   int
	window  time.Duration
	stopCh  chan struct{}
}

// NewRateLimiter allows limit requests per window per client IP and starts
// the background pruner. Call Stop when the limiter is retired.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		clients: make(map[string]*visitor),
		limit:   limit,
		window:  window,
		stopCh:  make(chan struct{}),
	}

	go func() {
		ticker := time.NewTicker(pruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				rl.cleanup()
			case <-rl.stopCh:
				return
			}
		}
	}()

	return rl
}

// Stop ends the pruner goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// allow records a hit for key and reports whether it stayed inside the
// window's budget.
func (rl *RateLimiter) allow(key string) bool {
	rl.mu.RLock()
	v, ok := rl.clients[key]
	rl.mu.RUnlock()

	if !ok {
		rl.mu.Lock()
		// Re-check under the write lock; another request may have won.
		v, ok = rl.clients[key]
		if !ok {
			v = &visitor{}
			rl.clients[key] = v
		}
		rl.mu.Unlock()
	}

	now := time.Now()
	cutoff := now.Add(-rl.window)

	v.mu.Lock()
	defer v.mu.Unlock()

	live := v.hits[:0]
	for _, ts := range v.hits {
		if ts.After(cutoff) {
			live = append(live, ts)
		}
	}
	v.hits = live

	if len(v.hits) >= rl.limit {
		return false
	}
	v.hits = append(v.hits, now)
	return true
}

// cleanup drops clients whose newest hit fell out of the window.
func (rl *RateLimiter) cleanup() {
	cutoff := time.Now().Add(-rl.window)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, v := range rl.clients {
		v.mu.Lock()
		stale := true
		for _, ts := range v.hits {
			if ts.After(cutoff) {
				stale = false
				break
			}
		}
		v.mu.Unlock()

		if stale {
			delete(rl.clients, key)
		}
	}
}

// Middleware rejects over-budget requests with 429.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			http.Error(w, "Too Many Requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP picks the best available client address. Proxy headers win over
// RemoteAddr since the server normally sits behind one.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// Leftmost entry is the originating client.
		if idx := strings.IndexByte(xff, ','); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

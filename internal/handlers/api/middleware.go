package api

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

// visitorIdle is how long an address may stay quiet before its limiter is dropped
const visitorIdle = 3 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitors struct {
	mu      sync.Mutex
	limit   rate.Limit
	burst   int
	entries map[string]*visitor
}

func newVisitors(limit rate.Limit, burst int) *visitors {
	return &visitors{
		limit:   limit,
		burst:   burst,
		entries: make(map[string]*visitor),
	}
}

func (v *visitors) get(addr string, now time.Time) *rate.Limiter {
	v.mu.Lock()
	defer v.mu.Unlock()

	for key, entry := range v.entries {
		if now.Sub(entry.lastSeen) > visitorIdle {
			delete(v.entries, key)
		}
	}

	entry, ok := v.entries[addr]
	if !ok {
		entry = &visitor{limiter: rate.NewLimiter(v.limit, v.burst)}
		v.entries[addr] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

func clientAddr(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		now := s.clock.Now()
		if !s.visitors.get(clientAddr(r), now).AllowN(now, 1) {
			respondWithError(w, http.StatusTooManyRequests, "Too Many Requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// monitorMiddleware records request counts and latency by route template
func (s *Server) monitorMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := &responseWriter{w, http.StatusOK}

		next.ServeHTTP(ww, r)

		path := r.URL.Path
		if route := mux.CurrentRoute(r); route != nil {
			if tmpl, err := route.GetPathTemplate(); err == nil {
				path = tmpl
			}
		}
		s.metrics.HTTPRequest(path, r.Method, ww.statusCode, time.Since(start))
	})
}

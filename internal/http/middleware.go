package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/dimasarya/panelstore/internal/http/handlers"
	rl "github.com/dimasarya/panelstore/internal/http/rate_limiter"
)

// RequireSession guards admin endpoints. The admin UI is server-rendered
// pages plus same-origin AJAX, so a missing or invalid session answers in
// two ways: JSON callers get 401, page navigations get redirected to the
// login page.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handlers.HasValidSession(r) {
			next.ServeHTTP(w, r)
			return
		}

		if strings.Contains(r.Header.Get("Accept"), "application/json") {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"auth":false,"message":"unauthorized"}`))
			return
		}
		http.Redirect(w, r, "/admin/login", http.StatusFound)
	})
}

// LoginRateLimit applies the per-IP token bucket to the login endpoint.
func LoginRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.GetVisitor(remoteIP(r)).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

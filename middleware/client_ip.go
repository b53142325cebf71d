package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/blogem/token-gate/userctx"
)

// ClientIP stores the caller's address in the request context for audit records
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := userctx.SetClientIP(r.Context(), getIPAddress(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getIPAddress extracts IP address from request, checking X-Forwarded-For first
func getIPAddress(r *http.Request) string {
	// Check X-Forwarded-For header (proxy/load balancer)
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		// Take first IP if multiple
		ips := strings.Split(forwarded, ",")
		return strings.TrimSpace(ips[0])
	}

	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

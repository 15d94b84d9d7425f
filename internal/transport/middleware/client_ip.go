package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/advocates-backend/pkg/ctxutil"
)

// ClientIP stores the peer address (without port) in the request context.
// Forwarding headers are not trusted.
func ClientIP() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithClientIP(r.Context(), remoteIP(r.RemoteAddr))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func remoteIP(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}

func clientIP(r *http.Request) string {
	if ip, ok := ctxutil.ClientIPFromCtx(r.Context()); ok {
		return ip
	}
	return remoteIP(r.RemoteAddr)
}

package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Resolver extracts the client network address from a request.
type Resolver struct {
	// TrustProxyHeaders honours X-Forwarded-For and X-Real-IP. Only enable behind a
	// proxy that overwrites them.
	TrustProxyHeaders bool
}

// Resolve returns the normalized client address, or "" if none can be determined.
func (res Resolver) Resolve(r *http.Request) string {
	if res.TrustProxyHeaders {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			if ip := Normalize(first); ip != "" {
				return ip
			}
		}
		if ip := Normalize(r.Header.Get("X-Real-IP")); ip != "" {
			return ip
		}
	}
	return Normalize(r.RemoteAddr)
}

// Normalize strips any port suffix (and IPv6 brackets) from addr. The result is
// empty when addr is not an IP address.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return ""
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	addr = strings.TrimSuffix(strings.TrimPrefix(addr, "["), "]")
	ip := net.ParseIP(addr)
	if ip == nil {
		return ""
	}
	return ip.String()
}

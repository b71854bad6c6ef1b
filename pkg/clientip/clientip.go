// Package clientip extracts real client IP addresses from HTTP requests.
//
// Proxy headers are checked in priority order so the most reliable source
// wins: CF-Connecting-IP (Cloudflare), DO-Connecting-IP (DigitalOcean),
// X-Forwarded-For (first valid hop), X-Real-IP, then RemoteAddr for direct
// connections. Every candidate is validated and normalized; the unspecified
// address (0.0.0.0, ::) is rejected.
//
//	ip := clientip.GetIP(r)
//	if ip == "" {
//		// no valid client address could be determined
//	}
package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Proxy headers in priority order.
var headerPriority = []string{
	"CF-Connecting-IP",
	"DO-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// GetIP returns the client IP address for the request, or an empty string
// when no valid address can be determined.
func GetIP(r *http.Request) string {
	if r == nil {
		return ""
	}

	for _, header := range headerPriority {
		value := r.Header.Get(header)
		if value == "" {
			continue
		}

		// X-Forwarded-For may carry a chain: client, proxy1, proxy2.
		// The first valid entry is the originating client.
		for entry := range strings.SplitSeq(value, ",") {
			if ip := normalize(entry); ip != "" {
				return ip
			}
		}
	}

	// Direct connection: RemoteAddr is "host:port", possibly bracketed IPv6
	host := r.RemoteAddr
	if h, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		host = h
	}

	return normalize(host)
}

// normalize validates a candidate address and returns its canonical string
// form, or an empty string for invalid or unspecified addresses.
func normalize(s string) string {
	addr, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return ""
	}
	if addr.IsUnspecified() {
		return ""
	}
	return addr.Unmap().String()
}

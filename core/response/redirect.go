// Package response provides handler.Response constructors for the small set
// of responses the chain produces itself: redirects and empty pass-throughs.
package response

import (
	"net/http"

	"github.com/dmitrymomot/edgekit/core/handler"
)

// Redirect creates a 307 Temporary Redirect response.
// The request method is preserved, matching the behavior expected from
// middleware-produced redirects (locale prefixing, login gates).
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusTemporaryRedirect)
}

// RedirectFound creates a 302 Found (temporary redirect) response.
func RedirectFound(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent creates a 308 Permanent Redirect response.
func RedirectPermanent(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusPermanentRedirect)
}

// RedirectWithStatus creates a redirect with a custom status code.
// Status codes outside the 3xx range fall back to 307.
func RedirectWithStatus(url string, status int) handler.Response {
	return func(w http.ResponseWriter, r *http.Request) error {
		if status < 300 || status >= 400 {
			status = http.StatusTemporaryRedirect
		}
		http.Redirect(w, r, url, status)
		return nil
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/edgekit/core/cookie"
)

// Context defines the contract for request contexts in the chain.
// It carries the inbound request, the response writer, request-scoped
// values, and the cookie jar shared by all stages of the chain.
type Context interface {
	context.Context
	Request() *http.Request
	ResponseWriter() http.ResponseWriter
	SetValue(key, val any)

	// Cookies returns the request's cookie jar. All cookie writes made
	// through the jar are applied once to the final response, regardless
	// of which stage produced that response.
	Cookies() *cookie.Jar
}

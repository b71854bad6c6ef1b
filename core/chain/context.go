package chain

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/edgekit/core/cookie"
)

// Context is the default request context implementation.
// It delegates context.Context methods to the request's context and layers
// request-scoped values and the cookie jar on top.
type Context struct {
	w      http.ResponseWriter
	r      *http.Request
	jar    *cookie.Jar
	values map[any]any
}

// NewContext creates a request context for w and r with an empty cookie jar.
func NewContext(w http.ResponseWriter, r *http.Request) *Context {
	return &Context{
		w:   w,
		r:   r,
		jar: cookie.NewJar(),
	}
}

// Deadline delegates to the request context.
func (c *Context) Deadline() (deadline time.Time, ok bool) {
	return c.r.Context().Deadline()
}

// Done delegates to the request context.
func (c *Context) Done() <-chan struct{} {
	return c.r.Context().Done()
}

// Err delegates to the request context.
func (c *Context) Err() error {
	return c.r.Context().Err()
}

// Value returns request-scoped values set via SetValue, falling back to the
// request context for unknown keys.
func (c *Context) Value(key any) any {
	if val, ok := c.values[key]; ok {
		return val
	}
	return c.r.Context().Value(key)
}

// SetValue stores a request-scoped value on the context.
func (c *Context) SetValue(key, val any) {
	if c.values == nil {
		c.values = make(map[any]any)
	}
	c.values[key] = val
}

// Request returns the *http.Request associated with the context.
func (c *Context) Request() *http.Request {
	return c.r
}

// ResponseWriter returns the http.ResponseWriter associated with the context.
func (c *Context) ResponseWriter() http.ResponseWriter {
	return c.w
}

// Cookies returns the request's cookie jar.
func (c *Context) Cookies() *cookie.Jar {
	return c.jar
}

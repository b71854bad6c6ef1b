package chain

import (
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/dmitrymomot/edgekit/core/handler"
)

// compose builds a single handler from a middleware stack and endpoint.
func compose[C handler.Context](middlewares []handler.Middleware[C], endpoint handler.HandlerFunc[C]) handler.HandlerFunc[C] {
	h := endpoint

	// Wrap in reverse order so the first middleware runs first
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	return h
}

// passthrough is the implicit terminal handler: it produces no response of
// its own, leaving the ResponseWriter untouched apart from pending cookies.
func passthrough[C handler.Context](C) handler.Response {
	return nil
}

// Chain runs a middleware stack as an http.Handler.
type Chain[C handler.Context] struct {
	middlewares  []handler.Middleware[C]
	endpoint     handler.HandlerFunc[C]
	composed     handler.HandlerFunc[C]
	errorHandler handler.ErrorHandler[C]
	newContext   func(http.ResponseWriter, *http.Request) C
	logger       *slog.Logger
}

// New creates a chain from the given middleware stack.
// Middleware execute in declaration order: the first listed middleware is
// outermost.
func New[C handler.Context](middlewares ...handler.Middleware[C]) *Chain[C] {
	c := &Chain[C]{
		middlewares: middlewares,
		endpoint:    passthrough[C],
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	c.errorHandler = defaultErrorHandler[C]
	c.newContext = defaultContextFactory[C]
	c.composed = compose(c.middlewares, c.endpoint)
	return c
}

// NewWithOptions creates a chain with custom options applied.
func NewWithOptions[C handler.Context](middlewares []handler.Middleware[C], opts ...Option[C]) *Chain[C] {
	c := New[C](middlewares...)
	for _, opt := range opts {
		opt(c)
	}
	c.composed = compose(c.middlewares, c.endpoint)
	return c
}

// Use appends middleware to the stack.
func (c *Chain[C]) Use(middlewares ...handler.Middleware[C]) {
	c.middlewares = append(c.middlewares, middlewares...)
	c.composed = compose(c.middlewares, c.endpoint)
}

// Handler returns the composed handler function.
// Useful for invoking the chain without going through ServeHTTP.
func (c *Chain[C]) Handler() handler.HandlerFunc[C] {
	return c.composed
}

// ServeHTTP implements http.Handler. It builds the request context, runs the
// composed chain, applies the accumulated cookie jar, and renders whatever
// response the chain produced.
func (c *Chain[C]) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := c.newContext(w, r)

	// Recover from panics to prevent server crashes
	defer func() {
		if p := recover(); p != nil {
			panicErr := &panicError{
				value: p,
				stack: debug.Stack(),
			}
			c.logger.ErrorContext(ctx, "chain: recovered from panic",
				slog.String("path", r.URL.Path),
				slog.Any("panic", p),
			)
			c.errorHandler(ctx, panicErr)
		}
	}()

	resp := c.composed(ctx)

	// Pending cookie writes must precede the status line
	ctx.Cookies().Apply(w)

	if resp == nil {
		return
	}

	if err := resp(w, r); err != nil {
		c.errorHandler(ctx, err)
	}
}

// defaultContextFactory supports the default *Context type only.
// Custom context types must provide a factory via WithContextFactory.
func defaultContextFactory[C handler.Context](w http.ResponseWriter, r *http.Request) C {
	var zero C
	if _, ok := any(zero).(*Context); ok {
		return any(NewContext(w, r)).(C)
	}
	panic(ErrNoContextFactory)
}

// defaultErrorHandler responds with a generic 500 failure page.
func defaultErrorHandler[C handler.Context](ctx C, _ error) {
	http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

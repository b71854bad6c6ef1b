package chain

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/edgekit/core/handler"
)

// Option configures a Chain.
type Option[C handler.Context] func(*Chain[C])

// WithErrorHandler sets a custom error handler for render errors and
// recovered panics.
func WithErrorHandler[C handler.Context](eh handler.ErrorHandler[C]) Option[C] {
	return func(c *Chain[C]) {
		if eh != nil {
			c.errorHandler = eh
		}
	}
}

// WithContextFactory sets the factory used to build request contexts.
// Required when C is not the default *Context type.
func WithContextFactory[C handler.Context](factory func(http.ResponseWriter, *http.Request) C) Option[C] {
	return func(c *Chain[C]) {
		if factory != nil {
			c.newContext = factory
		}
	}
}

// WithEndpoint replaces the implicit no-op terminal handler.
func WithEndpoint[C handler.Context](endpoint handler.HandlerFunc[C]) Option[C] {
	return func(c *Chain[C]) {
		if endpoint != nil {
			c.endpoint = endpoint
		}
	}
}

// WithLogger sets the structured logger used for panic reporting.
func WithLogger[C handler.Context](logger *slog.Logger) Option[C] {
	return func(c *Chain[C]) {
		if logger != nil {
			c.logger = logger
		}
	}
}

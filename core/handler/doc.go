// Package handler defines the request handling contracts shared by the
// chain runner and all middleware: the request Context, the Response
// rendering function, and the Middleware wrapper type.
//
// A Response is a function that renders itself onto the ResponseWriter.
// Middleware composes around HandlerFunc values, each stage deciding
// whether to call the next one:
//
//	func Noop[C handler.Context]() handler.Middleware[C] {
//		return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
//			return func(ctx C) handler.Response {
//				return next(ctx)
//			}
//		}
//	}
package handler

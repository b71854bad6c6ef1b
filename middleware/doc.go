// Package middleware provides the request interceptor stages of the site's
// middleware chain: session refresh, admin auth gating, locale-prefix
// routing, and anonymous visit tracking.
//
// All middleware follow a consistent pattern:
//   - Generic functions accepting a handler.Context type parameter
//   - Configuration structs for customization
//   - Default constructors for common use cases
//   - WithConfig constructors for advanced configuration
//   - Context helpers for retrieving stored values
//
// Stages are composed with the chain package in declaration order. The
// intended order is SessionRefresh, AuthGate, LocaleRouting, Tracking:
// refresh must precede any authorization decision, locale routing runs
// after the gate so admin paths are excluded from locale logic, and
// tracking runs last so it only sees whatever survives routing.
//
//	c := chain.New[*chain.Context](
//		middleware.SessionRefresh[*chain.Context](sessions),
//		middleware.AuthGate[*chain.Context](middleware.AuthGateConfig{
//			Sessions: sessions,
//			Admins:   admins,
//			Paths:    paths,
//			Locales:  locales,
//		}),
//		middleware.LocaleRouting[*chain.Context](paths, locales),
//		middleware.Tracking[*chain.Context](paths),
//	)
//
// Every stage records its cookie writes in the request's cookie jar rather
// than on a stage-local response object, so a redirect produced by a later
// stage still carries cookies written by an earlier one.
package middleware

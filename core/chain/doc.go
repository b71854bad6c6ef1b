// Package chain composes an ordered list of middleware into a single HTTP
// handler and runs it for every inbound request.
//
// The first middleware in the list is outermost: its pre-logic runs first
// and its post-logic runs last. Each stage decides whether to call the next
// one, so any stage can short-circuit the rest of the chain by returning a
// response of its own. The implicit terminal handler is a no-op
// pass-through.
//
//	c := chain.New[*chain.Context](
//		middleware.SessionRefresh[*chain.Context](sessions),
//		middleware.AuthGate[*chain.Context](gateCfg),
//		middleware.LocaleRouting[*chain.Context](localeCfg),
//		middleware.Tracking[*chain.Context](trackCfg),
//	)
//	http.ListenAndServe(":8080", c)
//
// The runner owns the per-request cookie jar: every pending cookie write is
// applied to the ResponseWriter exactly once, before the final response
// renders, so no stage can drop another stage's cookies by constructing a
// fresh response.
//
// The composer adds no error handling of its own. Panics are recovered by
// the runner and routed to the configured error handler; errors returned by
// a Response render are routed there as well.
package chain

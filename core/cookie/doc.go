// Package cookie provides HTTP cookie management for the request chain.
//
// The package has two parts: a Jar that accumulates cookie writes across
// middleware hand-offs, and a Manager that builds cookies with configured
// defaults and size validation.
//
// # Cookie Jar
//
// Middleware stages never write Set-Cookie headers directly. Each stage
// records its writes into the request's Jar, and the chain runner applies
// the jar to the ResponseWriter exactly once, before the response body is
// rendered. A redirect built deep in the chain therefore still carries
// cookies set by earlier stages:
//
//	ctx.Cookies().Set(&http.Cookie{Name: "locale", Value: "en"})
//
// # Manager
//
// The Manager applies configured defaults (path, domain, SameSite, Secure)
// to every cookie it builds and rejects cookies above the size limit:
//
//	m := cookie.New(cookie.WithSecure(true))
//	err := m.Set(jar, "locale", "en", cookie.WithMaxAge(31536000))
//
// Manager configuration can be loaded from environment variables via Config.
package cookie

package cookie

import (
	"net/http"
	"slices"
)

// Jar accumulates cookie writes made by middleware stages during a single
// request. Writes are keyed by cookie name with last-write-wins semantics,
// while the original write order is preserved for deterministic output.
//
// Jar is not safe for concurrent use. Each request owns exactly one jar.
type Jar struct {
	order   []string
	cookies map[string]*http.Cookie
}

// NewJar creates an empty cookie jar.
func NewJar() *Jar {
	return &Jar{cookies: make(map[string]*http.Cookie)}
}

// Set records a cookie write. A later write to the same name replaces the
// earlier one but keeps its position in the output order.
func (j *Jar) Set(c *http.Cookie) {
	if c == nil || c.Name == "" {
		return
	}
	if _, ok := j.cookies[c.Name]; !ok {
		j.order = append(j.order, c.Name)
	}
	j.cookies[c.Name] = c
}

// SetAll records multiple cookie writes in order.
func (j *Jar) SetAll(cookies []*http.Cookie) {
	for _, c := range cookies {
		j.Set(c)
	}
}

// Get returns the pending write for name, or nil if none was recorded.
func (j *Jar) Get(name string) *http.Cookie {
	return j.cookies[name]
}

// Delete records a cookie removal (Max-Age -1) for name.
func (j *Jar) Delete(name string, opts ...Option) {
	options := applyOptions(Options{Path: "/"}, opts)
	j.Set(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     options.Path,
		Domain:   options.Domain,
		MaxAge:   -1,
		Secure:   options.Secure,
		HttpOnly: options.HttpOnly,
		SameSite: options.SameSite,
	})
}

// Cookies returns all pending writes in their original write order.
func (j *Jar) Cookies() []*http.Cookie {
	out := make([]*http.Cookie, 0, len(j.order))
	for _, name := range j.order {
		out = append(out, j.cookies[name])
	}
	return out
}

// Merge copies all pending writes from other into j. Writes from other
// override same-name writes already present in j.
func (j *Jar) Merge(other *Jar) {
	if other == nil {
		return
	}
	j.SetAll(other.Cookies())
}

// Has reports whether a write for name is pending.
func (j *Jar) Has(name string) bool {
	return slices.Contains(j.order, name)
}

// Len returns the number of pending writes.
func (j *Jar) Len() int {
	return len(j.order)
}

// Apply writes all pending cookies to the ResponseWriter. It must be called
// before the response status and body are written.
func (j *Jar) Apply(w http.ResponseWriter) {
	for _, name := range j.order {
		http.SetCookie(w, j.cookies[name])
	}
}

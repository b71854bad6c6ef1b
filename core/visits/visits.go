// Package visits records anonymous page views captured by the tracking
// stage. Recording is best-effort: the tracking middleware logs recorder
// failures and never fails the request over them.
package visits

import (
	"context"
	"time"
)

// PageView is a single public page view attributed to a browsing session.
type PageView struct {
	Fingerprint string
	IP          string
	Path        string
	Referrer    string
	UserAgent   string
	At          time.Time
}

// Recorder persists page views for analytics consumers.
type Recorder interface {
	Record(ctx context.Context, view PageView) error
}

// NoopRecorder discards every page view. Used when no analytics backend is
// configured.
type NoopRecorder struct{}

// Record implements Recorder.
func (NoopRecorder) Record(context.Context, PageView) error {
	return nil
}

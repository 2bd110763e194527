// Package health contains health-check glue.
package health

import (
	"context"
	"net/http"
	"time"
)

// Pinger pings an underlying resource.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc ...
type PingFunc func(ctx context.Context) error

// Ping ...
func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// Handler returns a handler which reports 200 when every pinger succeeds
// within the timeout and 503 otherwise.
func Handler(timeout time.Duration, pp ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		for _, p := range pp {
			if err := p.Ping(ctx); err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"ok":false}`))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}
}

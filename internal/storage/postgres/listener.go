package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/mosaicnet/mosaic/internal/entities"
	"github.com/mosaicnet/mosaic/internal/storage"
)

// channel the schema triggers NOTIFY on, see scripts/migrations/postgres.
const notifyChannel = "mosaic_changes"

const (
	minReconnectInterval = 10 * time.Second
	maxReconnectInterval = time.Minute
	pingInterval         = 90 * time.Second
)

type watcher struct {
	dsn string
}

// NewWatcher creates a Watcher over postgres LISTEN/NOTIFY.
func NewWatcher(dsn string) storage.Watcher {
	return watcher{dsn: dsn}
}

type changePayload struct {
	Kind      string   `json:"kind"`
	ID        string   `json:"id"`
	AuthorID  string   `json:"author_id"`
	Likes     []string `json:"likes"`
	Following []string `json:"following"`
	Followers []string `json:"followers"`
	Truncated bool     `json:"truncated"`
}

func (w watcher) Watch(ctx context.Context) (<-chan storage.Change, error) {
	l := pq.NewListener(w.dsn, minReconnectInterval, maxReconnectInterval, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			log.WithError(err).Error("listener connection event")
		}
	})

	if err := l.Listen(notifyChannel); err != nil {
		_ = l.Close()
		return nil, fmt.Errorf("failed to listen %s: %w", notifyChannel, err)
	}

	out := make(chan storage.Change)

	go func() {
		defer close(out)
		defer func() {
			if err := l.Close(); err != nil {
				log.WithError(err).Error("failed to close listener")
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case n := <-l.Notify:
				if n == nil { // connection loss, listener is reconnecting
					continue
				}

				c, err := parseChange(n.Extra)
				if err != nil {
					log.WithError(err).WithField("payload", n.Extra).Error("failed to parse change notification")
					continue
				}

				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			case <-time.After(pingInterval):
				if err := l.Ping(); err != nil {
					log.WithError(err).Error("failed to ping listener connection")
				}
			}
		}
	}()

	return out, nil
}

func parseChange(raw string) (storage.Change, error) {
	var p changePayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return storage.Change{}, fmt.Errorf("failed to unmarshal: %w", err)
	}

	c := storage.Change{
		Kind: storage.ChangeKind(p.Kind),
		ID:   p.ID,
	}

	if p.Truncated {
		// payload exceeded the NOTIFY limit, consumer has to re-read by id
		return c, nil
	}

	switch c.Kind {
	case storage.PostChangeKind:
		c.Post = &entities.Post{
			ID:       p.ID,
			AuthorID: p.AuthorID,
			Likes:    p.Likes,
		}
	case storage.UserChangeKind:
		c.User = &entities.User{
			ID:        p.ID,
			Following: p.Following,
			Followers: p.Followers,
		}
	default:
		return storage.Change{}, fmt.Errorf("unknown change kind %q", p.Kind)
	}

	return c, nil
}

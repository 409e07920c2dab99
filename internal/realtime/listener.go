// internal/realtime/listener.go
package realtime

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

// channel matches the pg_notify channel used by the triggers in
// db/schema.sql. Payload format: "<table>:<business_id>".
const channel = "record_changed"

// Handler receives a change event: which source kind changed and for which
// tenant. BusinessID may be empty when the trigger could not resolve it.
type Handler func(kind, businessID string)

// Listener bridges Postgres LISTEN/NOTIFY into in-process subscriptions, so
// the metrics pipeline re-runs whenever a source table changes. Transport
// details stay here; subscribers only see kind and tenant.
type Listener struct {
	dsn string

	mu       sync.RWMutex
	handlers []Handler
}

func NewListener(dsn string) *Listener {
	return &Listener{dsn: dsn}
}

// Subscribe registers a handler for all future change events. Handlers are
// invoked from the listener goroutine and must not block.
func (l *Listener) Subscribe(fn Handler) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.handlers = append(l.handlers, fn)
}

// Run connects and dispatches notifications until ctx is cancelled. Lost
// connections are retried with a flat backoff; a missed notification only
// delays the next recompute, so there is no replay.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if err := l.listen(ctx); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			log.Warn().Err(err).Msg("realtime listener disconnected, retrying")
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (l *Listener) listen(ctx context.Context) error {
	conn, err := pgx.Connect(ctx, l.dsn)
	if err != nil {
		return err
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, "LISTEN "+channel); err != nil {
		return err
	}
	log.Info().Str("channel", channel).Msg("realtime listener connected")

	for {
		notification, err := conn.WaitForNotification(ctx)
		if err != nil {
			return err
		}
		kind, businessID := parsePayload(notification.Payload)
		l.dispatch(kind, businessID)
	}
}

func (l *Listener) dispatch(kind, businessID string) {
	l.mu.RLock()
	handlers := l.handlers
	l.mu.RUnlock()

	for _, fn := range handlers {
		fn(kind, businessID)
	}
}

func parsePayload(payload string) (kind, businessID string) {
	kind, businessID, _ = strings.Cut(payload, ":")
	return kind, businessID
}

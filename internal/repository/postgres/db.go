package postgres

import (
	"context"
	"database/sql"
	"time"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier = (*sql.DB)(nil)
	_ Querier = (*sql.Tx)(nil)
)

// Readiness probe bounds. The remote is declared unreachable for the current
// operation after readyAttempts failed pings, readyDelay apart.
const (
	readyAttempts = 10
	readyDelay    = 200 * time.Millisecond
)

// Health reports whether the remote store is usable right now. A nil
// database means the remote is unconfigured and never ready, which routes
// every operation to the fallback store.
type Health struct {
	db *sql.DB
}

// NewHealth creates a readiness probe over db. db may be nil.
func NewHealth(db *sql.DB) *Health {
	return &Health{db: db}
}

// Ready pings the remote with bounded retries and a fixed short delay.
// It returns false once every attempt fails or the context ends.
func (h *Health) Ready(ctx context.Context) bool {
	if h == nil || h.db == nil {
		return false
	}
	for attempt := 0; attempt < readyAttempts; attempt++ {
		if err := h.db.PingContext(ctx); err == nil {
			return true
		}
		select {
		case <-ctx.Done():
			return false
		case <-time.After(readyDelay):
		}
	}
	return false
}

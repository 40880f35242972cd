package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"outreach_syncer/internal/domain"
)

// EventStore writes event records into per-namespace target tables. The
// target name is the namespace's storage target, validated at registry load
// time and quoted here.
type EventStore struct {
	db *sqlx.DB
}

func NewEventStore(db *sqlx.DB) *EventStore {
	return &EventStore{db: db}
}

// EnsureTarget creates the target table if it does not exist. Called once at
// startup for every configured namespace.
func (s *EventStore) EnsureTarget(ctx context.Context, target string) error {
	table := pq.QuoteIdentifier(target)
	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			event_key   TEXT PRIMARY KEY,
			user_id     TEXT NOT NULL,
			event_type  TEXT NOT NULL,
			platform    TEXT NOT NULL,
			namespace   TEXT NOT NULL,
			metadata    JSONB,
			occurred_at TIMESTAMPTZ NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, table)

	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create target table %s: %w", target, err)
	}

	idx := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS %s ON %s (platform, occurred_at)",
		pq.QuoteIdentifier(target+"_platform_occurred_at_idx"), table,
	)
	if _, err := s.db.ExecContext(ctx, idx); err != nil {
		return fmt.Errorf("index target table %s: %w", target, err)
	}
	return nil
}

// Upsert inserts a record and reports whether a row was actually written.
// A conflicting event_key leaves the existing row untouched.
func (s *EventStore) Upsert(ctx context.Context, target string, rec *domain.EventRecord) (bool, error) {
	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return false, fmt.Errorf("marshal metadata: %w", err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (event_key, user_id, event_type, platform, namespace, metadata, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (event_key) DO NOTHING`, pq.QuoteIdentifier(target))

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		rec.EventKey,
		rec.UserID,
		rec.EventType,
		rec.Platform,
		rec.Namespace,
		metadata,
		rec.OccurredAt,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// ClearNamespace removes all of one platform's rows from the target table.
func (s *EventStore) ClearNamespace(ctx context.Context, target, platform string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE platform = $1", pq.QuoteIdentifier(target))
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, platform)
	return err
}

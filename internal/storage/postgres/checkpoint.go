package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
)

// CheckpointStore tracks the newest committed activity timestamp per
// platform+namespace. Set never regresses a checkpoint so a partial re-run
// cannot widen the next delta window.
type CheckpointStore struct {
	db *sqlx.DB
}

func NewCheckpointStore(db *sqlx.DB) *CheckpointStore {
	return &CheckpointStore{db: db}
}

func (s *CheckpointStore) Get(ctx context.Context, platform, ns string) (time.Time, error) {
	var ts time.Time
	query := `
		SELECT last_synced_at
		FROM sync_checkpoints
		WHERE platform = $1 AND namespace = $2`

	err := s.db.GetContext(ctx, &ts, query, platform, ns)
	if err == sql.ErrNoRows {
		// Zero time means no checkpoint yet; the planner falls back to
		// its default lookback.
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return ts, nil
}

func (s *CheckpointStore) Set(ctx context.Context, platform, ns string, ts time.Time) error {
	query := `
		INSERT INTO sync_checkpoints (platform, namespace, last_synced_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (platform, namespace) DO UPDATE SET
			last_synced_at = GREATEST(sync_checkpoints.last_synced_at, EXCLUDED.last_synced_at),
			updated_at = now()`

	_, err := s.db.ExecContext(ctx, query, platform, ns, ts)
	return err
}

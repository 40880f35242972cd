package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"outreach_syncer/internal/domain"
)

// ProfileStore keeps one normalized identity row per target+platform+user.
// Re-upserts enrich the row: empty incoming fields never blank out data an
// earlier sync already captured.
type ProfileStore struct {
	db *sqlx.DB
}

func NewProfileStore(db *sqlx.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

func (s *ProfileStore) Upsert(ctx context.Context, target string, profile *domain.UserProfile) error {
	query := `
		INSERT INTO user_profiles (target, user_id, email, first_name, last_name, company, linkedin_url, platform)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (target, platform, user_id) DO UPDATE SET
			email = COALESCE(NULLIF(EXCLUDED.email, ''), user_profiles.email),
			first_name = COALESCE(NULLIF(EXCLUDED.first_name, ''), user_profiles.first_name),
			last_name = COALESCE(NULLIF(EXCLUDED.last_name, ''), user_profiles.last_name),
			company = COALESCE(NULLIF(EXCLUDED.company, ''), user_profiles.company),
			linkedin_url = COALESCE(NULLIF(EXCLUDED.linkedin_url, ''), user_profiles.linkedin_url),
			updated_at = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		target,
		profile.UserID,
		profile.Email,
		profile.FirstName,
		profile.LastName,
		profile.Company,
		profile.LinkedIn,
		profile.Platform,
	)
	return err
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository"
	"github.com/jmoiron/sqlx"
)

const profileColumns = `
	id, user_id, display_name, bio, city,
	COALESCE(array_to_string(interests, ', '), '') AS interests,
	location_lat, location_lon, is_onboarding_complete, created_at
`

// profileRow mirrors the profiles table; location columns are nullable.
type profileRow struct {
	ID                   int       `db:"id"`
	UserID               int       `db:"user_id"`
	DisplayName          string    `db:"display_name"`
	Bio                  *string   `db:"bio"`
	City                 *string   `db:"city"`
	Interests            string    `db:"interests"`
	LocationLat          *float64  `db:"location_lat"`
	LocationLon          *float64  `db:"location_lon"`
	IsOnboardingComplete bool      `db:"is_onboarding_complete"`
	CreatedAt            time.Time `db:"created_at"`
}

func (r profileRow) toDomain() domain.Profile {
	return domain.Profile{
		ID:                   r.ID,
		UserID:               r.UserID,
		DisplayName:          r.DisplayName,
		Bio:                  r.Bio,
		City:                 r.City,
		InterestsText:        r.Interests,
		Location:             domain.NewGeoPoint(r.LocationLat, r.LocationLon),
		IsOnboardingComplete: r.IsOnboardingComplete,
		CreatedAt:            r.CreatedAt,
	}
}

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID int) (*domain.Profile, error) {
	var row profileRow
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &row, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	profile := row.toDomain()
	return &profile, nil
}

// List returns profiles in a stable order (newest first, then id) so that
// ranking ties are reproducible between requests.
func (r *profileRepository) List(ctx context.Context, filter repository.ProfileFilter) ([]domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if filter.ExcludeUserID != 0 {
		query += fmt.Sprintf(" AND user_id <> $%d", argCount)
		args = append(args, filter.ExcludeUserID)
		argCount++
	}

	if filter.OnboardingComplete {
		query += " AND is_onboarding_complete = true"
	}

	if filter.CreatedSince != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", argCount)
		args = append(args, *filter.CreatedSince)
		argCount++
	}

	query += " ORDER BY created_at DESC, id ASC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argCount)
		args = append(args, filter.Limit)
	}

	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, row.toDomain())
	}
	return profiles, nil
}

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

const eventColumns = `id, creator_id, title, location, category, starts_at, created_at`

type eventRepository struct {
	db *sqlx.DB
}

func NewEventRepository(db *sqlx.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (creator_id, title, location, category, starts_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		event.CreatorID, event.Title, event.Location, string(event.Category), event.StartsAt,
	).Scan(&event.ID, &event.CreatedAt)
}

func (r *eventRepository) GetByID(ctx context.Context, id int) (*domain.Event, error) {
	var event domain.Event
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	if err := r.db.GetContext(ctx, &event, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) ListStartingFrom(ctx context.Context, from time.Time, limit int) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE starts_at >= $1 ORDER BY starts_at ASC, id ASC`
	return r.list(ctx, query, from, limit)
}

func (r *eventRepository) ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE created_at >= $1 ORDER BY created_at DESC, id ASC`
	return r.list(ctx, query, since, limit)
}

// list runs a single-bound query; limit <= 0 means no limit.
func (r *eventRepository) list(ctx context.Context, query string, bound time.Time, limit int) ([]domain.Event, error) {
	args := []interface{}{bound}
	query = withLimit(query, limit, &args)

	var events []domain.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}

// withLimit appends a LIMIT placeholder only for positive limits.
func withLimit(query string, limit int, args *[]interface{}) string {
	if limit <= 0 {
		return query
	}
	*args = append(*args, limit)
	return query + fmt.Sprintf(" LIMIT $%d", len(*args))
}

func (r *eventRepository) UpdateCategory(ctx context.Context, id int, category domain.Category) error {
	query := `UPDATE events SET category = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, string(category), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	GetByID(ctx context.Context, id int) (*domain.Event, error)
	ListStartingFrom(ctx context.Context, from time.Time, limit int) ([]domain.Event, error)
	ListCreatedSince(ctx context.Context, since time.Time, limit int) ([]domain.Event, error)
	UpdateCategory(ctx context.Context, id int, category domain.Category) error
}

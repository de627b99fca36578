package repository

import (
	"context"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

// ProfileFilter narrows a profile listing. Zero values mean "no constraint".
type ProfileFilter struct {
	ExcludeUserID      int
	OnboardingComplete bool
	CreatedSince       *time.Time
	Limit              int
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int) (*domain.Profile, error)
	List(ctx context.Context, filter ProfileFilter) ([]domain.Profile, error)
}

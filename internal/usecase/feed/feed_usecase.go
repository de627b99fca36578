package feed

import (
	"context"
	"fmt"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/discovery"
	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/logger"
	"github.com/gdugdh24/mpit2026-discovery/internal/infrastructure/metrics"
	"github.com/gdugdh24/mpit2026-discovery/internal/repository"
)

type FeedUseCase struct {
	profileRepo    repository.ProfileRepository
	candidateLimit int
	windowDays     int
	now            func() time.Time
}

func NewFeedUseCase(
	profileRepo repository.ProfileRepository,
	candidateLimit int,
	windowDays int,
	now func() time.Time,
) *FeedUseCase {
	if now == nil {
		now = time.Now
	}
	return &FeedUseCase{
		profileRepo:    profileRepo,
		candidateLimit: candidateLimit,
		windowDays:     windowDays,
		now:            now,
	}
}

// Recommendations ranks onboarded candidates for the viewer by shared
// interests and returns at most limit of them (all when limit <= 0).
// Only the newest candidateLimit profiles are considered.
func (uc *FeedUseCase) Recommendations(ctx context.Context, viewerUserID int, limit int) ([]domain.RecommendationResult, error) {
	viewer, err := uc.profileRepo.GetByUserID(ctx, viewerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get viewer profile: %w", err)
	}

	candidates, err := uc.profileRepo.List(ctx, repository.ProfileFilter{
		ExcludeUserID:      viewerUserID,
		OnboardingComplete: true,
		Limit:              uc.candidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	ranked := discovery.Rank(candidates, *viewer)
	metrics.RecordRanking("recommendations", len(candidates))

	logger.FromContext(ctx).Debug().
		Int("viewer_user_id", viewerUserID).
		Int("candidates", len(candidates)).
		Msg("ranked recommendations")

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked, nil
}

// Newcomers returns onboarded profiles created within windowDays, newest
// first. windowDays <= 0 falls back to the configured window.
func (uc *FeedUseCase) Newcomers(ctx context.Context, viewerUserID int, windowDays int, limit int) ([]domain.Profile, error) {
	if windowDays <= 0 {
		windowDays = uc.windowDays
	}
	now := uc.now()

	// the query bound is only a coarse pre-filter; the cutoff rule lives in discovery
	since := now.AddDate(0, 0, -windowDays-1)
	profiles, err := uc.profileRepo.List(ctx, repository.ProfileFilter{
		ExcludeUserID:      viewerUserID,
		OnboardingComplete: true,
		CreatedSince:       &since,
		Limit:              uc.candidateLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	recent, err := discovery.FilterRecent(profiles, windowDays, now)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// Distance returns the distance between two caller-supplied points.
func (uc *FeedUseCase) Distance(origin, destination *domain.GeoPoint) (float64, error) {
	return discovery.DistanceStrict(origin, destination)
}

package discovery

import (
	"fmt"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

// DefaultNewcomerWindowDays is how far back "new" reaches when callers don't say.
const DefaultNewcomerWindowDays = 7

// FilterRecent keeps the records created within windowDays calendar days of now.
// The cutoff is inclusive. Records without a usable creation time are dropped.
// Input order is preserved.
func FilterRecent[T domain.Timestamped](records []T, windowDays int, now time.Time) ([]T, error) {
	if windowDays < 0 {
		return nil, fmt.Errorf("%w: window days must not be negative, got %d", domain.ErrInvalidArgument, windowDays)
	}
	cutoff := now.AddDate(0, 0, -windowDays)

	recent := make([]T, 0, len(records))
	for _, r := range records {
		createdAt, ok := r.CreatedAtTime()
		if !ok || createdAt.Before(cutoff) {
			continue
		}
		recent = append(recent, r)
	}
	return recent, nil
}

package domain

import "time"

// Profile is a candidate or viewer record. The discovery engine only reads
// InterestsText, CreatedAt and Location; everything else rides along.
type Profile struct {
	ID                   int            `json:"id" db:"id"`
	UserID               int            `json:"user_id" db:"user_id"`
	DisplayName          string         `json:"display_name" db:"display_name"`
	Bio                  *string        `json:"bio" db:"bio"`
	City                 *string        `json:"city" db:"city"`
	InterestsText        string         `json:"interests" db:"interests"`
	Location             *GeoPoint      `json:"location,omitempty" db:"-"`
	IsOnboardingComplete bool           `json:"is_onboarding_complete" db:"is_onboarding_complete"`
	CreatedAt            time.Time      `json:"created_at" db:"created_at"`
	Extra                map[string]any `json:"extra,omitempty" db:"-"`
}

func (p Profile) CreatedAtTime() (time.Time, bool) {
	return p.CreatedAt, !p.CreatedAt.IsZero()
}

// RecommendationResult is a candidate annotated with its affinity to the viewer.
type RecommendationResult struct {
	Profile
	RecommendationScore int      `json:"recommendation_score"`
	SharedInterests     []string `json:"shared_interests"`
	DistanceKm          *float64 `json:"distance_km,omitempty"`
}

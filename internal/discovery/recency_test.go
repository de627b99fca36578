package discovery

import (
	"testing"
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterRecent_Boundary(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	records := []domain.RawRecord{
		{CreatedAt: "2024-01-03"},
		{CreatedAt: "2024-01-02"},
		{CreatedAt: "2024-01-09T23:00:00Z"},
	}

	got, err := FilterRecent(records, 7, now)
	require.NoError(t, err)
	assert.Equal(t, []domain.RawRecord{{CreatedAt: "2024-01-03"}, {CreatedAt: "2024-01-09T23:00:00Z"}}, got)
}

func TestFilterRecent_DropsMissingAndUnparseable(t *testing.T) {
	now := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	records := []domain.RawRecord{
		{CreatedAt: ""},
		{CreatedAt: "not a date"},
		{CreatedAt: "2024-01-08T12:00:00Z", Fields: map[string]any{"id": 1}},
	}

	got, err := FilterRecent(records, DefaultNewcomerWindowDays, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].Fields["id"])
}

func TestFilterRecent_PreservesOrder(t *testing.T) {
	now := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	profiles := []domain.Profile{
		{ID: 3, CreatedAt: now.AddDate(0, 0, -1)},
		{ID: 1, CreatedAt: now.AddDate(0, 0, -30)},
		{ID: 2, CreatedAt: now.AddDate(0, 0, -6)},
		{ID: 4},
		{ID: 5, CreatedAt: now},
	}

	got, err := FilterRecent(profiles, 7, now)
	require.NoError(t, err)

	ids := make([]int, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int{3, 2, 5}, ids)
}

func TestFilterRecent_ZeroWindowKeepsFromNowOn(t *testing.T) {
	now := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	profiles := []domain.Profile{
		{ID: 1, CreatedAt: now.Add(-time.Minute)},
		{ID: 2, CreatedAt: now},
	}
	got, err := FilterRecent(profiles, 0, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestFilterRecent_NegativeWindow(t *testing.T) {
	_, err := FilterRecent([]domain.Profile{}, -1, time.Now())
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

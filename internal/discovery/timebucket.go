package discovery

import (
	"time"

	"github.com/gdugdh24/mpit2026-discovery/internal/domain"
)

// Bucket labels target relative to now. Rules are checked in order and the
// first match wins, so a weekend date beats the week/month/year labels even
// when it is far away.
//
// Only calendar dates matter; both times are read in now's location.
func Bucket(target, now time.Time) domain.TimeBucket {
	target = target.In(now.Location())
	diff := daysBetween(now, target)

	switch {
	case diff == 0:
		return domain.BucketToday
	case diff == 1:
		return domain.BucketTomorrow
	case target.Weekday() == time.Saturday || target.Weekday() == time.Sunday:
		return domain.BucketThisWeekend
	case diff <= 7:
		return domain.BucketThisWeek
	case diff <= 14:
		return domain.BucketNextWeek
	case target.Year() == now.Year() && target.Month() == now.Month():
		return domain.BucketThisMonth
	case target.Year() == now.Year():
		return domain.BucketThisYear
	default:
		return domain.BucketAnyDay
	}
}

// daysBetween counts whole calendar days from a to b. Dates are re-anchored
// at UTC midnight so DST shifts don't produce 23 or 25 hour days.
func daysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

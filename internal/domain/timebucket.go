package domain

// TimeBucket is a human-relevant label for when something happens.
type TimeBucket string

const (
	BucketToday       TimeBucket = "today"
	BucketTomorrow    TimeBucket = "tomorrow"
	BucketThisWeekend TimeBucket = "this weekend"
	BucketThisWeek    TimeBucket = "this week"
	BucketNextWeek    TimeBucket = "next week"
	BucketThisMonth   TimeBucket = "this month"
	BucketThisYear    TimeBucket = "this year"
	BucketAnyDay      TimeBucket = "any day"
)

// ScheduledEvent is an event with its time label relative to now.
type ScheduledEvent struct {
	Event
	When TimeBucket `json:"when"`
}

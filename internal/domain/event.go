package domain

import "time"

// Event is a user-created happening shown in discovery lists.
type Event struct {
	ID        int            `json:"id" db:"id"`
	CreatorID int            `json:"creator_id" db:"creator_id"`
	Title     string         `json:"title" db:"title"`
	Location  string         `json:"location" db:"location"`
	Category  Category       `json:"category" db:"category"`
	StartsAt  time.Time      `json:"starts_at" db:"starts_at"`
	CreatedAt time.Time      `json:"created_at" db:"created_at"`
	Extra     map[string]any `json:"extra,omitempty" db:"-"`
}

func (e Event) CreatedAtTime() (time.Time, bool) {
	return e.CreatedAt, !e.CreatedAt.IsZero()
}

// Record returns the fields the category classifier reads.
func (e Event) Record() EventRecord {
	return EventRecord{Title: e.Title, Location: e.Location}
}

// EventRecord is the classifier input.
type EventRecord struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

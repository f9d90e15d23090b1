package domain

import "github.com/google/uuid"

// TimedActivity is a scheduled itinerary item. Time is a free-text label
// ("9:00 AM", "Morning") rather than a strict time type; chronological
// display order is derived best-effort by TimeSortKey.
type TimedActivity struct {
	ID       uuid.UUID
	Time     string
	Place    string
	What     string
	Context  string // markdown-capable long-form notes
	Priority Priority

	// Companion metadata for the content-first presentation layer.
	EmotionalTagline string
	UrgentNote       *string
	DontMiss         []string
	PracticalTips    []string

	// Type drives presentation only; edit resolution never consults it.
	Type ActivityType

	// SubActivities are owned exclusively by this activity.
	SubActivities []*SubActivity
}

// UntimedActivity is an itinerary item without a time slot — food stops,
// tips, and other recommendations attached to a day.
type UntimedActivity struct {
	ID       uuid.UUID
	Place    string
	What     string
	Context  string
	Priority Priority

	// Category is an optional label such as "Food" or "Tip".
	Category *string

	EmotionalTagline string
	UrgentNote       *string
	DontMiss         []string
	PracticalTips    []string

	Type ActivityType

	SubActivities []*SubActivity
}

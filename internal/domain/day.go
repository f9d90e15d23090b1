// Package domain contains the core data types for the Wanderlust itinerary
// backend. This package has zero external dependencies beyond uuid and is
// imported by every other internal package (store, snapshot, edit, handler).
package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Day is a single day of the trip itinerary. It owns both activity
// collections exclusively: removing a Day removes every activity under it,
// and removing an activity removes its sub-activities. There is no separate
// Trip entity — the trip is the set of Days, viewed in date order.
type Day struct {
	ID          uuid.UUID
	Date        time.Time
	Destination string

	// TimedActivities is kept in insertion order; display order is
	// chronological by parsed time label (see SortTimed).
	TimedActivities []*TimedActivity

	// UntimedActivities carries food/tip style entries with no time slot.
	UntimedActivities []*UntimedActivity
}

// ActivityCount returns the total number of activities for this day.
func (d *Day) ActivityCount() int {
	return len(d.TimedActivities) + len(d.UntimedActivities)
}

// HasMustDo reports whether any activity on this day is marked must-do.
func (d *Day) HasMustDo() bool {
	for _, a := range d.TimedActivities {
		if a.Priority == PriorityMustDo {
			return true
		}
	}
	for _, a := range d.UntimedActivities {
		if a.Priority == PriorityMustDo {
			return true
		}
	}
	return false
}

// SortDays orders days by date ascending, in place.
// Day indices in edits are only meaningful against this order, and only for
// the lifetime of a single snapshot/edit cycle.
func SortDays(days []*Day) {
	sort.SliceStable(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
}

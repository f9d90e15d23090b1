package domain

import (
	"sort"
	"strconv"
	"strings"
)

// TimeSortKey converts a free-text time label into minutes since midnight
// for display ordering. This is a best-effort heuristic, not a time parser:
// "9:00 AM" → 540, "2 PM" → 840, and labels that do not look like a clock
// time at all ("Morning", "Before lunch") sort first with key 0.
func TimeSortKey(label string) int {
	upper := strings.ToUpper(strings.TrimSpace(label))

	isPM := strings.Contains(upper, "PM")
	isAM := strings.Contains(upper, "AM")
	s := strings.ReplaceAll(upper, "PM", "")
	s = strings.TrimSpace(strings.ReplaceAll(s, "AM", ""))

	hourPart, minutePart, _ := strings.Cut(s, ":")
	hour, err := strconv.Atoi(strings.TrimSpace(hourPart))
	if err != nil {
		return 0
	}
	minute := 0
	if minutePart != "" {
		if m, err := strconv.Atoi(strings.TrimSpace(minutePart)); err == nil {
			minute = m
		}
	}

	if isPM && hour != 12 {
		hour += 12
	}
	if isAM && hour == 12 {
		hour = 0
	}
	return hour*60 + minute
}

// SortTimed orders timed activities chronologically by parsed time label,
// in place. The sort is stable so unparseable labels keep their relative
// insertion order at the front.
func SortTimed(activities []*TimedActivity) {
	sort.SliceStable(activities, func(i, j int) bool {
		return TimeSortKey(activities[i].Time) < TimeSortKey(activities[j].Time)
	})
}

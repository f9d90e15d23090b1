// Package snapshot serializes the document model into the exchange-format
// tree sent to the assistant service. The snapshot is a read-only copy:
// building one never mutates the document, and the document never holds a
// reference back into it. Identifiers are rendered as opaque string tokens
// so the edit resolver can round-trip them, and nothing the resolver may
// need to address is dropped.
package snapshot

import (
	"encoding/json"
	"time"

	"github.com/wanderlust-app/backend/internal/domain"
)

// Itinerary is the root of the exchange-format tree.
type Itinerary struct {
	Days []Day `json:"days"`
}

// Day mirrors domain.Day with dates in RFC 3339 form.
type Day struct {
	ID                string            `json:"id"`
	Date              string            `json:"date"`
	Destination       string            `json:"destination"`
	TimedActivities   []TimedActivity   `json:"timedActivities"`
	UntimedActivities []UntimedActivity `json:"untimedActivities"`
}

// TimedActivity mirrors domain.TimedActivity with the priority rendered as
// one of the three fixed wire tokens.
type TimedActivity struct {
	ID            string        `json:"id"`
	Time          string        `json:"time"`
	Place         string        `json:"place"`
	What          string        `json:"what"`
	Context       string        `json:"context"`
	Priority      string        `json:"priority"`
	SubActivities []SubActivity `json:"subActivities"`
}

// UntimedActivity mirrors domain.UntimedActivity.
type UntimedActivity struct {
	ID            string        `json:"id"`
	Place         string        `json:"place"`
	What          string        `json:"what"`
	Context       string        `json:"context"`
	Priority      string        `json:"priority"`
	Category      *string       `json:"category,omitempty"`
	SubActivities []SubActivity `json:"subActivities"`
}

// SubActivity mirrors domain.SubActivity.
type SubActivity struct {
	ID       string  `json:"id"`
	What     string  `json:"what"`
	Context  string  `json:"context"`
	Priority string  `json:"priority"`
	Place    *string `json:"place,omitempty"`
}

// Build produces the exchange-format tree for the given days.
// Days must already be in the chronological order the caller intends to
// resolve day indices against — Build preserves slice order as-is so index
// stability holds for the whole request/response cycle.
func Build(days []*domain.Day) Itinerary {
	out := Itinerary{Days: make([]Day, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, buildDay(d))
	}
	return out
}

// PrettyJSON renders the itinerary as indented JSON for embedding in the
// assistant prompt.
func (it Itinerary) PrettyJSON() (string, error) {
	b, err := json.MarshalIndent(it, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func buildDay(d *domain.Day) Day {
	out := Day{
		ID:                d.ID.String(),
		Date:              d.Date.UTC().Format(time.RFC3339),
		Destination:       d.Destination,
		TimedActivities:   make([]TimedActivity, 0, len(d.TimedActivities)),
		UntimedActivities: make([]UntimedActivity, 0, len(d.UntimedActivities)),
	}
	for _, a := range d.TimedActivities {
		out.TimedActivities = append(out.TimedActivities, TimedActivity{
			ID:            a.ID.String(),
			Time:          a.Time,
			Place:         a.Place,
			What:          a.What,
			Context:       a.Context,
			Priority:      string(a.Priority),
			SubActivities: buildSubActivities(a.SubActivities),
		})
	}
	for _, a := range d.UntimedActivities {
		out.UntimedActivities = append(out.UntimedActivities, UntimedActivity{
			ID:            a.ID.String(),
			Place:         a.Place,
			What:          a.What,
			Context:       a.Context,
			Priority:      string(a.Priority),
			Category:      a.Category,
			SubActivities: buildSubActivities(a.SubActivities),
		})
	}
	return out
}

func buildSubActivities(subs []*domain.SubActivity) []SubActivity {
	out := make([]SubActivity, 0, len(subs))
	for _, s := range subs {
		out = append(out, SubActivity{
			ID:       s.ID.String(),
			What:     s.What,
			Context:  s.Context,
			Priority: string(s.Priority),
			Place:    s.Place,
		})
	}
	return out
}

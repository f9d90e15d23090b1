// Package importer performs the one-time bulk load of a trip JSON file into
// the document store. It is a batch transform that runs before the edit
// pipeline ever sees the document — the pipeline itself never creates
// entities this way.
package importer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/store"
)

// --- file format ------------------------------------------------------------

type tripFile struct {
	TripName  string      `json:"tripName"`
	Travelers []string    `json:"travelers"`
	Days      []dayRecord `json:"days"`
}

type dayRecord struct {
	Date              string          `json:"date"` // "2006-01-02"
	Destination       string          `json:"destination"`
	TimedActivities   []timedRecord   `json:"timedActivities"`
	UntimedActivities []untimedRecord `json:"untimedActivities"`
}

type timedRecord struct {
	Time          string      `json:"time"`
	Place         string      `json:"place"`
	What          string      `json:"what"`
	Context       string      `json:"context"`
	Priority      string      `json:"priority"`
	SubActivities []subRecord `json:"subActivities"`
}

type untimedRecord struct {
	Place    string  `json:"place"`
	What     string  `json:"what"`
	Context  string  `json:"context"`
	Priority string  `json:"priority"`
	Category *string `json:"category"`
}

type subRecord struct {
	What     string  `json:"what"`
	Context  string  `json:"context"`
	Priority string  `json:"priority"`
	Place    *string `json:"place"`
}

// --- transform --------------------------------------------------------------

// Parse decodes a trip file and builds document entities with fresh
// identifiers. Days whose date does not parse are dropped rather than
// failing the whole import, matching the tolerant load behavior users
// expect from hand-edited trip files.
func Parse(data []byte) ([]*domain.Day, error) {
	var file tripFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	var days []*domain.Day
	for _, rec := range file.Days {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			continue
		}

		day := &domain.Day{
			ID:                uuid.New(),
			Date:              date,
			Destination:       rec.Destination,
			TimedActivities:   []*domain.TimedActivity{},
			UntimedActivities: []*domain.UntimedActivity{},
		}

		for _, a := range rec.TimedActivities {
			timed := &domain.TimedActivity{
				ID:            uuid.New(),
				Time:          a.Time,
				Place:         a.Place,
				What:          a.What,
				Context:       a.Context,
				Priority:      parsePriority(a.Priority),
				Type:          InferActivityType(a.Place, a.What),
				SubActivities: []*domain.SubActivity{},
			}
			for _, s := range a.SubActivities {
				sub := &domain.SubActivity{
					ID:       uuid.New(),
					What:     s.What,
					Context:  s.Context,
					Priority: parsePriority(s.Priority),
				}
				if s.Place != nil {
					p := *s.Place
					sub.Place = &p
				}
				timed.SubActivities = append(timed.SubActivities, sub)
			}
			day.TimedActivities = append(day.TimedActivities, timed)
		}

		for _, a := range rec.UntimedActivities {
			untimed := &domain.UntimedActivity{
				ID:            uuid.New(),
				Place:         a.Place,
				What:          a.What,
				Context:       a.Context,
				Priority:      parsePriority(a.Priority),
				Type:          domain.TypeGeneral,
				SubActivities: []*domain.SubActivity{},
			}
			if a.Category != nil {
				c := *a.Category
				untimed.Category = &c
			}
			day.UntimedActivities = append(day.UntimedActivities, untimed)
		}

		days = append(days, day)
	}

	return days, nil
}

// Seed loads the trip file at path into the store when the store is empty.
// Returns the number of days imported; zero means the store already had
// data or the file held none.
func Seed(ctx context.Context, st store.Store, path string) (int, error) {
	existing, err := st.FetchAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("importer.Seed: %w", err)
	}
	if len(existing) > 0 {
		return 0, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("importer.Seed: read %s: %w", path, err)
	}

	days, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("importer.Seed: %w", err)
	}

	// One Save writes the whole batch; the store was just verified empty.
	if err := st.Save(ctx, days); err != nil {
		return 0, fmt.Errorf("importer.Seed: save: %w", err)
	}
	return len(days), nil
}

// parsePriority tolerates unknown tokens in import files by falling back to
// flexible — stricter validation only applies on the assistant wire.
func parsePriority(s string) domain.Priority {
	if p, ok := domain.ParsePriority(s); ok {
		return p
	}
	return domain.PriorityFlexible
}

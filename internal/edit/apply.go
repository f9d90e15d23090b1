// Package edit resolves decoded edits against the live document model and
// applies them. Application is best-effort per edit, never all-or-nothing:
// an edit that fails to resolve is skipped with a recorded outcome and the
// rest of the set still runs. Partial application is the contract.
package edit

import (
	"slices"

	"github.com/google/uuid"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/domain"
)

// Status is the per-edit result of one Apply pass.
type Status string

const (
	StatusApplied    Status = "applied"
	StatusNotFound   Status = "notFound"
	StatusOutOfRange Status = "outOfRange"
)

// Outcome records what happened to a single edit.
type Outcome struct {
	Index      int                  `json:"index"`
	Kind       assistant.EditKind   `json:"kind"`
	TargetType assistant.TargetType `json:"targetType"`
	TargetID   string               `json:"targetId,omitempty"`
	Status     Status               `json:"status"`
}

// Apply runs every edit in the set against days and returns one outcome per
// edit, in order. The days slice must be in the same chronological order the
// snapshot was built from — dayIndex resolution depends on it.
//
// Edits that land earlier in the set stay applied even when later edits are
// skipped; callers persist whatever state results.
func Apply(days []*domain.Day, set *assistant.EditSet) []Outcome {
	outcomes := make([]Outcome, 0, len(set.Edits))
	for i, e := range set.Edits {
		outcomes = append(outcomes, Outcome{
			Index:      i,
			Kind:       e.Kind,
			TargetType: e.TargetType,
			TargetID:   e.TargetID,
			Status:     applyOne(days, e),
		})
	}
	return outcomes
}

func applyOne(days []*domain.Day, e assistant.Edit) Status {
	if e.DayIndex == nil || *e.DayIndex < 0 || *e.DayIndex >= len(days) {
		return StatusOutOfRange
	}
	day := days[*e.DayIndex]

	switch e.Kind {
	case assistant.KindAdd:
		return applyAdd(day, e)
	case assistant.KindDelete:
		return applyDelete(day, e)
	default:
		return applyModify(day, e)
	}
}

// --- modify -----------------------------------------------------------------

func applyModify(day *domain.Day, e assistant.Edit) Status {
	switch e.TargetType {
	case assistant.TargetTimed:
		a := findTimed(day, e.TargetID)
		if a == nil {
			return StatusNotFound
		}
		setString(&a.Time, e.Changes.Time)
		setString(&a.Place, e.Changes.Place)
		setString(&a.What, e.Changes.What)
		setString(&a.Context, e.Changes.Context)
		setPriority(&a.Priority, e.Changes.Priority)

	case assistant.TargetUntimed:
		a := findUntimed(day, e.TargetID)
		if a == nil {
			return StatusNotFound
		}
		setString(&a.Place, e.Changes.Place)
		setString(&a.What, e.Changes.What)
		setString(&a.Context, e.Changes.Context)
		setPriority(&a.Priority, e.Changes.Priority)

	case assistant.TargetSub:
		s := findSub(day, e.TargetID)
		if s == nil {
			return StatusNotFound
		}
		setString(&s.What, e.Changes.What)
		setString(&s.Context, e.Changes.Context)
		setPriority(&s.Priority, e.Changes.Priority)
		if e.Changes.Place != nil {
			p := *e.Changes.Place
			s.Place = &p
		}
	}
	return StatusApplied
}

// --- add --------------------------------------------------------------------

// applyAdd constructs a fresh entity from the changes and appends it. A new
// identifier is always minted; for activity targets the model's targetId is
// ignored. The one exception is sub-activities: a day owns no sub-activity
// collection, so targetId names the parent activity to attach to.
func applyAdd(day *domain.Day, e assistant.Edit) Status {
	switch e.TargetType {
	case assistant.TargetTimed:
		day.TimedActivities = append(day.TimedActivities, &domain.TimedActivity{
			ID:       uuid.New(),
			Time:     orEmpty(e.Changes.Time),
			Place:    orEmpty(e.Changes.Place),
			What:     orEmpty(e.Changes.What),
			Context:  orEmpty(e.Changes.Context),
			Priority: orFlexible(e.Changes.Priority),
			Type:     domain.TypeGeneral,
		})

	case assistant.TargetUntimed:
		day.UntimedActivities = append(day.UntimedActivities, &domain.UntimedActivity{
			ID:       uuid.New(),
			Place:    orEmpty(e.Changes.Place),
			What:     orEmpty(e.Changes.What),
			Context:  orEmpty(e.Changes.Context),
			Priority: orFlexible(e.Changes.Priority),
			Type:     domain.TypeGeneral,
		})

	case assistant.TargetSub:
		sub := &domain.SubActivity{
			ID:       uuid.New(),
			What:     orEmpty(e.Changes.What),
			Context:  orEmpty(e.Changes.Context),
			Priority: orFlexible(e.Changes.Priority),
		}
		if e.Changes.Place != nil {
			p := *e.Changes.Place
			sub.Place = &p
		}
		if a := findTimed(day, e.TargetID); a != nil {
			a.SubActivities = append(a.SubActivities, sub)
			return StatusApplied
		}
		if a := findUntimed(day, e.TargetID); a != nil {
			a.SubActivities = append(a.SubActivities, sub)
			return StatusApplied
		}
		return StatusNotFound
	}
	return StatusApplied
}

// --- delete -----------------------------------------------------------------

// applyDelete removes the resolved entity from its owning collection.
// Removing an activity removes its sub-activities with it — they live only
// in the removed node's slice, so the cascade is structural.
func applyDelete(day *domain.Day, e assistant.Edit) Status {
	switch e.TargetType {
	case assistant.TargetTimed:
		for i, a := range day.TimedActivities {
			if a.ID.String() == e.TargetID {
				day.TimedActivities = slices.Delete(day.TimedActivities, i, i+1)
				return StatusApplied
			}
		}

	case assistant.TargetUntimed:
		for i, a := range day.UntimedActivities {
			if a.ID.String() == e.TargetID {
				day.UntimedActivities = slices.Delete(day.UntimedActivities, i, i+1)
				return StatusApplied
			}
		}

	case assistant.TargetSub:
		for _, a := range day.TimedActivities {
			for i, s := range a.SubActivities {
				if s.ID.String() == e.TargetID {
					a.SubActivities = slices.Delete(a.SubActivities, i, i+1)
					return StatusApplied
				}
			}
		}
		for _, a := range day.UntimedActivities {
			for i, s := range a.SubActivities {
				if s.ID.String() == e.TargetID {
					a.SubActivities = slices.Delete(a.SubActivities, i, i+1)
					return StatusApplied
				}
			}
		}
	}
	return StatusNotFound
}

// --- resolution helpers -----------------------------------------------------

func findTimed(day *domain.Day, id string) *domain.TimedActivity {
	for _, a := range day.TimedActivities {
		if a.ID.String() == id {
			return a
		}
	}
	return nil
}

func findUntimed(day *domain.Day, id string) *domain.UntimedActivity {
	for _, a := range day.UntimedActivities {
		if a.ID.String() == id {
			return a
		}
	}
	return nil
}

// findSub scans the sub-activity sequences of every activity in the day,
// ownership-agnostic, and returns the first match.
func findSub(day *domain.Day, id string) *domain.SubActivity {
	for _, a := range day.TimedActivities {
		for _, s := range a.SubActivities {
			if s.ID.String() == id {
				return s
			}
		}
	}
	for _, a := range day.UntimedActivities {
		for _, s := range a.SubActivities {
			if s.ID.String() == id {
				return s
			}
		}
	}
	return nil
}

// setString overwrites dst when the change is non-nil.
func setString(dst *string, change *string) {
	if change != nil {
		*dst = *change
	}
}

// setPriority maps the token through the fixed enum; unrecognized tokens
// leave the existing priority unchanged.
func setPriority(dst *domain.Priority, change *string) {
	if change == nil {
		return
	}
	if p, ok := domain.ParsePriority(*change); ok {
		*dst = p
	}
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func orFlexible(p *string) domain.Priority {
	if p != nil {
		if parsed, ok := domain.ParsePriority(*p); ok {
			return parsed
		}
	}
	return domain.PriorityFlexible
}

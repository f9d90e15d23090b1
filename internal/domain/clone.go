package domain

import "slices"

// Clone returns a deep copy of the day and everything it owns. Stores hand
// out clones so readers never share entities with an apply pass mutating
// the document.
func (d *Day) Clone() *Day {
	out := &Day{
		ID:                d.ID,
		Date:              d.Date,
		Destination:       d.Destination,
		TimedActivities:   make([]*TimedActivity, 0, len(d.TimedActivities)),
		UntimedActivities: make([]*UntimedActivity, 0, len(d.UntimedActivities)),
	}
	for _, a := range d.TimedActivities {
		out.TimedActivities = append(out.TimedActivities, a.Clone())
	}
	for _, a := range d.UntimedActivities {
		out.UntimedActivities = append(out.UntimedActivities, a.Clone())
	}
	return out
}

// Clone returns a deep copy of the activity and its sub-activities.
func (a *TimedActivity) Clone() *TimedActivity {
	return &TimedActivity{
		ID:               a.ID,
		Time:             a.Time,
		Place:            a.Place,
		What:             a.What,
		Context:          a.Context,
		Priority:         a.Priority,
		EmotionalTagline: a.EmotionalTagline,
		UrgentNote:       cloneStringPtr(a.UrgentNote),
		DontMiss:         slices.Clone(a.DontMiss),
		PracticalTips:    slices.Clone(a.PracticalTips),
		Type:             a.Type,
		SubActivities:    cloneSubActivities(a.SubActivities),
	}
}

// Clone returns a deep copy of the activity and its sub-activities.
func (a *UntimedActivity) Clone() *UntimedActivity {
	return &UntimedActivity{
		ID:               a.ID,
		Place:            a.Place,
		What:             a.What,
		Context:          a.Context,
		Priority:         a.Priority,
		Category:         cloneStringPtr(a.Category),
		EmotionalTagline: a.EmotionalTagline,
		UrgentNote:       cloneStringPtr(a.UrgentNote),
		DontMiss:         slices.Clone(a.DontMiss),
		PracticalTips:    slices.Clone(a.PracticalTips),
		Type:             a.Type,
		SubActivities:    cloneSubActivities(a.SubActivities),
	}
}

// Clone returns a copy of the sub-activity.
func (s *SubActivity) Clone() *SubActivity {
	return &SubActivity{
		ID:       s.ID,
		What:     s.What,
		Context:  s.Context,
		Priority: s.Priority,
		Place:    cloneStringPtr(s.Place),
	}
}

func cloneSubActivities(subs []*SubActivity) []*SubActivity {
	out := make([]*SubActivity, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.Clone())
	}
	return out
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

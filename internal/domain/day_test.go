package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestDay_ActivityCount(t *testing.T) {
	d := &Day{
		TimedActivities:   []*TimedActivity{{ID: uuid.New()}, {ID: uuid.New()}},
		UntimedActivities: []*UntimedActivity{{ID: uuid.New()}},
	}
	assert.Equal(t, 3, d.ActivityCount())
	assert.Zero(t, (&Day{}).ActivityCount())
}

func TestDay_HasMustDo(t *testing.T) {
	d := &Day{
		TimedActivities:   []*TimedActivity{{Priority: PriorityFlexible}},
		UntimedActivities: []*UntimedActivity{{Priority: PrioritySkip}},
	}
	assert.False(t, d.HasMustDo())

	d.UntimedActivities[0].Priority = PriorityMustDo
	assert.True(t, d.HasMustDo())
}

func TestSortDays(t *testing.T) {
	days := []*Day{
		{Destination: "C", Date: time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)},
		{Destination: "A", Date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)},
		{Destination: "B", Date: time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC)},
	}

	SortDays(days)

	assert.Equal(t, "A", days[0].Destination)
	assert.Equal(t, "B", days[1].Destination)
	assert.Equal(t, "C", days[2].Destination)
}

func TestParsePriority(t *testing.T) {
	p, ok := ParsePriority("mustDo")
	assert.True(t, ok)
	assert.Equal(t, PriorityMustDo, p)

	_, ok = ParsePriority("MUSTDO")
	assert.False(t, ok, "tokens are case-sensitive")

	_, ok = ParsePriority("")
	assert.False(t, ok)
}

func TestPriority_DisplayName(t *testing.T) {
	assert.Equal(t, "Must-Do", PriorityMustDo.DisplayName())
	assert.Equal(t, "Flexible", PriorityFlexible.DisplayName())
	assert.Equal(t, "Skip", PrioritySkip.DisplayName())
	assert.Equal(t, "Flexible", Priority("bogus").DisplayName())
}

package snapshot_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/snapshot"
)

func TestBuild_preservesOrderAndIDs(t *testing.T) {
	dayID := uuid.New()
	timedID := uuid.New()
	subID := uuid.New()
	untimedID := uuid.New()

	days := []*domain.Day{
		{
			ID:          dayID,
			Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
			Destination: "Kyoto",
			TimedActivities: []*domain.TimedActivity{
				{
					ID:       timedID,
					Time:     "9:00 AM",
					Place:    "Fushimi Inari",
					What:     "Torii gate hike",
					Context:  "Go early to beat the crowds",
					Priority: domain.PriorityMustDo,
					Type:     domain.TypeShrine,
					SubActivities: []*domain.SubActivity{
						{ID: subID, What: "Summit viewpoint", Priority: domain.PriorityFlexible},
					},
				},
			},
			UntimedActivities: []*domain.UntimedActivity{
				{
					ID:       untimedID,
					Place:    "Nishiki Market",
					What:     "Snack crawl",
					Priority: domain.PrioritySkip,
					Type:     domain.TypeRestaurant,
				},
			},
		},
		{
			ID:          uuid.New(),
			Date:        time.Date(2026, 4, 11, 0, 0, 0, 0, time.UTC),
			Destination: "Nara",
		},
	}

	it := snapshot.Build(days)

	require.Len(t, it.Days, 2)
	assert.Equal(t, dayID.String(), it.Days[0].ID)
	assert.Equal(t, "2026-04-10T00:00:00Z", it.Days[0].Date)
	assert.Equal(t, "Kyoto", it.Days[0].Destination)
	assert.Equal(t, "Nara", it.Days[1].Destination, "slice order is preserved as-is")

	require.Len(t, it.Days[0].TimedActivities, 1)
	ta := it.Days[0].TimedActivities[0]
	assert.Equal(t, timedID.String(), ta.ID)
	assert.Equal(t, "9:00 AM", ta.Time)
	assert.Equal(t, "mustDo", ta.Priority)
	require.Len(t, ta.SubActivities, 1)
	assert.Equal(t, subID.String(), ta.SubActivities[0].ID)

	require.Len(t, it.Days[0].UntimedActivities, 1)
	assert.Equal(t, "skip", it.Days[0].UntimedActivities[0].Priority)
}

func TestBuild_doesNotMutateDocument(t *testing.T) {
	day := &domain.Day{
		ID:          uuid.New(),
		Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Destination: "Kyoto",
		TimedActivities: []*domain.TimedActivity{
			{ID: uuid.New(), What: "original", Priority: domain.PriorityFlexible},
		},
	}

	it := snapshot.Build([]*domain.Day{day})
	it.Days[0].Destination = "changed"
	it.Days[0].TimedActivities[0].What = "changed"

	assert.Equal(t, "Kyoto", day.Destination)
	assert.Equal(t, "original", day.TimedActivities[0].What)
}

// Empty collections serialize as [] rather than null so the assistant always
// sees well-formed arrays.
func TestBuild_emptyCollectionsAreArrays(t *testing.T) {
	days := []*domain.Day{{
		ID:   uuid.New(),
		Date: time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
	}}

	pretty, err := snapshot.Build(days).PrettyJSON()

	require.NoError(t, err)
	assert.Contains(t, pretty, `"timedActivities": []`)
	assert.Contains(t, pretty, `"untimedActivities": []`)
	assert.NotContains(t, pretty, "null")
}

// TestBuild_wireShape pins the exchange field names the assistant schema
// depends on.
func TestBuild_wireShape(t *testing.T) {
	place := "rooftop"
	days := []*domain.Day{{
		ID:          uuid.New(),
		Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Destination: "Kyoto",
		UntimedActivities: []*domain.UntimedActivity{
			{
				ID:       uuid.New(),
				What:     "Evening drinks",
				Priority: domain.PriorityFlexible,
				SubActivities: []*domain.SubActivity{
					{ID: uuid.New(), What: "Catch sunset", Priority: domain.PriorityMustDo, Place: &place},
				},
			},
		},
	}}

	raw, err := json.Marshal(snapshot.Build(days))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	dayList := decoded["days"].([]any)
	require.Len(t, dayList, 1)
	dayObj := dayList[0].(map[string]any)
	for _, key := range []string{"id", "date", "destination", "timedActivities", "untimedActivities"} {
		assert.Contains(t, dayObj, key)
	}

	untimed := dayObj["untimedActivities"].([]any)[0].(map[string]any)
	assert.NotContains(t, untimed, "category", "nil category is omitted")

	sub := untimed["subActivities"].([]any)[0].(map[string]any)
	assert.Equal(t, "rooftop", sub["place"])
	assert.Equal(t, "mustDo", sub["priority"])
}

func TestPrettyJSON_indented(t *testing.T) {
	pretty, err := snapshot.Build(nil).PrettyJSON()

	require.NoError(t, err)
	assert.Equal(t, "{\n  \"days\": []\n}", pretty)
}

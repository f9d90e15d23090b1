package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/store"
	"github.com/wanderlust-app/backend/migrations"
	"github.com/wanderlust-app/backend/testutil"
)

// newPGStore migrates the test database, truncates the document, and returns
// a store over it. Skipped when TEST_DATABASE_URL is not set.
func newPGStore(t *testing.T) *store.PGStore {
	t.Helper()

	db := testutil.NewSQLDB(t)
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	require.NoError(t, err)
	_, err = provider.Up(context.Background())
	require.NoError(t, err)

	pool := testutil.NewPool(t)
	_, err = pool.Exec(context.Background(), `DELETE FROM days`)
	require.NoError(t, err)

	return store.NewPGStore(pool)
}

// fullDay builds a day exercising every persisted field, optional and array
// columns included.
func fullDay() *domain.Day {
	urgent := "Last entry 4:30 PM"
	subPlace := "Denon wing"
	category := "stroll"
	return &domain.Day{
		ID:          uuid.New(),
		Date:        time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC),
		Destination: "Paris",
		TimedActivities: []*domain.TimedActivity{
			{
				ID:               uuid.New(),
				Time:             "9:00 AM",
				Place:            "Louvre",
				What:             "Museum morning",
				Context:          "Pre-booked tickets",
				Priority:         domain.PriorityMustDo,
				EmotionalTagline: "Where art history lives",
				UrgentNote:       &urgent,
				DontMiss:         []string{"Mona Lisa", "Winged Victory"},
				PracticalTips:    []string{"Enter via Porte des Lions"},
				Type:             domain.TypeMuseum,
				SubActivities: []*domain.SubActivity{
					{ID: uuid.New(), What: "Mona Lisa", Priority: domain.PriorityMustDo, Place: &subPlace},
					{ID: uuid.New(), What: "Sculpture hall", Priority: domain.PriorityFlexible},
				},
			},
		},
		UntimedActivities: []*domain.UntimedActivity{
			{
				ID:       uuid.New(),
				Place:    "Le Marais",
				What:     "Café hopping",
				Priority: domain.PriorityFlexible,
				Category: &category,
				Type:     domain.TypeNeighborhood,
				SubActivities: []*domain.SubActivity{
					{ID: uuid.New(), What: "Try a canelé", Priority: domain.PrioritySkip},
				},
			},
		},
	}
}

// TestPGStore_roundTrip is an integration test covering insert and fetch of
// the whole document tree.
func TestPGStore_roundTrip(t *testing.T) {
	st := newPGStore(t)
	ctx := context.Background()

	want := fullDay()
	require.NoError(t, st.Insert(ctx, want))

	days, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)

	got := days[0]
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "Paris", got.Destination)
	assert.True(t, want.Date.Equal(got.Date), "date survives the round trip")

	require.Len(t, got.TimedActivities, 1)
	ta := got.TimedActivities[0]
	assert.Equal(t, want.TimedActivities[0].ID, ta.ID)
	assert.Equal(t, "9:00 AM", ta.Time)
	assert.Equal(t, domain.PriorityMustDo, ta.Priority)
	assert.Equal(t, domain.TypeMuseum, ta.Type)
	require.NotNil(t, ta.UrgentNote)
	assert.Equal(t, "Last entry 4:30 PM", *ta.UrgentNote)
	assert.Equal(t, []string{"Mona Lisa", "Winged Victory"}, ta.DontMiss)

	require.Len(t, ta.SubActivities, 2)
	assert.Equal(t, "Mona Lisa", ta.SubActivities[0].What)
	require.NotNil(t, ta.SubActivities[0].Place)
	assert.Equal(t, "Denon wing", *ta.SubActivities[0].Place)
	assert.Nil(t, ta.SubActivities[1].Place)

	require.Len(t, got.UntimedActivities, 1)
	ua := got.UntimedActivities[0]
	require.NotNil(t, ua.Category)
	assert.Equal(t, "stroll", *ua.Category)
	require.Len(t, ua.SubActivities, 1)
	assert.Equal(t, domain.PrioritySkip, ua.SubActivities[0].Priority)
}

// TestPGStore_fetchOrdersByDate verifies the date ordering contract the edit
// pipeline's day indices rely on.
func TestPGStore_fetchOrdersByDate(t *testing.T) {
	st := newPGStore(t)
	ctx := context.Background()

	later := fullDay()
	later.Date = time.Date(2026, 4, 12, 0, 0, 0, 0, time.UTC)
	later.Destination = "Amsterdam"
	regenerateIDs(later)
	require.NoError(t, st.Insert(ctx, later))

	earlier := fullDay()
	earlier.Date = time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC)
	earlier.Destination = "London"
	regenerateIDs(earlier)
	require.NoError(t, st.Insert(ctx, earlier))

	days, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, days, 2)
	assert.Equal(t, "London", days[0].Destination)
	assert.Equal(t, "Amsterdam", days[1].Destination)
}

// TestPGStore_saveReplacesDocument verifies that Save is a full replace:
// previously stored days disappear and the cascade clears their children.
func TestPGStore_saveReplacesDocument(t *testing.T) {
	st := newPGStore(t)
	ctx := context.Background()

	original := fullDay()
	require.NoError(t, st.Insert(ctx, original))

	replacement := fullDay()
	replacement.Destination = "Lisbon"
	regenerateIDs(replacement)
	require.NoError(t, st.Save(ctx, []*domain.Day{replacement}))

	days, err := st.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, "Lisbon", days[0].Destination)
	assert.Equal(t, replacement.ID, days[0].ID)
}

// regenerateIDs mints fresh identifiers so a copied fixture can coexist with
// the original under primary key constraints.
func regenerateIDs(d *domain.Day) {
	d.ID = uuid.New()
	for _, a := range d.TimedActivities {
		a.ID = uuid.New()
		for _, s := range a.SubActivities {
			s.ID = uuid.New()
		}
	}
	for _, a := range d.UntimedActivities {
		a.ID = uuid.New()
		for _, s := range a.SubActivities {
			s.ID = uuid.New()
		}
	}
}

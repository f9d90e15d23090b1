package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wanderlust-app/backend/internal/domain"
)

// PGStore is the Postgres implementation of Store. The document is written
// whole on Save — it is a single-owner tree of at most a few hundred rows,
// so replace-all inside one transaction is simpler and safer than diffing.
// Foreign keys carry ON DELETE CASCADE so the database mirrors the model's
// top-down ownership.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewPGStore constructs a PGStore backed by the provided connection pool.
func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// FetchAll loads the whole document: days ordered by date, children ordered
// by their stored position.
func (s *PGStore) FetchAll(ctx context.Context) ([]*domain.Day, error) {
	days, index, err := s.fetchDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("store.PGStore.FetchAll: %w", err)
	}

	timedIndex := map[uuid.UUID]*domain.TimedActivity{}
	untimedIndex := map[uuid.UUID]*domain.UntimedActivity{}

	if err := s.fetchTimed(ctx, index, timedIndex); err != nil {
		return nil, fmt.Errorf("store.PGStore.FetchAll: %w", err)
	}
	if err := s.fetchUntimed(ctx, index, untimedIndex); err != nil {
		return nil, fmt.Errorf("store.PGStore.FetchAll: %w", err)
	}
	if err := s.fetchSubs(ctx, timedIndex, untimedIndex); err != nil {
		return nil, fmt.Errorf("store.PGStore.FetchAll: %w", err)
	}

	return days, nil
}

// Insert persists a single day and its children in one transaction.
func (s *PGStore) Insert(ctx context.Context, day *domain.Day) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("store.PGStore.Insert: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := insertDay(ctx, tx, day); err != nil {
		return fmt.Errorf("store.PGStore.Insert: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("store.PGStore.Insert: commit: %w", err)
	}
	return nil
}

// Save replaces the stored document with the given day sequence.
func (s *PGStore) Save(ctx context.Context, days []*domain.Day) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("store.PGStore.Save: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	// Cascades clear activities and sub-activities along with the days.
	if _, err := tx.Exec(ctx, `DELETE FROM days`); err != nil {
		return fmt.Errorf("store.PGStore.Save: clear: %w", err)
	}
	for _, day := range days {
		if err := insertDay(ctx, tx, day); err != nil {
			return fmt.Errorf("store.PGStore.Save: %w", err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("store.PGStore.Save: commit: %w", err)
	}
	return nil
}

// --- reads ------------------------------------------------------------------

func (s *PGStore) fetchDays(ctx context.Context) ([]*domain.Day, map[uuid.UUID]*domain.Day, error) {
	const q = `
		SELECT id, date, destination
		FROM days
		ORDER BY date ASC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var days []*domain.Day
	index := map[uuid.UUID]*domain.Day{}
	for rows.Next() {
		var (
			d  domain.Day
			id pgtype.UUID
		)
		if err := rows.Scan(&id, &d.Date, &d.Destination); err != nil {
			return nil, nil, fmt.Errorf("scan day: %w", err)
		}
		d.ID = uuid.UUID(id.Bytes)
		d.TimedActivities = []*domain.TimedActivity{}
		d.UntimedActivities = []*domain.UntimedActivity{}
		days = append(days, &d)
		index[d.ID] = &d
	}
	return days, index, rows.Err()
}

func (s *PGStore) fetchTimed(ctx context.Context, days map[uuid.UUID]*domain.Day, out map[uuid.UUID]*domain.TimedActivity) error {
	const q = `
		SELECT id, day_id, time_label, place, what, context, priority,
		       emotional_tagline, urgent_note, dont_miss, practical_tips, activity_type
		FROM timed_activities
		ORDER BY day_id, position`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a          domain.TimedActivity
			id, dayID  pgtype.UUID
			priority   string
			urgentNote pgtype.Text
			actType    string
		)
		if err := rows.Scan(&id, &dayID, &a.Time, &a.Place, &a.What, &a.Context, &priority,
			&a.EmotionalTagline, &urgentNote, &a.DontMiss, &a.PracticalTips, &actType); err != nil {
			return fmt.Errorf("scan timed activity: %w", err)
		}
		a.ID = uuid.UUID(id.Bytes)
		a.Priority = parsePriorityColumn(priority)
		a.Type = domain.ParseActivityType(actType)
		if urgentNote.Valid {
			n := urgentNote.String
			a.UrgentNote = &n
		}
		a.SubActivities = []*domain.SubActivity{}

		day, ok := days[uuid.UUID(dayID.Bytes)]
		if !ok {
			continue
		}
		day.TimedActivities = append(day.TimedActivities, &a)
		out[a.ID] = &a
	}
	return rows.Err()
}

func (s *PGStore) fetchUntimed(ctx context.Context, days map[uuid.UUID]*domain.Day, out map[uuid.UUID]*domain.UntimedActivity) error {
	const q = `
		SELECT id, day_id, place, what, context, priority, category,
		       emotional_tagline, urgent_note, dont_miss, practical_tips, activity_type
		FROM untimed_activities
		ORDER BY day_id, position`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			a          domain.UntimedActivity
			id, dayID  pgtype.UUID
			priority   string
			category   pgtype.Text
			urgentNote pgtype.Text
			actType    string
		)
		if err := rows.Scan(&id, &dayID, &a.Place, &a.What, &a.Context, &priority, &category,
			&a.EmotionalTagline, &urgentNote, &a.DontMiss, &a.PracticalTips, &actType); err != nil {
			return fmt.Errorf("scan untimed activity: %w", err)
		}
		a.ID = uuid.UUID(id.Bytes)
		a.Priority = parsePriorityColumn(priority)
		a.Type = domain.ParseActivityType(actType)
		if category.Valid {
			c := category.String
			a.Category = &c
		}
		if urgentNote.Valid {
			n := urgentNote.String
			a.UrgentNote = &n
		}
		a.SubActivities = []*domain.SubActivity{}

		day, ok := days[uuid.UUID(dayID.Bytes)]
		if !ok {
			continue
		}
		day.UntimedActivities = append(day.UntimedActivities, &a)
		out[a.ID] = &a
	}
	return rows.Err()
}

func (s *PGStore) fetchSubs(ctx context.Context, timed map[uuid.UUID]*domain.TimedActivity, untimed map[uuid.UUID]*domain.UntimedActivity) error {
	const q = `
		SELECT id, timed_activity_id, untimed_activity_id, what, context, priority, place
		FROM sub_activities
		ORDER BY position`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sub                domain.SubActivity
			id                 pgtype.UUID
			timedID, untimedID pgtype.UUID
			priority           string
			place              pgtype.Text
		)
		if err := rows.Scan(&id, &timedID, &untimedID, &sub.What, &sub.Context, &priority, &place); err != nil {
			return fmt.Errorf("scan sub-activity: %w", err)
		}
		sub.ID = uuid.UUID(id.Bytes)
		sub.Priority = parsePriorityColumn(priority)
		if place.Valid {
			p := place.String
			sub.Place = &p
		}

		switch {
		case timedID.Valid:
			if parent, ok := timed[uuid.UUID(timedID.Bytes)]; ok {
				parent.SubActivities = append(parent.SubActivities, &sub)
			}
		case untimedID.Valid:
			if parent, ok := untimed[uuid.UUID(untimedID.Bytes)]; ok {
				parent.SubActivities = append(parent.SubActivities, &sub)
			}
		}
	}
	return rows.Err()
}

// --- writes -----------------------------------------------------------------

func insertDay(ctx context.Context, tx pgx.Tx, day *domain.Day) error {
	const q = `
		INSERT INTO days (id, date, destination)
		VALUES (@id, @date, @destination)`

	_, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"id":          day.ID,
		"date":        day.Date,
		"destination": day.Destination,
	})
	if err != nil {
		return fmt.Errorf("insert day: %w", err)
	}

	for i, a := range day.TimedActivities {
		if err := insertTimed(ctx, tx, day.ID, i, a); err != nil {
			return err
		}
	}
	for i, a := range day.UntimedActivities {
		if err := insertUntimed(ctx, tx, day.ID, i, a); err != nil {
			return err
		}
	}
	return nil
}

func insertTimed(ctx context.Context, tx pgx.Tx, dayID uuid.UUID, position int, a *domain.TimedActivity) error {
	const q = `
		INSERT INTO timed_activities
			(id, day_id, time_label, place, what, context, priority,
			 emotional_tagline, urgent_note, dont_miss, practical_tips, activity_type, position)
		VALUES
			(@id, @day_id, @time_label, @place, @what, @context, @priority,
			 @emotional_tagline, @urgent_note, @dont_miss, @practical_tips, @activity_type, @position)`

	_, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"id":                a.ID,
		"day_id":            dayID,
		"time_label":        a.Time,
		"place":             a.Place,
		"what":              a.What,
		"context":           a.Context,
		"priority":          string(a.Priority),
		"emotional_tagline": a.EmotionalTagline,
		"urgent_note":       a.UrgentNote, // nil becomes NULL
		"dont_miss":         textArray(a.DontMiss),
		"practical_tips":    textArray(a.PracticalTips),
		"activity_type":     string(a.Type),
		"position":          position,
	})
	if err != nil {
		return fmt.Errorf("insert timed activity: %w", err)
	}

	for i, sub := range a.SubActivities {
		if err := insertSub(ctx, tx, &a.ID, nil, i, sub); err != nil {
			return err
		}
	}
	return nil
}

func insertUntimed(ctx context.Context, tx pgx.Tx, dayID uuid.UUID, position int, a *domain.UntimedActivity) error {
	const q = `
		INSERT INTO untimed_activities
			(id, day_id, place, what, context, priority, category,
			 emotional_tagline, urgent_note, dont_miss, practical_tips, activity_type, position)
		VALUES
			(@id, @day_id, @place, @what, @context, @priority, @category,
			 @emotional_tagline, @urgent_note, @dont_miss, @practical_tips, @activity_type, @position)`

	_, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"id":                a.ID,
		"day_id":            dayID,
		"place":             a.Place,
		"what":              a.What,
		"context":           a.Context,
		"priority":          string(a.Priority),
		"category":          a.Category,
		"emotional_tagline": a.EmotionalTagline,
		"urgent_note":       a.UrgentNote,
		"dont_miss":         textArray(a.DontMiss),
		"practical_tips":    textArray(a.PracticalTips),
		"activity_type":     string(a.Type),
		"position":          position,
	})
	if err != nil {
		return fmt.Errorf("insert untimed activity: %w", err)
	}

	for i, sub := range a.SubActivities {
		if err := insertSub(ctx, tx, nil, &a.ID, i, sub); err != nil {
			return err
		}
	}
	return nil
}

func insertSub(ctx context.Context, tx pgx.Tx, timedID, untimedID *uuid.UUID, position int, sub *domain.SubActivity) error {
	const q = `
		INSERT INTO sub_activities
			(id, timed_activity_id, untimed_activity_id, what, context, priority, place, position)
		VALUES
			(@id, @timed_activity_id, @untimed_activity_id, @what, @context, @priority, @place, @position)`

	_, err := tx.Exec(ctx, q, pgx.NamedArgs{
		"id":                  sub.ID,
		"timed_activity_id":   timedID,
		"untimed_activity_id": untimedID,
		"what":                sub.What,
		"context":             sub.Context,
		"priority":            string(sub.Priority),
		"place":               sub.Place,
		"position":            position,
	})
	if err != nil {
		return fmt.Errorf("insert sub-activity: %w", err)
	}
	return nil
}

// parsePriorityColumn maps a stored priority token, defaulting to flexible
// for anything out of band rather than failing the whole load.
func parsePriorityColumn(s string) domain.Priority {
	if p, ok := domain.ParsePriority(s); ok {
		return p
	}
	return domain.PriorityFlexible
}

// textArray keeps NOT NULL text[] columns happy when the slice is nil.
func textArray(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

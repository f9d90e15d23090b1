package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/wanderlust-app/backend/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"day_id", "day_date", "destination",
	"activity_id", "activity_kind", "time", "place", "what", "priority",
	"category", "sub_activity_count",
}

// exportRow is a single row of the flat export. Timed activities come first
// in display (chronological) order, then untimed ones; days with no
// activities yield one row with empty activity fields.
type exportRow struct {
	DayID       string `json:"dayId"`
	DayDate     string `json:"dayDate"` // "2006-01-02"
	Destination string `json:"destination"`

	ActivityID       string `json:"activityId,omitempty"`
	ActivityKind     string `json:"activityKind,omitempty"` // "timed" | "untimed"
	Time             string `json:"time,omitempty"`
	Place            string `json:"place,omitempty"`
	What             string `json:"what,omitempty"`
	Priority         string `json:"priority,omitempty"`
	Category         string `json:"category,omitempty"`
	SubActivityCount int    `json:"subActivityCount"`
}

// GetExport handles GET /export: the whole itinerary as a flat table, one
// row per activity with day fields repeated. Supports ?format=csv; default
// is JSON.
func (s *Server) GetExport(w http.ResponseWriter, r *http.Request) {
	days, err := s.store.FetchAll(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}

	rows := buildExportRows(days)
	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// buildExportRows flattens the day tree. The timed slice is copied before
// sorting so the export's display order never reorders the stored document.
func buildExportRows(days []*domain.Day) []exportRow {
	rows := []exportRow{}
	for _, d := range days {
		base := exportRow{
			DayID:       d.ID.String(),
			DayDate:     d.Date.UTC().Format(time.DateOnly),
			Destination: d.Destination,
		}
		if d.ActivityCount() == 0 {
			rows = append(rows, base)
			continue
		}

		timed := make([]*domain.TimedActivity, len(d.TimedActivities))
		copy(timed, d.TimedActivities)
		domain.SortTimed(timed)

		for _, a := range timed {
			row := base
			row.ActivityID = a.ID.String()
			row.ActivityKind = "timed"
			row.Time = a.Time
			row.Place = a.Place
			row.What = a.What
			row.Priority = string(a.Priority)
			row.SubActivityCount = len(a.SubActivities)
			rows = append(rows, row)
		}
		for _, a := range d.UntimedActivities {
			row := base
			row.ActivityID = a.ID.String()
			row.ActivityKind = "untimed"
			row.Place = a.Place
			row.What = a.What
			row.Priority = string(a.Priority)
			if a.Category != nil {
				row.Category = *a.Category
			}
			row.SubActivityCount = len(a.SubActivities)
			rows = append(rows, row)
		}
	}
	return rows
}

// writeCSV encodes rows as CSV with the fixed header line.
func writeCSV(w http.ResponseWriter, rows []exportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// csv.Writer over a bytes.Buffer never returns a write error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		cw.Write([]string{
			r.DayID, r.DayDate, r.Destination,
			r.ActivityID, r.ActivityKind, r.Time, r.Place, r.What, r.Priority,
			r.Category, strconv.Itoa(r.SubActivityCount),
		})
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

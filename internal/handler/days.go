package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/snapshot"
)

// ListDays handles GET /days.
// The response reuses the exchange-format tree: what the client sees is
// exactly what the assistant is shown, including the day order that edit
// indices resolve against.
func (s *Server) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := s.store.FetchAll(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, snapshot.Build(days))
}

// createDayRequest is the POST /days body.
type createDayRequest struct {
	Date        string `json:"date"` // "2006-01-02"
	Destination string `json:"destination"`
}

// CreateDay handles POST /days.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	var body createDayRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}
	if strings.TrimSpace(body.Destination) == "" {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "destination is required")
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "date must be YYYY-MM-DD")
		return
	}

	day := &domain.Day{
		ID:                uuid.New(),
		Date:              date,
		Destination:       body.Destination,
		TimedActivities:   []*domain.TimedActivity{},
		UntimedActivities: []*domain.UntimedActivity{},
	}
	if err := s.store.Insert(r.Context(), day); err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, snapshot.Build([]*domain.Day{day}).Days[0])
}

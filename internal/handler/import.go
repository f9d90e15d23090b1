package handler

import (
	"io"
	"net/http"

	"github.com/wanderlust-app/backend/internal/importer"
)

// ImportTrip handles POST /import: the one-time bulk load of a trip JSON
// document. It only runs against an empty store — re-importing over a live
// document would duplicate every day.
func (s *Server) ImportTrip(w http.ResponseWriter, r *http.Request) {
	existing, err := s.store.FetchAll(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}
	if len(existing) > 0 {
		writeError(w, http.StatusConflict, "already_imported", "document already contains days")
		return
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "could not read request body")
		return
	}

	days, err := importer.Parse(data)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	// One Save writes the whole batch; the store was just verified empty.
	if err := s.store.Save(r.Context(), days); err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int{"days": len(days)})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/workflow"
)

// assistantStateResponse reports where the workflow is and, when a proposal
// is pending, what it contains.
type assistantStateResponse struct {
	State    workflow.State     `json:"state"`
	Proposal *assistant.EditSet `json:"proposal,omitempty"`
}

// GetAssistantState handles GET /assistant.
func (s *Server) GetAssistantState(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, assistantStateResponse{
		State:    s.flow.State(),
		Proposal: s.flow.Proposal(),
	})
}

// proposeRequest is the POST /assistant/propose body.
type proposeRequest struct {
	Message string `json:"message"`
}

// Propose handles POST /assistant/propose. It runs the full pipeline —
// snapshot, prompt, service call, decode — and returns the proposed
// edit-set for user confirmation. Nothing touches the document yet.
func (s *Server) Propose(w http.ResponseWriter, r *http.Request) {
	var body proposeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "request body is required")
		return
	}

	set, err := s.flow.Propose(r.Context(), body.Message)
	if err != nil {
		writeMappedError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assistantStateResponse{State: workflow.StateProposed, Proposal: set})
}

// ApplyProposal handles POST /assistant/apply. Skipped edits are reported
// in the summary, not as an error — the apply itself still succeeded.
func (s *Server) ApplyProposal(w http.ResponseWriter, r *http.Request) {
	result, err := s.flow.Apply(r.Context())
	if err != nil {
		writeMappedError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// DiscardProposal handles POST /assistant/discard.
func (s *Server) DiscardProposal(w http.ResponseWriter, _ *http.Request) {
	if err := s.flow.Discard(); err != nil {
		writeMappedError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

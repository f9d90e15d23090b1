package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/workflow"
)

// errorResponse is the uniform error body for every endpoint.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// writeMappedError translates pipeline and domain errors into HTTP statuses.
// Every error in the taxonomy is recoverable by the user resubmitting, so
// nothing here reports a fatal condition.
func writeMappedError(w http.ResponseWriter, err error) {
	var svcErr *assistant.ServiceError

	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", unwrapMessage(err))
	case errors.Is(err, workflow.ErrBusy):
		writeError(w, http.StatusConflict, "request_in_flight", err.Error())
	case errors.Is(err, workflow.ErrProposalPending):
		writeError(w, http.StatusConflict, "proposal_pending", err.Error())
	case errors.Is(err, workflow.ErrNoProposal):
		writeError(w, http.StatusConflict, "no_proposal", err.Error())
	case errors.Is(err, assistant.ErrNoCredential):
		writeError(w, http.StatusServiceUnavailable, "no_credential", "no API key configured; add one in settings")
	case errors.Is(err, assistant.ErrTransport):
		writeError(w, http.StatusBadGateway, "transport_failure", "could not reach the assistant service; try again")
	case errors.As(err, &svcErr):
		writeError(w, http.StatusBadGateway, "assistant_service_error", svcErr.Error())
	case errors.Is(err, assistant.ErrEmptyResponse):
		writeError(w, http.StatusBadGateway, "empty_response", err.Error())
	case errors.Is(err, assistant.ErrDecode):
		writeError(w, http.StatusBadGateway, "decode_failure", "could not understand the assistant response; try rephrasing")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
	}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "workflow.Workflow.Propose: validation error: request text is
// required" → "request text is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, marker := range []string{"validation error: ", "not found: "} {
		if i := strings.LastIndex(msg, marker); i != -1 {
			return msg[i+len(marker):]
		}
	}
	return msg
}

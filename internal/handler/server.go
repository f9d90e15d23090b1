// Package handler implements the HTTP surface of the itinerary backend.
// All handlers are methods on Server; routes are registered by Routes.
// Methods are split into files by concern (days.go, assistant.go, export.go)
// but all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/store"
	"github.com/wanderlust-app/backend/internal/workflow"
)

// Workflower defines the proposal operations the assistant handlers depend
// on. Defining the interface here (in the consumer package) lets handler
// tests inject a stub without a real assistant client behind it.
type Workflower interface {
	State() workflow.State
	Proposal() *assistant.EditSet
	Propose(ctx context.Context, request string) (*assistant.EditSet, error)
	Apply(ctx context.Context) (*workflow.ApplyResult, error)
	Discard() error
}

// Server holds the dependencies for all API endpoints.
type Server struct {
	store store.Store
	flow  Workflower
}

// NewServer constructs the Server with all its dependencies.
func NewServer(st store.Store, flow Workflower) *Server {
	return &Server{store: st, flow: flow}
}

// Routes returns the API route tree. Cross-cutting middleware (request ID,
// logging, CORS, body limits) is wired by the caller.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Get("/days", s.ListDays)
	r.Post("/days", s.CreateDay)

	r.Get("/export", s.GetExport)
	r.Post("/import", s.ImportTrip)

	r.Route("/assistant", func(r chi.Router) {
		r.Get("/", s.GetAssistantState)
		r.Post("/propose", s.Propose)
		r.Post("/apply", s.ApplyProposal)
		r.Post("/discard", s.DiscardProposal)
	})

	return r
}

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

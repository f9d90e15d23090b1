// Package workflow governs the proposal lifecycle around the assistant
// pipeline: when an edit-set may be requested, previewed, applied, or
// discarded. Exactly one request may be in flight and exactly one proposal
// may be pending; the mutex enforces this by construction instead of
// relying on a single caller thread.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/wanderlust-app/backend/internal/assistant"
	"github.com/wanderlust-app/backend/internal/domain"
	"github.com/wanderlust-app/backend/internal/edit"
	"github.com/wanderlust-app/backend/internal/snapshot"
	"github.com/wanderlust-app/backend/internal/store"
)

// State is the workflow's position in the proposal lifecycle.
type State string

const (
	// StateIdle accepts new requests.
	StateIdle State = "idle"
	// StateRequesting has a pipeline call in flight; new requests are rejected.
	StateRequesting State = "requesting"
	// StateProposed holds a decoded edit-set awaiting apply or discard.
	StateProposed State = "proposed"
)

// ErrBusy is returned when a new request arrives while one is in flight.
var ErrBusy = errors.New("a request is already in flight")

// ErrProposalPending is returned when a new request arrives while a
// proposal is still awaiting apply or discard.
var ErrProposalPending = errors.New("a proposal is awaiting apply or discard")

// ErrNoProposal is returned by Apply and Discard when nothing is proposed.
var ErrNoProposal = errors.New("no proposal to act on")

// Completer is the slice of the assistant client the workflow depends on.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Workflow runs the edit pipeline end to end: snapshot → prompt → service →
// decode, holding the result for user confirmation before anything touches
// the document.
type Workflow struct {
	mu       sync.Mutex
	state    State
	proposal *assistant.EditSet

	store  store.Store
	client Completer
}

// New constructs an idle Workflow over the given store and assistant client.
func New(st store.Store, client Completer) *Workflow {
	return &Workflow{state: StateIdle, store: st, client: client}
}

// State reports the current lifecycle state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Proposal returns the pending edit-set, or nil when none is held.
func (w *Workflow) Proposal() *assistant.EditSet {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.proposal
}

// Propose runs the request pipeline for the user's text and transitions to
// StateProposed on success. Any pipeline failure (credential, transport,
// service status, empty reply, decode) aborts the whole request, returns
// the workflow to idle, and surfaces a single error — nothing is retried
// automatically.
func (w *Workflow) Propose(ctx context.Context, request string) (*assistant.EditSet, error) {
	if strings.TrimSpace(request) == "" {
		return nil, fmt.Errorf("%w: request text is required", domain.ErrValidation)
	}
	if err := w.begin(); err != nil {
		return nil, err
	}

	set, err := w.run(ctx, request)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.state = StateIdle
		w.proposal = nil
		return nil, err
	}
	w.state = StateProposed
	w.proposal = set
	return set, nil
}

// begin claims the requesting slot or reports why it cannot.
func (w *Workflow) begin() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch w.state {
	case StateRequesting:
		return ErrBusy
	case StateProposed:
		return ErrProposalPending
	}
	w.state = StateRequesting
	return nil
}

// run executes the pipeline outside the lock — the service call is the only
// suspension point, and holding the mutex across it would turn concurrent
// Propose calls into waiters instead of ErrBusy rejections.
func (w *Workflow) run(ctx context.Context, request string) (*assistant.EditSet, error) {
	days, err := w.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow.Workflow.Propose: %w", err)
	}

	pretty, err := snapshot.Build(days).PrettyJSON()
	if err != nil {
		return nil, fmt.Errorf("workflow.Workflow.Propose: serialize snapshot: %w", err)
	}

	text, err := w.client.Complete(ctx, assistant.SystemPrompt(), assistant.UserMessage(pretty, request))
	if err != nil {
		return nil, err
	}

	return assistant.DecodeEditSet(text)
}

// ApplyResult summarizes one apply pass. Skipped edits are recorded, not
// surfaced as failures — partial application is the contract.
type ApplyResult struct {
	Outcomes []edit.Outcome `json:"outcomes"`
	Applied  int            `json:"applied"`
	Skipped  int            `json:"skipped"`
}

// Apply runs the pending edit-set against a fresh fetch of the document,
// persists the result, and returns to idle with a per-edit outcome summary.
func (w *Workflow) Apply(ctx context.Context) (*ApplyResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateProposed || w.proposal == nil {
		return nil, ErrNoProposal
	}

	days, err := w.store.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("workflow.Workflow.Apply: %w", err)
	}

	outcomes := edit.Apply(days, w.proposal)

	// The proposal is consumed either way: apply is a single attempt, and
	// replaying a set whose adds already landed would mint them twice.
	w.proposal = nil
	w.state = StateIdle

	if err := w.store.Save(ctx, days); err != nil {
		return nil, fmt.Errorf("workflow.Workflow.Apply: save: %w", err)
	}

	result := &ApplyResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Status == edit.StatusApplied {
			result.Applied++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}

// Discard drops the pending edit-set and returns to idle without touching
// the document.
func (w *Workflow) Discard() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.state != StateProposed {
		return ErrNoProposal
	}
	w.proposal = nil
	w.state = StateIdle
	return nil
}

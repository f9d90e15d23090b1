// Package assistant implements the AI edit pipeline: building the prompt,
// calling the text-generation service, and decoding the structured edit-set
// from its free-text reply. It owns the exchange schema; resolving edits
// against the live document lives in internal/edit.
package assistant

import (
	"errors"
	"fmt"
)

// EditKind says what an edit does to its target.
type EditKind string

const (
	KindModify EditKind = "modify"
	KindAdd    EditKind = "add"
	KindDelete EditKind = "delete"
)

// TargetType says which collection within a day the edit addresses.
type TargetType string

const (
	TargetTimed   TargetType = "timedActivity"
	TargetUntimed TargetType = "untimedActivity"
	TargetSub     TargetType = "subActivity"
)

// EditSet is the decoded structured output of one assistant request: zero or
// more edits plus the assistant's reasoning and any warnings it raised.
type EditSet struct {
	Edits     []Edit   `json:"edits"`
	Reasoning string   `json:"reasoning"`
	Warnings  []string `json:"warnings"`
}

// Edit is a single proposed change. DayIndex addresses the chronologically
// sorted day sequence of the snapshot the assistant was shown; it is only
// valid for that one request/response cycle.
type Edit struct {
	Kind       EditKind   `json:"kind"`
	TargetType TargetType `json:"targetType"`
	DayIndex   *int       `json:"dayIndex"`
	TargetID   string     `json:"targetId"`
	Changes    Changes    `json:"changes"`
}

// Changes carries the field overwrites for an edit. Nil fields are left
// untouched on modify and take entity-construction defaults on add.
type Changes struct {
	Time     *string `json:"time"`
	Place    *string `json:"place"`
	What     *string `json:"what"`
	Context  *string `json:"context"`
	Priority *string `json:"priority"`
}

// priorityTokens is the closed set of priority values the schema admits.
var priorityTokens = map[string]bool{"mustDo": true, "flexible": true, "skip": true}

// editSetWire is the unmarshal target for a reply. Pointer fields detect key
// absence: edits, reasoning, and warnings are all required, and a reply
// missing any of them is a decode failure rather than a zero value.
type editSetWire struct {
	Edits     []Edit    `json:"edits"`
	Reasoning *string   `json:"reasoning"`
	Warnings  *[]string `json:"warnings"`
}

// toEditSet checks required-field presence and builds the decoded set.
func (w *editSetWire) toEditSet() (*EditSet, error) {
	if w.Edits == nil {
		return nil, errors.New(`missing required field "edits"`)
	}
	if w.Reasoning == nil {
		return nil, errors.New(`missing required field "reasoning"`)
	}
	if w.Warnings == nil {
		return nil, errors.New(`missing required field "warnings"`)
	}
	return &EditSet{Edits: w.Edits, Reasoning: *w.Reasoning, Warnings: *w.Warnings}, nil
}

// validate enforces the closed-tag parts of the schema. Unknown kind,
// target-type, or priority tokens are rejected here rather than silently
// defaulted; the only sanctioned fallback (unrecognized priority on modify
// leaves the field unchanged) is handled at apply time and never reaches
// this path because decode already gates the token set.
func (s *EditSet) validate() error {
	for i, e := range s.Edits {
		switch e.Kind {
		case KindModify, KindAdd, KindDelete:
		default:
			return fmt.Errorf("edit %d: unknown kind %q", i, e.Kind)
		}
		switch e.TargetType {
		case TargetTimed, TargetUntimed, TargetSub:
		default:
			return fmt.Errorf("edit %d: unknown targetType %q", i, e.TargetType)
		}
		// targetId is how modify/delete resolve; add mints its own ID and
		// may leave it empty.
		if e.TargetID == "" && e.Kind != KindAdd {
			return fmt.Errorf("edit %d: missing targetId", i)
		}
		if p := e.Changes.Priority; p != nil && !priorityTokens[*p] {
			return fmt.Errorf("edit %d: unknown priority %q", i, *p)
		}
	}
	return nil
}

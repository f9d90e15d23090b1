package domain

// Priority is how strongly an activity is recommended. The three string
// values are wire tokens shared with the assistant exchange format and the
// database — do not rename them.
type Priority string

const (
	PriorityMustDo   Priority = "mustDo"
	PriorityFlexible Priority = "flexible"
	PrioritySkip     Priority = "skip"
)

// ParsePriority maps a wire token to a Priority.
// Returns false for tokens outside the fixed set; callers decide whether
// that is a hard failure (decoding) or a no-op (modify application).
func ParsePriority(s string) (Priority, bool) {
	switch Priority(s) {
	case PriorityMustDo, PriorityFlexible, PrioritySkip:
		return Priority(s), true
	}
	return "", false
}

// DisplayName returns the human-readable label for UI surfaces.
func (p Priority) DisplayName() string {
	switch p {
	case PriorityMustDo:
		return "Must-Do"
	case PrioritySkip:
		return "Skip"
	default:
		return "Flexible"
	}
}

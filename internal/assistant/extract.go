package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

// extractObject pulls the candidate JSON payload out of a possibly
// prose-wrapped reply: the inclusive substring from the first "{" to the
// last "}", or the whole text when either delimiter is missing.
//
// This deliberately does no deeper recovery. Nested braces inside string
// values are spanned correctly only because first-{/last-} covers the whole
// object in the common case; stray braces in surrounding prose can
// mis-extract, and no stronger guarantee is made.
func extractObject(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}

// DecodeEditSet recovers a structured edit-set from the raw reply text.
// Leading and trailing prose around the JSON object is tolerated. Invalid
// JSON, wrong value types, missing required fields, and tokens outside the
// closed kind/targetType/priority sets all fail with ErrDecode.
func DecodeEditSet(text string) (*EditSet, error) {
	candidate := extractObject(text)

	var wire editSetWire
	if err := json.Unmarshal([]byte(candidate), &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	set, err := wire.toEditSet()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := set.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return set, nil
}

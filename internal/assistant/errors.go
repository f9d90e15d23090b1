package assistant

import (
	"errors"
	"fmt"
)

// ErrNoCredential means no API key is configured. It is returned before any
// transport is attempted; handlers should tell the user to add a key.
var ErrNoCredential = errors.New("no API key configured")

// ErrTransport wraps network-level failures reaching the service.
// Retryable by resubmitting the request; nothing is retried automatically.
var ErrTransport = errors.New("transport failure")

// ErrEmptyResponse means the service replied 200 but carried no text
// segment to decode.
var ErrEmptyResponse = errors.New("no content in assistant response")

// ErrDecode means the extracted text was not valid JSON or did not match
// the edit-set schema. The workflow surfaces this as "could not understand
// the assistant response" and returns to idle.
var ErrDecode = errors.New("could not understand assistant response")

// ServiceError is a non-2xx reply from the assistant service. The raw body
// is kept verbatim for diagnostics.
type ServiceError struct {
	StatusCode int
	Body       string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("assistant service error (%d): %s", e.StatusCode, e.Body)
}

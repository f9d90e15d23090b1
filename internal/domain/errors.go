package domain

import "errors"

// ErrNotFound is returned by store and handler paths when the requested
// entity does not exist in the document.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned when input fails business rule validation
// (e.g. missing destination, malformed date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

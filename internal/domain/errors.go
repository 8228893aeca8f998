// internal/domain/errors.go
package domain

import "errors"

// Error kinds. Callers classify failures with errors.Is so that handlers
// can map them to HTTP statuses without inspecting raw storage errors.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrExternal   = errors.New("external service failure")
	ErrStorage    = errors.New("storage failure")
)

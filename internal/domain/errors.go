package domain

import "errors"

// Sentinel errors services return so the HTTP layer can map them to status
// codes without inspecting message strings.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
)

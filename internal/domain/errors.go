package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrAlreadyAccepted   = errors.New("job already accepted")
	ErrAlreadyInstalled  = errors.New("installation already done")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidBOM        = errors.New("invalid BOM reference")
	ErrStorageConflict   = errors.New("storage conflict, retry the operation")
)

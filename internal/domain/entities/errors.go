package entities

import "errors"

// Error kinds shared by every use case. Specific errors wrap one of these so
// the HTTP layer can classify them with errors.Is.
var (
	ErrValidation        = errors.New("validation error")
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrPaymentInitiation = errors.New("payment initiation failed")
	ErrNotification      = errors.New("notification failed")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

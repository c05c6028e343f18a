package usecase

import "errors"

// Sentinel errors services hand back to the adaptor layer. Handlers
// translate them with errors.Is; everything else is an internal failure.
var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorizedOwner = errors.New("unknown user id")
	ErrCodeNotFound      = errors.New("sync code not found")
	ErrCodeExpired       = errors.New("sync code expired")
	ErrSelfPairing       = errors.New("cannot pair a device with its own sync code")
	ErrTaskNotFound      = errors.New("task not found")
)

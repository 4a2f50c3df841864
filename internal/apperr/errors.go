package apperr

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrConflict       = errors.New("conflict")
	ErrUnknownField   = errors.New("unknown field")
	ErrInvalidContent = errors.New("invalid content")
)

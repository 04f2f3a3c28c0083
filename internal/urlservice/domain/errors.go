package domain

import "errors"

var (
	ErrURLNotFound       = errors.New("url not found")
	ErrInvalidURL        = errors.New("invalid url")
	ErrDuplicateCode     = errors.New("short code already taken")
	ErrCapacityExhausted = errors.New("short code generation failed after max attempts")
)

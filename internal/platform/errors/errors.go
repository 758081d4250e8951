package apperrors

import "errors"

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrStorage       = errors.New("storage failure")
	ErrCorrupt       = errors.New("corrupted data")
)

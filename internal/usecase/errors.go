package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrJobNotFound  = errors.New("job not found")
	ErrSamePair     = errors.New("canonical and duplicate must differ")
	ErrInternal     = errors.New("internal error")
)

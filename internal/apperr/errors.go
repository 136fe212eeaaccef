package apperr

import "errors"

var (
	ErrEmptyInput    = errors.New("input file is empty")
	ErrMissingColumn = errors.New("required column missing")
	ErrUnknownFormat = errors.New("unknown output format")
)

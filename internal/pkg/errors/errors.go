package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrConflict means a unique key is already taken.
	ErrConflict = errors.New("conflict")
	// ErrCorpusUnavailable means the response corpus could not be read.
	ErrCorpusUnavailable = errors.New("response corpus unavailable")
)

package suggestion

import "errors"

// Errors returned by tracker operations.
var (
	// ErrEmptyCompletion indicates Set was called with empty completion
	// text. This is a caller bug: an empty suggestion cannot be offered.
	ErrEmptyCompletion = errors.New("empty completion text")
)

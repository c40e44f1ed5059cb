package lineedit

import "errors"

// ErrInvalidHistoryLen is returned by SetHistoryMaxLen when asked for a
// non-positive capacity.
var ErrInvalidHistoryLen = errors.New("lineedit: history length must be at least 1")

// ErrEmptyBuffer is returned by Readline when the caller-configured line
// length leaves no room for any content.
var ErrEmptyBuffer = errors.New("lineedit: line buffer has zero capacity")

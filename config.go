package lineedit

import "io"

// Default configuration constants, named after the values the original
// embedded port shipped with.
const (
	// DefaultLineLength is the size of the buffer handed to a session,
	// including the reserved terminator byte.
	DefaultLineLength = 61

	// DefaultHistoryMaxLen is how many entries the history ring keeps
	// when a caller never calls SetHistoryMaxLen.
	DefaultHistoryMaxLen = 10
)

// Option configures an Editor at construction time.
type Option func(*Editor)

// WithLineLength overrides the default edit buffer size. n must be at
// least 2 (one byte of content plus the terminator); smaller values are
// clamped up.
func WithLineLength(n int) Option {
	return func(e *Editor) {
		if n < 2 {
			n = 2
		}
		e.lineLength = n
	}
}

// WithHistoryMaxLen overrides the default history ring capacity.
func WithHistoryMaxLen(n int) Option {
	return func(e *Editor) {
		if n < 1 {
			n = 1
		}
		e.history = newHistory(n)
	}
}

// WithIO overrides the terminal byte sink/source used for a session.
// Intended for tests and non-TTY embeddings; Readline uses os.Stdin and
// os.Stdout when this option isn't given.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(e *Editor) {
		e.in = in
		e.out = out
	}
}

package prompt

import "errors"

var (
	// ErrAborted signals the operator aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrEmptyChoices is returned when a choice prompt is invoked with
	// zero options. This is a schema or programming error, never an
	// operator mistake, so it is fatal rather than retried.
	ErrEmptyChoices = errors.New("prompt: no options to choose from")
	// ErrInvalidResponse marks operator input that failed to parse.
	// Drivers recover from it locally by re-asking; it never reaches
	// resolution callers.
	ErrInvalidResponse = errors.New("prompt: invalid response")
)

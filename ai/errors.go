package ai

import "errors"

var (
	// ErrNoResponse indicates that the model returned no choices.
	ErrNoResponse = errors.New("model returned no response")

	// ErrToolRoundsExceeded indicates that a question kept triggering tool
	// calls past the configured round cap.
	ErrToolRoundsExceeded = errors.New("tool call rounds exceeded")
)

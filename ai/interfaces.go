package ai

import "context"

// Responder answers operator questions in natural language.
// Implementations must be thread-safe for concurrent use.
type Responder interface {
	// Respond generates an answer to a single question. Implementations may
	// call live data tools while formulating the answer.
	// Returns an error if answer generation fails.
	Respond(ctx context.Context, question string) (string, error)
}

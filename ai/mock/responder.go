package mock

import (
	"context"
	"fmt"
)

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// RespondFunc is called by Respond if set.
	// If nil, uses default deterministic behavior.
	RespondFunc func(ctx context.Context, question string) (string, error)

	callCount int
}

// NewMockResponder creates a mock responder with default deterministic behavior.
// Note: Returns concrete type to allow test assertions.
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Respond echoes the question in a canned answer.
func (m *MockResponder) Respond(ctx context.Context, question string) (string, error) {
	m.callCount++

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, question)
	}

	// Default: deterministic echo so tests can assert the question reached us
	return fmt.Sprintf("Mock answer to: %s", question), nil
}

// CallCount returns the number of times Respond was called.
func (m *MockResponder) CallCount() int {
	return m.callCount
}

// Reset clears the call count and any injected behavior.
func (m *MockResponder) Reset() {
	m.callCount = 0
	m.RespondFunc = nil
}

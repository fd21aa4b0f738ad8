// Package mock provides test double implementations of AI service interfaces.
//
// This package contains a mock implementation of ai.Responder for use in unit
// tests. The mock allows tests to run without a live language model and
// enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	// Basic usage with default behavior
//	responder := mock.NewMockResponder()
//	answer, err := responder.Respond(ctx, "how many collectors are offline?")
//
//	// Custom behavior injection
//	responder.RespondFunc = func(ctx context.Context, question string) (string, error) {
//	    return "All collectors are online.", nil
//	}
//
//	// Check call counts
//	count := responder.CallCount()
//
// # Default Behavior
//
// Without an injected RespondFunc, MockResponder returns a deterministic
// answer that echoes the question, so tests can assert that the question was
// delivered intact.
package mock

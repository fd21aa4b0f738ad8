// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package ai provides abstractions for AI services used in opsassist.
//
// This package defines the Responder interface for natural-language answer
// generation. It follows the dependency inversion principle, allowing the
// assistant surface to depend on abstractions rather than concrete
// implementations.
//
// # Implementation Packages
//
// The ai package includes two implementation sub-packages:
//
//   - ai/openai: Production implementation using OpenAI-compatible chat APIs
//     with live-data tool calling
//   - ai/mock: Test doubles for unit testing without external dependencies
//
// # Constructor Return Type Pattern
//
// Public constructors (openai.NewResponder) return INTERFACE types to
// enforce abstraction and prevent accidental coupling to concrete
// implementations:
//
//	responder, err := openai.NewResponder(config, tools)  // returns ai.Responder
//
// Test utility constructors (mock.NewMockResponder) return CONCRETE types to
// enable test assertions and behavior injection via the mock's public
// methods (CallCount, RespondFunc, Reset).
package ai

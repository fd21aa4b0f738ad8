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


// Package rules implements a deterministic, rule-based ai.Responder for
// IRENO collector questions.
//
// The responder matches keywords in the question against a fixed set of
// rules (highest offline percentage, per-zone communication times, specific
// zone status, general status, help) and renders answers from a live
// ireno.StatusSnapshot. When the IRENO API is unreachable it falls back to
// a representative mock snapshot so the assistant keeps answering during
// outages.
//
// It exists as the zero-dependency counterpart to ai/openai: no language
// model is required, answers are instant, and every response is derived
// from the same snapshot data the dashboards show.
package rules

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


package openai

import (
	"context"
	"log/slog"

	"github.com/poiesic/opsassist/ai"
	"github.com/poiesic/opsassist/ireno"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Responder implements ai.Responder using OpenAI-compatible chat APIs with
// tool calling.
type Responder struct {
	client    llms.Model
	tools     *ireno.Toolset
	maxRounds int
	logger    *slog.Logger
}

// newResponder is an internal constructor that returns the concrete type.
func newResponder(config *ai.Config, tools *ireno.Toolset) (*Responder, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken(config.Token),
		openai.WithModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	return &Responder{
		client:    client,
		tools:     tools,
		maxRounds: config.MaxToolRounds,
		logger:    slog.Default().With("component", "openai-responder"),
	}, nil
}

// NewResponder creates a new responder using the provided configuration and
// tool catalog.
//
// Returns ai.Responder interface to enforce abstraction.
func NewResponder(config *ai.Config, tools *ireno.Toolset) (ai.Responder, error) {
	return newResponder(config, tools)
}

// Respond answers a question, letting the model call IRENO tools for live
// data. Tool calls run in rounds: each round sends accumulated messages,
// executes every requested tool, and appends the results. A question that
// keeps requesting tools past the round cap fails with
// ai.ErrToolRoundsExceeded.
func (r *Responder) Respond(ctx context.Context, question string) (string, error) {
	content := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(systemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(question)},
		},
	}

	for round := 0; round < r.maxRounds; round++ {
		response, err := r.client.GenerateContent(ctx, content,
			llms.WithTemperature(0.0),
			llms.WithTools(r.tools.Tools()))
		if err != nil {
			r.logger.Error("failed to generate content", "round", round+1, "err", err)
			return "", err
		}

		if len(response.Choices) < 1 {
			return "", ai.ErrNoResponse
		}
		choice := response.Choices[0]

		if len(choice.ToolCalls) == 0 {
			return choice.Content, nil
		}

		// Echo the assistant turn, then answer each requested tool.
		assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		for _, call := range choice.ToolCalls {
			assistant.Parts = append(assistant.Parts, call)
		}
		content = append(content, assistant)

		for _, call := range choice.ToolCalls {
			r.logger.Debug("executing tool call", "tool", call.FunctionCall.Name, "round", round+1)

			result, err := r.tools.Call(ctx, call.FunctionCall.Name)
			if err != nil {
				// Unknown tool name hallucinated by the model; tell it so
				// instead of aborting the conversation.
				result = err.Error()
			}

			content = append(content, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{
					llms.ToolCallResponse{
						ToolCallID: call.ID,
						Name:       call.FunctionCall.Name,
						Content:    result,
					},
				},
			})
		}
	}

	return "", ai.ErrToolRoundsExceeded
}

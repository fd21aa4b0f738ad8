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


package opsassist

import (
	"log/slog"

	"github.com/poiesic/opsassist/ai"
	"github.com/poiesic/opsassist/ai/openai"
	"github.com/poiesic/opsassist/corpus"
	"github.com/poiesic/opsassist/ireno"
	"github.com/poiesic/opsassist/rules"
	"github.com/poiesic/opsassist/search"
	"github.com/poiesic/opsassist/storage"
	"github.com/poiesic/opsassist/storage/badger"
)

// Assistant wires the document store, SOP corpus loader, search engine,
// IRENO client and responders into one handle.
type Assistant struct {
	backend      *badger.Backend
	documentRepo storage.DocumentRepository
	loader       *corpus.Loader
	client       *ireno.Client
	logger       *slog.Logger
}

// AssistantOption configures an Assistant.
type AssistantOption func(*assistantOptions)

type assistantOptions struct {
	inMemory   bool
	irenoOpts  []ireno.Option
	loaderOpts []corpus.Option
}

// WithInMemoryStore keeps the document store in memory. Used in tests and
// throwaway sessions.
func WithInMemoryStore() AssistantOption {
	return func(o *assistantOptions) {
		o.inMemory = true
	}
}

// WithIrenoOptions passes options through to the IRENO client.
func WithIrenoOptions(opts ...ireno.Option) AssistantOption {
	return func(o *assistantOptions) {
		o.irenoOpts = append(o.irenoOpts, opts...)
	}
}

// WithLoaderOptions passes options through to the corpus loader.
func WithLoaderOptions(opts ...corpus.Option) AssistantOption {
	return func(o *assistantOptions) {
		o.loaderOpts = append(o.loaderOpts, opts...)
	}
}

// NewAssistant opens the document store at filePath and wires the corpus
// loader and IRENO client around it.
func NewAssistant(filePath string, opts ...AssistantOption) (*Assistant, error) {
	options := &assistantOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	documentRepo, err := badger.NewDocumentRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	loader, err := corpus.NewLoader(documentRepo, options.loaderOpts...)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Assistant{
		backend:      backend,
		documentRepo: documentRepo,
		loader:       loader,
		client:       ireno.NewClient(options.irenoOpts...),
		logger:       slog.Default(),
	}, nil
}

func (a *Assistant) Close() error {
	a.loader.Release()

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (a *Assistant) DocumentRepository() storage.DocumentRepository {
	return a.documentRepo
}

func (a *Assistant) Loader() *corpus.Loader {
	return a.loader
}

func (a *Assistant) IrenoClient() *ireno.Client {
	return a.client
}

// NewEngine builds a search engine for the SOP corpus.
func (a *Assistant) NewEngine(opts ...search.Option) *search.Engine {
	return search.NewEngine(opts...)
}

// NewRuleResponder builds the deterministic, model-free responder.
func (a *Assistant) NewRuleResponder(opts ...rules.Option) *rules.Responder {
	return rules.NewResponder(a.client, opts...)
}

// NewModelResponder builds the language-model responder with the IRENO tool
// catalog attached.
func (a *Assistant) NewModelResponder(config *ai.Config) (ai.Responder, error) {
	return openai.NewResponder(config, ireno.NewToolset(a.client))
}

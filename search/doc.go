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


// Package search provides keyword search and ranking over operating-procedure
// documents.
//
// The Engine type implements a multi-strategy scoring algorithm that combines:
//   - Token overlap between the query and a candidate paragraph or line
//   - A whole-word bonus for exact lexical matches over substring hits
//   - A phrase-proximity bonus when the query occurs verbatim
//   - A density bonus favoring tightly clustered matches
//
// Candidates are collected per document section, ranked by score, and
// deduplicated before presentation. Every operation is a pure function of its
// arguments: the engine holds only configuration, so a single Engine is safe
// for concurrent use.
package search

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


// Package corpus loads operating-procedure documents into storage and
// assembles them into the marked corpus text the search engine consumes.
//
// Documents are ingested from disk concurrently and stored through a
// storage.DocumentRepository. Assemble stitches every stored document into a
// single string, wrapping each body in FILE/END OF marker lines so search
// results can be attributed to their source document.
package corpus

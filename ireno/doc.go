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


// Package ireno is a client for the IRENO grid-management APIs.
//
// It covers the device-management service (collector status and counts) and
// the KPI-management service (read success percentages, by interval and by
// zone). Responses are formatted into human-readable summaries suitable for
// returning verbatim from assistant tool calls, and the package exposes the
// full catalog as tool definitions for function-calling models.
//
// The upstream APIs return several competing JSON shapes for the same data,
// so formatting probes for known field names rather than decoding into rigid
// structs.
package ireno

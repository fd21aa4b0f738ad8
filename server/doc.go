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


// Package server exposes the operations assistant over HTTP.
//
// Routes:
//
//	GET  /              health check and endpoint catalog
//	GET  /health        health check (same payload as /)
//	POST /api/chat      natural-language questions via the configured responder
//	POST /api/sop-search keyword search over the ingested SOP corpus
//	GET  /api/charts    collector fleet chart data for dashboards
//	GET  /api/system-status configuration and data-source summary
//
// The server is built on chi with request ID, real IP, recovery, CORS and
// slog request logging middleware. Shutdown is graceful: Run blocks until
// the context is cancelled or the listener fails, then drains in-flight
// requests.
package server

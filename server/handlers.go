package server

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"
)

// chatFallback is returned when the responder fails, so the UI always gets a
// usable answer.
const chatFallback = "I apologize, but I'm experiencing technical difficulties. " +
	"Please try asking about IRENO collector status, zone information, or system health."

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "opsassist",
		"endpoints": map[string]string{
			"GET /health":          "Health check and service info",
			"POST /api/chat":       "Chat interface with zone analysis",
			"POST /api/sop-search": "SOP document search",
			"GET /api/charts":      "Chart data for dashboard visualization",
			"GET /api/system-status": "System status and configuration",
		},
		"sop_search_features": map[string]any{
			"search_types": []string{"basic", "advanced"},
			"storage":      "badger",
			"ai_required":  false,
		},
	})
}

type chatRequest struct {
	Message *string `json:"message"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Message is required"})
		return
	}

	answer, err := s.responder.Respond(r.Context(), *req.Message)
	if err != nil {
		s.logger.Error("responder failed", "err", err)
		writeJSON(w, http.StatusOK, map[string]string{"response": chatFallback})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"response": answer})
}

type searchRequest struct {
	Query      *string `json:"query"`
	MaxResults int     `json:"max_results"`
	SearchType string  `json:"search_type"`
}

type basicResult struct {
	Snippet      string `json:"snippet"`
	ResultNumber int    `json:"result_number"`
	MatchType    string `json:"match_type"`
}

func (s *Server) handleSOPSearch(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Query == nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Search query is required",
			"message": `Please provide a "query" parameter in the request body`,
		})
		return
	}

	query := strings.TrimSpace(*req.Query)
	if query == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "Search query cannot be empty",
			"message": "Please provide a valid search query",
		})
		return
	}

	if s.loader == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{
			"error":   "SOP search service unavailable",
			"message": "Document store not configured",
			"query":   query,
			"results": []any{},
		})
		return
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = 15
	}
	searchType := req.SearchType
	if searchType == "" {
		searchType = "basic"
	}

	corpusText, err := s.loader.Assemble(r.Context())
	if err != nil {
		s.logger.Error("corpus assembly failed", "err", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Search operation failed",
			"message": "Unable to search SOP documents: " + err.Error(),
			"query":   query,
			"results": []any{},
		})
		return
	}

	if corpusText == "" {
		writeJSON(w, http.StatusOK, map[string]any{
			"query":       query,
			"search_type": searchType,
			"message":     "No SOP documents found in storage",
			"results":     []any{},
			"total_found": 0,
		})
		return
	}

	if searchType == "advanced" {
		results := s.engine.SearchWithHighlights(query, corpusText, maxResults)

		if len(results) == 1 && results[0].Message != "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"query":       query,
				"search_type": searchType,
				"message":     results[0].Message,
				"results":     []any{},
				"total_found": 0,
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"query":       query,
			"search_type": searchType,
			"results":     results,
			"total_found": len(results),
			"message":     fmt.Sprintf("Found %d results for %q", len(results), query),
		})
		return
	}

	snippets := s.engine.KeywordSearch(query, corpusText)

	if len(snippets) == 1 && strings.HasPrefix(snippets[0], "No results found") {
		writeJSON(w, http.StatusOK, map[string]any{
			"query":       query,
			"search_type": searchType,
			"message":     snippets[0],
			"results":     []any{},
			"total_found": 0,
		})
		return
	}

	formatted := make([]basicResult, 0, maxResults)
	for i, snippet := range snippets {
		if i >= maxResults {
			break
		}
		formatted = append(formatted, basicResult{
			Snippet:      snippet,
			ResultNumber: i + 1,
			MatchType:    "keyword",
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"query":       query,
		"search_type": searchType,
		"results":     formatted,
		"total_found": len(snippets),
		"message":     fmt.Sprintf("Found %d results for %q", len(snippets), query),
	})
}

type chartSlice struct {
	Name       string  `json:"name"`
	Value      int     `json:"value"`
	Fill       string  `json:"fill"`
	Percentage float64 `json:"percentage"`
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	snap, _ := s.snapshot(r.Context())

	var onlinePct, offlinePct float64
	if snap.Total > 0 {
		onlinePct = round1(float64(snap.Online) / float64(snap.Total) * 100)
		offlinePct = round1(float64(snap.Offline) / float64(snap.Total) * 100)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chartData": []chartSlice{
			{Name: "Online", Value: snap.Online, Fill: "#10B981", Percentage: onlinePct},
			{Name: "Offline", Value: snap.Offline, Fill: "#EF4444", Percentage: offlinePct},
		},
		"totalCollectors":   snap.Total,
		"onlineCollectors":  snap.Online,
		"offlineCollectors": snap.Offline,
		"uptimePercentage":  snap.Uptime,
	})
}

func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	snap, live := s.snapshot(r.Context())

	dataSource := "Mock Data"
	if live {
		dataSource = "Real API"
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"chat_system":      "Smart Fallback",
		"data_source":      dataSource,
		"total_collectors": snap.Total,
		"zones_available":  len(snap.Zones),
	})
}

package search

// Topic-focused search helpers. Each appends a fixed keyword set to the
// user's query before searching, biasing the ranking toward the relevant
// kind of content without touching the engine itself.

var (
	procedureKeywords       = []string{"step", "procedure", "process", "follow", "instructions", "guide"}
	troubleshootingKeywords = []string{"troubleshoot", "problem", "issue", "error", "fix", "resolve", "solution"}
	emergencyKeywords       = []string{"emergency", "urgent", "critical", "alarm", "failure", "outage", "incident"}
)

// SearchProcedures searches with a bias toward step-by-step procedural
// content.
func (e *Engine) SearchProcedures(query, documentText string) []string {
	return e.searchEnhanced(query, documentText, procedureKeywords)
}

// SearchTroubleshooting searches with a bias toward diagnostic and
// problem-resolution content.
func (e *Engine) SearchTroubleshooting(query, documentText string) []string {
	return e.searchEnhanced(query, documentText, troubleshootingKeywords)
}

// SearchEmergency searches with a bias toward emergency and incident
// response content.
func (e *Engine) SearchEmergency(query, documentText string) []string {
	return e.searchEnhanced(query, documentText, emergencyKeywords)
}

func (e *Engine) searchEnhanced(query, documentText string, keywords []string) []string {
	enhanced := query
	for _, kw := range keywords {
		enhanced += " " + kw
	}
	return e.KeywordSearch(enhanced, documentText)
}

package analyzer

import "strings"

// ExtractJSON pulls the JSON object out of a model reply. Replies wrapped
// in a ```json fence are unwrapped; otherwise the span from the first '{'
// to the last '}' is taken. Anything else is returned as-is and left to
// the decoder to reject.
func ExtractJSON(response string) string {
	response = strings.TrimSpace(response)

	if idx := strings.Index(response, "```json"); idx >= 0 {
		start := idx + len("```json")
		if end := strings.Index(response[start:], "```"); end >= 0 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start >= 0 && end > start {
		return response[start : end+1]
	}

	return response
}

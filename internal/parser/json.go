package parser

import "strings"

// ExtractFirstJSONArray returns the substring from the first '[' to the
// last ']' in text. This is a deliberate first-to-last heuristic, not a
// balanced scan: it mis-extracts when a completion carries more than
// one top-level array or a nested example after the payload, which is
// acceptable because completions are asked for exactly one structure.
// Returns false when no bracket pair exists in order.
func ExtractFirstJSONArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

// ExtractFirstJSONObject is the brace-delimited counterpart of
// ExtractFirstJSONArray, with the same failure modes.
func ExtractFirstJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}

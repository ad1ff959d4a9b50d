// Package parser turns free-form completions back into structured
// records. Completions are supposed to follow the output format the
// composers request, but the generator deviates, so every field is
// extracted independently and falls back to a documented default
// instead of failing. The one exception is subreddit discovery, where
// an unparsable completion has no useful partial result and surfaces a
// ParseError carrying the raw text.
package parser

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/findmyicp/reddit-assistant/internal/models"
)

var (
	titleRe     = regexp.MustCompile(`(?is)\*\*TITLE:\*\*\s*\n?(.*?)(?:\*\*BODY:|$)`)
	bodyRe      = regexp.MustCompile(`(?is)\*\*BODY:\*\*\s*\n?(.*?)(?:\*\*COMPLIANCE|---|\*\*VARIATION|$)`)
	scoreRe     = regexp.MustCompile(`(?i)\*\*COMPLIANCE SCORE:\*\*\s*(\d+)`)
	notesRe     = regexp.MustCompile(`(?is)\*\*COMPLIANCE NOTES:\*\*\s*\n?(.*?)(?:---|$)`)
	variationRe = regexp.MustCompile(`(?i)\*\*VARIATION \d+:\*\*`)
	varEndRe    = regexp.MustCompile(`(?i)---|\*\*COMPLIANCE`)

	replyRe      = regexp.MustCompile(`(?is)\*\*REPLY:\*\*\s*\n?(.*?)(?:\*\*TONE CHECK:|$)`)
	toneCheckRe  = regexp.MustCompile(`(?i)\*\*TONE CHECK:\*\*\s*([^\n]*)`)
	valueAddedRe = regexp.MustCompile(`(?i)\*\*VALUE ADDED:\*\*\s*([^\n]*)`)
)

// PostResult is the structured content of one post completion. Fields
// missing from the completion carry their defaults: empty title, empty
// body, score 0, no notes, no variations.
type PostResult struct {
	Title           string
	Body            string
	ComplianceScore int
	ComplianceNotes []string
	Variations      []models.Variation
}

// ParsePostCompletion extracts a post draft from completion text.
// Extraction of each field is independent; a malformed section never
// blocks the others, and the function never fails.
func ParsePostCompletion(text string, wantVariations bool, idPrefix string) PostResult {
	result := PostResult{
		ComplianceNotes: []string{},
	}

	if m := titleRe.FindStringSubmatch(text); m != nil {
		result.Title = strings.TrimSpace(m[1])
	}
	if m := bodyRe.FindStringSubmatch(text); m != nil {
		result.Body = strings.TrimSpace(m[1])
	}
	if m := scoreRe.FindStringSubmatch(text); m != nil {
		// \d+ guarantees digits; out-of-range values pass through unclamped
		if score, err := strconv.Atoi(m[1]); err == nil {
			result.ComplianceScore = score
		}
	}
	if m := notesRe.FindStringSubmatch(text); m != nil {
		result.ComplianceNotes = parseBulletLines(m[1])
	}
	if wantVariations {
		result.Variations = parseVariations(text, idPrefix)
	}

	return result
}

// parseBulletLines keeps only lines starting with a bullet dash and
// strips the dash.
func parseBulletLines(block string) []string {
	notes := []string{}
	for _, line := range strings.Split(block, "\n") {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, "-") {
			continue
		}
		note := strings.TrimSpace(strings.TrimPrefix(trimmed, "-"))
		if note != "" {
			notes = append(notes, note)
		}
	}
	return notes
}

// parseVariations scans for VARIATION-n blocks. A block runs from its
// marker to the next marker, a "---" divider, a COMPLIANCE marker, or
// end of input. A block with neither a title nor a body marker is
// discarded; the count found may differ from the count requested.
func parseVariations(text, idPrefix string) []models.Variation {
	markers := variationRe.FindAllStringIndex(text, -1)
	if markers == nil {
		return nil
	}

	var variations []models.Variation
	for i, marker := range markers {
		start := marker[1]
		end := len(text)
		if i+1 < len(markers) {
			end = markers[i+1][0]
		}
		block := text[start:end]
		if stop := varEndRe.FindStringIndex(block); stop != nil {
			block = block[:stop[0]]
		}

		var title, body string
		if m := titleRe.FindStringSubmatch(block); m != nil {
			title = strings.TrimSpace(m[1])
		}
		if m := bodyRe.FindStringSubmatch(block); m != nil {
			body = strings.TrimSpace(m[1])
		}
		if title == "" && body == "" {
			continue
		}

		variations = append(variations, models.Variation{
			ID:    fmt.Sprintf("%s-%d", idPrefix, len(variations)),
			Title: title,
			Body:  body,
			Style: fmt.Sprintf("Variation %d", len(variations)+1),
		})
	}

	return variations
}

// ReplyResult is the structured content of one reply completion.
type ReplyResult struct {
	Reply      string
	ToneCheck  string
	ValueAdded string
}

// ParseReplyCompletion extracts a reply draft. When no REPLY marker is
// found the whole completion is the reply: the raw text is always a
// usable fallback for this field. ToneCheck and ValueAdded default to
// empty strings.
func ParseReplyCompletion(text string) ReplyResult {
	result := ReplyResult{Reply: text}

	if m := replyRe.FindStringSubmatch(text); m != nil {
		if reply := strings.TrimSpace(m[1]); reply != "" {
			result.Reply = reply
		}
	}
	if m := toneCheckRe.FindStringSubmatch(text); m != nil {
		result.ToneCheck = strings.TrimSpace(m[1])
	}
	if m := valueAddedRe.FindStringSubmatch(text); m != nil {
		result.ValueAdded = strings.TrimSpace(m[1])
	}

	return result
}

// conversationScore is one element of the scoring completion's JSON
// array. Only the fields we apply are decoded.
type conversationScore struct {
	TotalScore      int      `json:"total_score"`
	SuggestedAction string   `json:"suggested_action"`
	ReplyAngle      string   `json:"reply_angle"`
	Keywords        []string `json:"keywords"`
}

// ApplyConversationScores applies a scoring completion to conversations
// by position: element i scores conversation i. Elements beyond the
// input length are ignored; conversations beyond the element count keep
// their pre-scoring defaults. An unparsable completion leaves every
// conversation untouched and is never an error.
func ApplyConversationScores(text string, conversations []models.Conversation) {
	raw, ok := ExtractFirstJSONArray(text)
	if !ok {
		return
	}

	var scores []conversationScore
	if err := json.Unmarshal([]byte(raw), &scores); err != nil {
		return
	}

	for i, score := range scores {
		if i >= len(conversations) {
			break
		}
		if score.TotalScore != 0 {
			conversations[i].RelevanceScore = score.TotalScore
		}
		if score.SuggestedAction != "" {
			conversations[i].SuggestedAction = score.SuggestedAction
		}
		if score.ReplyAngle != "" {
			conversations[i].ReplyAngle = score.ReplyAngle
		}
		if len(score.Keywords) > 0 {
			conversations[i].Keywords = score.Keywords
		}
	}
}

// ParseError reports a discovery completion with no parsable JSON. The
// raw completion rides along for debugging.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "failed to parse response"
}

// ParseSubredditSuggestions extracts the subreddits array from a
// discovery completion and normalizes each element into a profile.
// Returns a ParseError when no JSON object can be located or decoded;
// a bulk discovery list has no meaningful partial fallback.
func ParseSubredditSuggestions(text string) ([]models.SubredditProfile, error) {
	raw, ok := ExtractFirstJSONObject(text)
	if !ok {
		return nil, &ParseError{Raw: text}
	}

	var payload struct {
		Subreddits []map[string]interface{} `json:"subreddits"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, &ParseError{Raw: text}
	}

	profiles := make([]models.SubredditProfile, 0, len(payload.Subreddits))
	for _, element := range payload.Subreddits {
		profiles = append(profiles, normalizeSuggestion(element))
	}
	return profiles, nil
}

// Field-resolution table for suggestion normalization: per target
// field, the candidate source keys in preference order (canonical name
// first, then legacy alias). First present key wins, else the default.
var suggestionAliases = map[string][]string{
	"description":          {"description", "relevance"},
	"allowsProductMention": {"allowsProductMention", "promotionalAllowed"},
	"bestPostTypes":        {"bestPostTypes", "postTypes"},
}

func normalizeSuggestion(element map[string]interface{}) models.SubredditProfile {
	name := stringField(element, "name")

	profile := models.SubredditProfile{
		Name:                 name,
		DisplayName:          stringField(element, "displayName"),
		Subscribers:          stringField(element, "subscribers"),
		Description:          resolveString(element, suggestionAliases["description"]),
		Category:             stringField(element, "category"),
		Rules:                rulesField(element),
		AllowsProductMention: resolveBool(element, suggestionAliases["allowsProductMention"]),
		AllowsLinks:          element["allowsLinks"] != false, // true unless explicitly false
		BestPostTypes:        resolveStrings(element, suggestionAliases["bestPostTypes"]),
		TopPostPatterns:      stringsField(element, "topPostPatterns"),
		TitleFormulas:        stringsField(element, "titleFormulas"),
		PostingFrequency:     stringField(element, "postingFrequency"),
	}

	if profile.DisplayName == "" {
		profile.DisplayName = "r/" + name
	}
	if profile.Subscribers == "" {
		profile.Subscribers = "Unknown"
	}
	// Whatever category string the model gave is accepted; only absence
	// falls back.
	if profile.Category == "" {
		profile.Category = "secondary"
	}
	if profile.BestPostTypes == nil {
		profile.BestPostTypes = []string{"storytelling", "experience"}
	}
	if profile.PostingFrequency == "" {
		profile.PostingFrequency = "varies"
	}

	return profile
}

func resolveString(element map[string]interface{}, keys []string) string {
	for _, key := range keys {
		if s, ok := element[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

func resolveBool(element map[string]interface{}, keys []string) bool {
	for _, key := range keys {
		if b, ok := element[key].(bool); ok {
			return b
		}
	}
	return false
}

func resolveStrings(element map[string]interface{}, keys []string) []string {
	for _, key := range keys {
		if values := toStrings(element[key]); values != nil {
			return values
		}
	}
	return nil
}

func stringField(element map[string]interface{}, key string) string {
	s, _ := element[key].(string)
	return s
}

func stringsField(element map[string]interface{}, key string) []string {
	if values := toStrings(element[key]); values != nil {
		return values
	}
	return []string{}
}

func toStrings(value interface{}) []string {
	raw, ok := value.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func rulesField(element map[string]interface{}) []models.Rule {
	rules := []models.Rule{}
	raw, ok := element["rules"].([]interface{})
	if !ok {
		return rules
	}
	for _, v := range raw {
		m, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		rules = append(rules, models.Rule{
			Text:     stringField(m, "text"),
			Severity: stringField(m, "severity"),
		})
	}
	return rules
}

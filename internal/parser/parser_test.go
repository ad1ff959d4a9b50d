package parser

import (
	"testing"

	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParsePostCompletion_WellFormed(t *testing.T) {
	text := `**TITLE:**
How we cut our lead research time in half

**BODY:**
Last quarter we were drowning in manual prospect research.
Here is what changed for us.

**COMPLIANCE SCORE:** 85

**COMPLIANCE NOTES:**
- No direct product link included
- Story leads, product mentioned only in comments
`

	result := ParsePostCompletion(text, false, "var-1")

	assert.Equal(t, "How we cut our lead research time in half", result.Title)
	assert.Contains(t, result.Body, "drowning in manual prospect research")
	assert.Contains(t, result.Body, "what changed for us")
	assert.Equal(t, 85, result.ComplianceScore)
	assert.Equal(t, []string{
		"No direct product link included",
		"Story leads, product mentioned only in comments",
	}, result.ComplianceNotes)
	assert.Empty(t, result.Variations)
}

func TestParsePostCompletion_NoMarkers(t *testing.T) {
	result := ParsePostCompletion("Sorry, I can't help with that.", true, "var-1")

	assert.Equal(t, "", result.Title)
	assert.Equal(t, "", result.Body)
	assert.Equal(t, 0, result.ComplianceScore)
	assert.NotNil(t, result.ComplianceNotes)
	assert.Empty(t, result.ComplianceNotes)
	assert.Empty(t, result.Variations)
}

func TestParsePostCompletion_FieldsIndependent(t *testing.T) {
	// Score present without title or body; the others keep defaults.
	result := ParsePostCompletion("**COMPLIANCE SCORE:** 40", false, "var-1")

	assert.Equal(t, "", result.Title)
	assert.Equal(t, "", result.Body)
	assert.Equal(t, 40, result.ComplianceScore)
}

func TestParsePostCompletion_Variations(t *testing.T) {
	text := `**TITLE:**
Main title

**BODY:**
Main body

**VARIATION 1:**
**TITLE:**
First angle

**BODY:**
First variation body

**VARIATION 2:**
**TITLE:**
Second angle

**BODY:**
Second variation body

---

**COMPLIANCE SCORE:** 90
`

	result := ParsePostCompletion(text, true, "var-9")

	assert.Len(t, result.Variations, 2)
	assert.Equal(t, "var-9-0", result.Variations[0].ID)
	assert.Equal(t, "First angle", result.Variations[0].Title)
	assert.Equal(t, "First variation body", result.Variations[0].Body)
	assert.Equal(t, "Variation 1", result.Variations[0].Style)
	assert.Equal(t, "var-9-1", result.Variations[1].ID)
	assert.Equal(t, "Second angle", result.Variations[1].Title)
	assert.Equal(t, "Second variation body", result.Variations[1].Body)
	assert.Equal(t, "Variation 2", result.Variations[1].Style)
	assert.Equal(t, 90, result.ComplianceScore)
}

func TestParsePostCompletion_MarkerlessVariationDiscarded(t *testing.T) {
	text := `**VARIATION 1:**
Just a plain paragraph with no inner markers.
`

	result := ParsePostCompletion(text, true, "var-2")

	assert.Empty(t, result.Variations)
}

func TestParsePostCompletion_EmptyVariationDiscarded(t *testing.T) {
	text := "**VARIATION 1:**\n\n\n**VARIATION 2:**\n**BODY:**\nReal content here"

	result := ParsePostCompletion(text, true, "var-3")

	assert.Len(t, result.Variations, 1)
	assert.Equal(t, "var-3-0", result.Variations[0].ID)
	assert.Equal(t, "Real content here", result.Variations[0].Body)
	assert.Equal(t, "Variation 1", result.Variations[0].Style)
}

func TestParsePostCompletion_VariationsNotRequested(t *testing.T) {
	text := "**VARIATION 1:**\nSome content"

	result := ParsePostCompletion(text, false, "var-4")

	assert.Empty(t, result.Variations)
}

func TestParseReplyCompletion(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		reply      string
		toneCheck  string
		valueAdded string
	}{
		{
			name: "Well-formed reply",
			text: "**REPLY:**\nHave you tried narrowing your ICP first?\n\n**TONE CHECK:** Helpful, no pitch\n**VALUE ADDED:** Concrete next step",
			reply:      "Have you tried narrowing your ICP first?",
			toneCheck:  "Helpful, no pitch",
			valueAdded: "Concrete next step",
		},
		{
			name:  "No markers falls back to whole text",
			text:  "Just a bare suggestion without any structure.",
			reply: "Just a bare suggestion without any structure.",
		},
		{
			name:      "Tone check without reply marker",
			text:      "Some advice here\n**TONE CHECK:** Casual",
			reply:     "Some advice here\n**TONE CHECK:** Casual",
			toneCheck: "Casual",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseReplyCompletion(tt.text)
			assert.Equal(t, tt.reply, result.Reply)
			assert.Equal(t, tt.toneCheck, result.ToneCheck)
			assert.Equal(t, tt.valueAdded, result.ValueAdded)
		})
	}
}

func TestApplyConversationScores(t *testing.T) {
	conversations := []models.Conversation{
		{ID: "a", RelevanceScore: 50, SuggestedAction: "monitor"},
		{ID: "b", RelevanceScore: 50, SuggestedAction: "monitor"},
	}

	text := `Here are the scores:
[
  {"post_index": 1, "total_score": 82, "suggested_action": "reply", "reply_angle": "Share the ICP framework", "keywords": ["lead gen"]}
]`

	ApplyConversationScores(text, conversations)

	assert.Equal(t, 82, conversations[0].RelevanceScore)
	assert.Equal(t, "reply", conversations[0].SuggestedAction)
	assert.Equal(t, "Share the ICP framework", conversations[0].ReplyAngle)
	assert.Equal(t, []string{"lead gen"}, conversations[0].Keywords)

	// Second conversation has no score element and keeps its defaults.
	assert.Equal(t, 50, conversations[1].RelevanceScore)
	assert.Equal(t, "monitor", conversations[1].SuggestedAction)
}

func TestApplyConversationScores_ZeroScoreKeepsDefault(t *testing.T) {
	conversations := []models.Conversation{
		{ID: "a", RelevanceScore: 50, SuggestedAction: "monitor"},
	}

	ApplyConversationScores(`[{"total_score": 0, "suggested_action": "ignore"}]`, conversations)

	assert.Equal(t, 50, conversations[0].RelevanceScore)
	assert.Equal(t, "ignore", conversations[0].SuggestedAction)
}

func TestApplyConversationScores_UnparsableLeavesDefaults(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "No JSON at all", text: "I could not score these posts."},
		{name: "Malformed array", text: "[{not json]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conversations := []models.Conversation{
				{ID: "a", RelevanceScore: 50, SuggestedAction: "monitor"},
			}
			ApplyConversationScores(tt.text, conversations)
			assert.Equal(t, 50, conversations[0].RelevanceScore)
			assert.Equal(t, "monitor", conversations[0].SuggestedAction)
		})
	}
}

func TestParseSubredditSuggestions(t *testing.T) {
	text := "Here you go:\n" + `{
  "subreddits": [
    {
      "name": "b2bsaas",
      "description": "B2B SaaS founders",
      "subscribers": "45K",
      "category": "primary",
      "allowsProductMention": true,
      "bestPostTypes": ["question"],
      "rules": [{"text": "No spam", "severity": "strict"}]
    },
    {
      "name": "coldemail"
    }
  ]
}`

	profiles, err := ParseSubredditSuggestions(text)

	assert.NoError(t, err)
	assert.Len(t, profiles, 2)

	assert.Equal(t, "b2bsaas", profiles[0].Name)
	assert.Equal(t, "r/b2bsaas", profiles[0].DisplayName)
	assert.Equal(t, "B2B SaaS founders", profiles[0].Description)
	assert.Equal(t, "primary", profiles[0].Category)
	assert.True(t, profiles[0].AllowsProductMention)
	assert.True(t, profiles[0].AllowsLinks)
	assert.Equal(t, []string{"question"}, profiles[0].BestPostTypes)
	assert.Equal(t, []models.Rule{{Text: "No spam", Severity: "strict"}}, profiles[0].Rules)

	// Bare element gets every default.
	assert.Equal(t, "r/coldemail", profiles[1].DisplayName)
	assert.Equal(t, "Unknown", profiles[1].Subscribers)
	assert.Equal(t, "secondary", profiles[1].Category)
	assert.Equal(t, []string{"storytelling", "experience"}, profiles[1].BestPostTypes)
	assert.Equal(t, "varies", profiles[1].PostingFrequency)
	assert.True(t, profiles[1].AllowsLinks)
	assert.False(t, profiles[1].AllowsProductMention)
}

func TestParseSubredditSuggestions_LegacyAliases(t *testing.T) {
	text := `{
  "subreddits": [
    {
      "name": "startups",
      "relevance": "Startup founders discussing growth",
      "promotionalAllowed": true,
      "postTypes": ["experience"]
    }
  ]
}`

	profiles, err := ParseSubredditSuggestions(text)

	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "Startup founders discussing growth", profiles[0].Description)
	assert.True(t, profiles[0].AllowsProductMention)
	assert.Equal(t, []string{"experience"}, profiles[0].BestPostTypes)
}

func TestParseSubredditSuggestions_AllowsLinksExplicitFalse(t *testing.T) {
	text := `{"subreddits": [{"name": "strictsub", "allowsLinks": false}]}`

	profiles, err := ParseSubredditSuggestions(text)

	assert.NoError(t, err)
	assert.False(t, profiles[0].AllowsLinks)
}

func TestParseSubredditSuggestions_NoJSON(t *testing.T) {
	raw := "I cannot produce a subreddit list right now."

	profiles, err := ParseSubredditSuggestions(raw)

	assert.Nil(t, profiles)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, raw, parseErr.Raw)
}

func TestExtractFirstJSONArray(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		ok       bool
	}{
		{
			name:     "Array with surrounding prose",
			text:     "Scores below:\n[1, 2, 3]\nDone.",
			expected: "[1, 2, 3]",
			ok:       true,
		},
		{
			name:     "Fenced array",
			text:     "```json\n[{\"a\": 1}]\n```",
			expected: "[{\"a\": 1}]",
			ok:       true,
		},
		{
			name: "No array",
			text: "nothing here",
		},
		{
			name: "Closer before opener",
			text: "] oops [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractFirstJSONArray(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractFirstJSONObject(t *testing.T) {
	got, ok := ExtractFirstJSONObject("prefix {\"subreddits\": []} suffix")
	assert.True(t, ok)
	assert.Equal(t, "{\"subreddits\": []}", got)

	_, ok = ExtractFirstJSONObject("no braces")
	assert.False(t, ok)
}

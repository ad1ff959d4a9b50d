package models

import "time"

// Rule is a single subreddit rule with its enforcement severity.
type Rule struct {
	Text     string `json:"text"`
	Severity string `json:"severity"` // "strict", "moderate", "flexible"
}

// SubredditProfile holds everything we know about a target subreddit:
// identity, compliance constraints, and posting strategy. Profiles come
// from the static catalog, from user additions, or from AI discovery.
type SubredditProfile struct {
	Name        string `json:"name"` // bare lowercase name, no "r/" prefix
	DisplayName string `json:"displayName"`
	Subscribers string `json:"subscribers"`
	Description string `json:"description"`
	Category    string `json:"category"` // "primary", "secondary", "niche"

	// Rules & compliance
	Rules                []Rule `json:"rules"`
	AllowsProductMention bool   `json:"allowsProductMention"`
	AllowsLinks          bool   `json:"allowsLinks"`
	RequiresFlair        bool   `json:"requiresFlair"`
	MinAccountAge        string `json:"minAccountAge,omitempty"`
	MinKarma             int    `json:"minKarma,omitempty"`

	// Strategy
	BestPostTypes      []string `json:"bestPostTypes"`
	BestContentPillars []string `json:"bestContentPillars"`
	PeakPostingTimes   []string `json:"peakPostingTimes"`
	PostingFrequency   string   `json:"postingFrequency"`

	// Historical patterns
	TopPostPatterns []string `json:"topPostPatterns"`
	TitleFormulas   []string `json:"titleFormulas"`
	AvoidTopics     []string `json:"avoidTopics"`
}

// Variation is an alternative take on a generated post.
type Variation struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
	Style string `json:"style"`
}

// Permissions is a snapshot of the compliance flags that were in effect
// when a draft was generated, denormalized so the caller can display
// them without another catalog lookup.
type Permissions struct {
	AllowsProductMention bool   `json:"allowsProductMention"`
	AllowsLinks          bool   `json:"allowsLinks"`
	Category             string `json:"category,omitempty"`
}

// GeneratedPost is a draft post produced from a single completion.
type GeneratedPost struct {
	ID              string      `json:"id"`
	Subreddit       string      `json:"subreddit"`
	Title           string      `json:"title"`
	Body            string      `json:"body"`
	PostType        string      `json:"postType"`
	ContentPillar   string      `json:"contentPillar,omitempty"`
	ComplianceScore int         `json:"complianceScore"`
	ComplianceNotes []string    `json:"complianceNotes"`
	CreatedAt       time.Time   `json:"createdAt"`
	Status          string      `json:"status"`
	Variations      []Variation `json:"variations,omitempty"`
	Permissions     Permissions `json:"subredditConfig"`
	RawResponse     string      `json:"rawResponse,omitempty"`
}

// GeneratedReply is a draft reply to an existing Reddit post.
type GeneratedReply struct {
	ID                string    `json:"id"`
	OriginalPostURL   string    `json:"originalPostUrl"`
	OriginalPostTitle string    `json:"originalPostTitle"`
	OriginalPostBody  string    `json:"originalPostBody"`
	Subreddit         string    `json:"subreddit"`
	Reply             string    `json:"reply"`
	Tone              string    `json:"tone"`
	ToneCheck         string    `json:"toneCheck"`
	ValueAdded        string    `json:"valueAdded"`
	CreatedAt         time.Time `json:"createdAt"`
	Status            string    `json:"status"`
}

// Conversation is a normalized candidate post found via search. Records
// start with the documented defaults (relevance 50, action "monitor")
// and may be enriched in place by AI scoring.
type Conversation struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Body            string    `json:"body"`
	URL             string    `json:"url"`
	Subreddit       string    `json:"subreddit"`
	Author          string    `json:"author"`
	Score           int       `json:"score"`
	NumComments     int       `json:"numComments"`
	CreatedAt       time.Time `json:"createdAt"`
	RelevanceScore  int       `json:"relevanceScore"`
	SuggestedAction string    `json:"suggestedAction"` // "reply", "monitor", "ignore"
	ReplyAngle      string    `json:"replyAngle,omitempty"`
	Keywords        []string  `json:"keywords"`
}

// Activity entry types.
const (
	ActivityPostGenerated       = "post_generated"
	ActivityReplyGenerated      = "reply_generated"
	ActivityConversationSearch  = "conversation_search"
	ActivitySubredditDiscovered = "subreddit_discovered"
	ActivityPostCopied          = "post_copied"
	ActivityError               = "error"
)

// ActivityEntry is one record in the append-only activity log.
type ActivityEntry struct {
	ID        string                 `json:"id"`
	Type      string                 `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Data      map[string]interface{} `json:"data"`
}

// ScanReport summarizes one scheduled conversation scan for digest delivery.
type ScanReport struct {
	GeneratedAt   time.Time      `json:"generated_at"`
	Period        string         `json:"period"` // "daily" or "weekly"
	Keywords      []string       `json:"keywords"`
	TotalFound    int            `json:"total_found"`
	Conversations []Conversation `json:"conversations"`
	Summary       map[string]int `json:"summary"` // counts by suggested action
}

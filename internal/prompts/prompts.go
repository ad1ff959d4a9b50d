// Package prompts renders the instruction strings sent to the
// generation backend. Composers are pure functions over structured
// parameters; the output format sections they emit are what
// internal/parser extracts against, so the two packages change
// together.
package prompts

import (
	"fmt"
	"strings"

	"github.com/findmyicp/reddit-assistant/internal/catalog"
	"github.com/findmyicp/reddit-assistant/internal/models"
)

const bodyPreviewLen = 150

// ExamplePost is a top-performing post supplied as style guidance.
type ExamplePost struct {
	Title string `json:"title"`
	Score int    `json:"score"`
	Body  string `json:"body,omitempty"`
}

// PreviousPost is an earlier draft the model should avoid repeating.
type PreviousPost struct {
	Title     string `json:"title"`
	Subreddit string `json:"subreddit"`
}

// PersonaOverride lets the caller substitute parts of the brand persona.
// Zero-value fields fall back to the brand defaults.
type PersonaOverride struct {
	Name         string   `json:"name,omitempty"`
	Title        string   `json:"title,omitempty"`
	Background   []string `json:"background,omitempty"`
	Expertise    []string `json:"expertise,omitempty"`
	WritingStyle string   `json:"writingStyle,omitempty"`
}

// PostParams are the inputs to the post-generation composer.
type PostParams struct {
	Topic              string
	Subreddit          models.SubredditProfile
	Template           catalog.PostTemplate
	Pillar             *catalog.ContentPillar
	ExamplePosts       []ExamplePost
	GenerateVariations bool
	Persona            *PersonaOverride
	PreviousPosts      []PreviousPost
}

// BuildPostPrompt renders the post-generation instruction string.
func BuildPostPrompt(brand *catalog.Brand, p PostParams) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are an expert Reddit content creator. Generate a high-quality Reddit post for r/%s that follows the community guidelines and matches the style of successful posts in this subreddit.\n\n", p.Subreddit.Name)

	b.WriteString("BRAND INFORMATION:\n")
	fmt.Fprintf(&b, "- Brand Name: %s\n", brand.Product.Name)
	b.WriteString("- Industry: B2B SaaS / Sales Intelligence\n")
	fmt.Fprintf(&b, "- Description: %s\n", brand.Product.Tagline)
	b.WriteString("- Target Audience: Founders, sales leaders, event professionals\n")
	fmt.Fprintf(&b, "- Value Proposition: %s\n", strings.Join(brand.Product.ValueProps, ", "))

	if p.Persona != nil {
		b.WriteString("\nUSER PERSONA (use this to make the post more authentic):\n")
		fmt.Fprintf(&b, "- Name: %s\n", firstNonEmpty(p.Persona.Name, brand.Founder.Name))
		fmt.Fprintf(&b, "- Title: %s\n", firstNonEmpty(p.Persona.Title, brand.Founder.Title))
		fmt.Fprintf(&b, "- Background: %s\n", joinOrDefault(p.Persona.Background, brand.Founder.Background))
		fmt.Fprintf(&b, "- Expertise: %s\n", joinOrDefault(p.Persona.Expertise, brand.Founder.Expertise))
		fmt.Fprintf(&b, "- Writing Style: %s\n", firstNonEmpty(p.Persona.WritingStyle, "Casual, conversational, uses real examples"))
	}

	b.WriteString("\nSUBREDDIT RULES:\n")
	for _, rule := range p.Subreddit.Rules {
		fmt.Fprintf(&b, "- [%s] %s\n", strings.ToUpper(rule.Severity), rule.Text)
	}
	fmt.Fprintf(&b, "- Product Mentions: %s\n", permissionLabel(p.Subreddit.AllowsProductMention, "Allowed (but be subtle)"))
	fmt.Fprintf(&b, "- Links: %s\n", permissionLabel(p.Subreddit.AllowsLinks, "Allowed"))

	if len(p.ExamplePosts) > 0 {
		fmt.Fprintf(&b, "\nEXAMPLE SUCCESSFUL POSTS FROM r/%s:\n", p.Subreddit.Name)
		for i, ex := range p.ExamplePosts {
			fmt.Fprintf(&b, "%d. %q (Score: %d)", i+1, ex.Title, ex.Score)
			if ex.Body != "" {
				fmt.Fprintf(&b, "\n   Preview: %s...", truncate(ex.Body, bodyPreviewLen))
			}
			b.WriteString("\n")
		}
	}

	if len(p.PreviousPosts) > 0 {
		b.WriteString("\nPREVIOUSLY GENERATED POSTS (avoid similar angles):\n")
		for i, prev := range p.PreviousPosts {
			fmt.Fprintf(&b, "%d. %q in r/%s\n", i+1, prev.Title, prev.Subreddit)
		}
	}

	b.WriteString(`
IMPORTANT GUIDELINES:
1. Create authentic, value-driven content that fits naturally in the subreddit
2. Follow all subreddit rules strictly
3. Match the tone and style of the example posts
4. Provide genuine value to the community
5. If appropriate, subtly mention the brand only where it adds value
6. Choose an appropriate flair based on the examples
7. Make the content engaging and discussion-worthy
8. Avoid any promotional language or obvious marketing tactics
9. Focus on starting conversations and providing insights
10. Do not add emojis to the post
11. Sentence structure should be natural, not robotic
12. Do not use any type of formatting like markdown headers (### or **bold**), no bullet points with dashes, no em dashes ever. New lines are fine. The post needs to be naturally structured like a real Reddit user would write it. You can use formats from the example top performing posts.
`)

	fmt.Fprintf(&b, "\nPOST TYPE: %s %s\n%s\n", p.Template.Emoji, p.Template.Name, p.Template.Description)
	fmt.Fprintf(&b, "\nUSER'S TOPIC/CONTEXT:\n%s\n", p.Topic)

	if p.Pillar != nil {
		fmt.Fprintf(&b, "\nCONTENT PILLAR: %s\n%s\nKeywords to consider: %s\n",
			p.Pillar.Name, p.Pillar.Description, strings.Join(p.Pillar.Keywords, ", "))
	}

	b.WriteString(`
Generate a Reddit post that would perform well in this community.

OUTPUT FORMAT:
**TITLE:**
[Compelling title - no emojis, natural language]

**BODY:**
[Full post content following the guidelines above. Write like a real person, not a marketer.]

**COMPLIANCE SCORE:** [1-10]
**COMPLIANCE NOTES:**
- [Note 1: How this complies with rules]
- [Note 2: Any potential concerns]
`)

	if p.GenerateVariations {
		b.WriteString(`
---

Now generate 2 more variations with different angles:

**VARIATION 2:**
**TITLE:**
[Different title and approach]

**BODY:**
[Different content with same natural style]

**VARIATION 3:**
**TITLE:**
[Another different angle]

**BODY:**
[Different content with same natural style]
`)
	}

	return b.String()
}

// ReplyParams are the inputs to the reply-generation composer.
type ReplyParams struct {
	OriginalTitle string
	OriginalBody  string
	Subreddit     models.SubredditProfile
	Tone          string
	Context       string
}

// BuildReplyPrompt renders the reply-generation instruction string.
func BuildReplyPrompt(brand *catalog.Brand, p ReplyParams) string {
	template := catalog.PostTemplates["reply"]

	var b strings.Builder

	fmt.Fprintf(&b, "You are %s, %s.\n\n", brand.Founder.Name, brand.Founder.Title)

	b.WriteString("## YOUR BACKGROUND\n")
	for _, bg := range headOf(brand.Founder.Background, 3) {
		fmt.Fprintf(&b, "- %s\n", bg)
	}

	b.WriteString("\n## YOUR PRODUCT (for context, do NOT promote directly)\n")
	fmt.Fprintf(&b, "%s: %s\n", brand.Product.Name, brand.Product.Tagline)

	b.WriteString("\n## VOICE & TONE\n")
	fmt.Fprintf(&b, "Tone for this reply: %s\n", p.Tone)
	fmt.Fprintf(&b, "General style: %s\n", brand.Voice.Tone)
	for _, s := range headOf(brand.Voice.Style, 3) {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	b.WriteString("\n---\n\n## TASK: Generate a reply to this Reddit post\n\n")
	fmt.Fprintf(&b, "### SUBREDDIT: r/%s\n", p.Subreddit.Name)
	fmt.Fprintf(&b, "- Product mentions allowed: %s\n", yesNo(p.Subreddit.AllowsProductMention, "Yes (subtle only)", "NO"))
	fmt.Fprintf(&b, "- Links allowed: %s\n", yesNo(p.Subreddit.AllowsLinks, "Yes", "No"))

	b.WriteString("\n### ORIGINAL POST\n")
	fmt.Fprintf(&b, "**Title:** %s\n\n", p.OriginalTitle)
	body := p.OriginalBody
	if body == "" {
		body = "[No body text - title only post]"
	}
	fmt.Fprintf(&b, "**Body:**\n%s\n", body)

	b.WriteString("\n---\n\n## REPLY STRUCTURE\n")
	for i, s := range template.Structure {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s)
	}

	if p.Context != "" {
		fmt.Fprintf(&b, "\n## ADDITIONAL CONTEXT FROM USER\n%s\n", p.Context)
	}

	b.WriteString("\n---\n\n## REPLY REQUIREMENTS\n")
	b.WriteString("1. Be genuinely helpful - add real value\n")
	b.WriteString("2. Reference something specific from their post\n")
	b.WriteString("3. Share a relevant experience or insight\n")
	fmt.Fprintf(&b, "4. %s\n", yesNo(p.Subreddit.AllowsProductMention,
		"Can mention product if naturally relevant, but very subtly",
		"DO NOT mention any products or tools"))
	b.WriteString("5. Keep it concise but substantive (2-4 paragraphs max)\n")
	b.WriteString("6. Sound like a real person, not a marketer\n")
	b.WriteString("7. End with engagement (question or invitation to discuss)\n")

	fmt.Fprintf(&b, `
## OUTPUT FORMAT

**REPLY:**
[Your reply content here]

**TONE CHECK:** [Confirms the tone matches: %s]
**VALUE ADDED:** [Brief description of what value this reply provides]
`, p.Tone)

	return b.String()
}

// ScoringCandidate is one post in a conversation-scoring batch.
type ScoringCandidate struct {
	Title     string
	Body      string
	Subreddit string
	Score     int
}

// BuildScoringPrompt renders the conversation-scoring instruction
// string for a bounded batch of candidates.
func BuildScoringPrompt(brand *catalog.Brand, candidates []ScoringCandidate) string {
	var b strings.Builder

	b.WriteString("You are analyzing Reddit posts to find the best opportunities for engagement.\n\n")
	b.WriteString("## CONTEXT\n")
	fmt.Fprintf(&b, "We're looking for posts where %s from %s could add genuine value.\n\n", brand.Founder.Name, brand.Product.Name)
	fmt.Fprintf(&b, "Our product: %s\n", brand.Product.Tagline)
	fmt.Fprintf(&b, "Our expertise: %s\n", strings.Join(brand.Founder.Expertise, ", "))

	b.WriteString("\n## POSTS TO ANALYZE\n")
	for i, c := range candidates {
		fmt.Fprintf(&b, "\n### Post %d\n", i+1)
		fmt.Fprintf(&b, "- Subreddit: r/%s\n", c.Subreddit)
		fmt.Fprintf(&b, "- Title: %s\n", c.Title)
		body := "N/A"
		if c.Body != "" {
			body = truncate(c.Body, 300)
		}
		fmt.Fprintf(&b, "- Body: %s...\n", body)
		fmt.Fprintf(&b, "- Score: %d\n", c.Score)
	}

	b.WriteString(`
## SCORING CRITERIA (score each post 1-100)
1. **Relevance (40%)**: How relevant is this to our expertise/product?
2. **Opportunity (30%)**: Can we add genuine value here?
3. **Timing (15%)**: Is this fresh enough to engage?
4. **Risk (15%)**: Low risk of seeming promotional?

## OUTPUT FORMAT
For each post, provide:
{
  "post_index": 1,
  "relevance_score": 85,
  "opportunity_score": 70,
  "timing_score": 90,
  "risk_score": 80,
  "total_score": 82,
  "suggested_action": "reply" | "monitor" | "ignore",
  "reply_angle": "Brief suggestion on how to engage",
  "keywords": ["keyword1", "keyword2"]
}

Return as JSON array.
`)

	return b.String()
}

// DiscoveryParams are the inputs to the subreddit-discovery composer.
type DiscoveryParams struct {
	SearchTerms string
	Exclude     []string
	Limit       int
}

// BuildDiscoveryPrompt renders the subreddit-discovery instruction
// string. The requested JSON shape is what
// parser.ParseSubredditSuggestions normalizes.
func BuildDiscoveryPrompt(p DiscoveryParams) string {
	excluded := strings.Join(p.Exclude, ", ")
	if excluded == "" {
		excluded = "None"
	}

	return fmt.Sprintf(`You are an expert at finding relevant Reddit communities for marketing and lead generation.

SEARCH KEYWORDS: %s

EXISTING SUBREDDITS TO EXCLUDE:
%s

TASK: Suggest %d relevant subreddits based on the keywords above.

For each subreddit, determine:
1. Whether promotional content (product mentions) is allowed based on typical subreddit rules
2. Whether external links are typically allowed
3. The category: "primary" (high relevance, large audience), "secondary" (good fit, medium audience), or "niche" (specialized, smaller)

Return ONLY valid JSON in this exact format (no markdown, no explanation):
{
  "subreddits": [
    {
      "name": "entrepreneur",
      "displayName": "r/entrepreneur",
      "subscribers": "3.2M",
      "description": "High-quality posts by entrepreneurs sharing lessons and experiences",
      "category": "primary",
      "allowsProductMention": false,
      "allowsLinks": true,
      "bestPostTypes": ["storytelling", "experience", "discussion"],
      "topPostPatterns": ["I built X and learned Y", "After 5 years..."],
      "titleFormulas": ["How I...", "Lessons from..."],
      "postingFrequency": "daily"
    }
  ]
}

Important: Return real, existing subreddits only. Category should be one of: "primary", "secondary", or "niche".`, p.SearchTerms, excluded, p.Limit)
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func joinOrDefault(values, fallback []string) string {
	if len(values) > 0 {
		return strings.Join(values, ", ")
	}
	return strings.Join(fallback, ", ")
}

func permissionLabel(allowed bool, allowedLabel string) string {
	if allowed {
		return allowedLabel
	}
	return "NOT ALLOWED"
}

func yesNo(allowed bool, yes, no string) string {
	if allowed {
		return yes
	}
	return no
}

func headOf(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length]
}

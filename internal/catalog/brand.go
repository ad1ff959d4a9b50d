package catalog

// Persona describes the person posts and replies are written as.
type Persona struct {
	Name         string
	Username     string
	Title        string
	Background   []string
	Expertise    []string
	WritingStyle string
}

// Product describes the product being (softly) promoted.
type Product struct {
	Name       string
	URL        string
	Tagline    string
	ValueProps []string
	UseCases   []string
}

// Voice captures the tone guidance baked into every prompt.
type Voice struct {
	Tone    string
	Style   []string
	Avoid   []string
	Embrace []string
}

// ContentPillar is a recurring content theme with its keyword set.
type ContentPillar struct {
	ID          string
	Name        string
	Description string
	Keywords    []string
}

// Brand bundles the persona, product, voice and pillars used by the
// prompt composers.
type Brand struct {
	Founder        Persona
	Product        Product
	Voice          Voice
	ContentPillars []ContentPillar
}

// Pillar returns the content pillar with the given id, if any.
func (b *Brand) Pillar(id string) *ContentPillar {
	for i := range b.ContentPillars {
		if b.ContentPillars[i].ID == id {
			return &b.ContentPillars[i]
		}
	}
	return nil
}

// DefaultBrand is the FindMyICP brand configuration.
var DefaultBrand = Brand{
	Founder: Persona{
		Name:     "Aniruddh Gupta",
		Username: "aniruddh",
		Title:    "Founder of FindMyICP.com",
		Background: []string{
			"B2B lead generation expert",
			"Built and scaled multiple side projects",
			"Clay Creator and Smartlead Certified Partner",
			"Active in RevGenius, 10Xer Club, GrowthX communities",
			"Experience at GrowthSchool, Growton, and various startups",
		},
		Expertise: []string{
			"LinkedIn marketing",
			"Email marketing & outbound",
			"Lead generation",
			"Event networking",
			"Growth hacking",
			"Sales automation",
		},
	},
	Product: Product{
		Name:    "FindMyICP",
		URL:     "FindMyICP.com",
		Tagline: "Turn the Luma guest list into actionable intelligence",
		ValueProps: []string{
			"Extract Luma event attendee data",
			"Identify your ICPs before events",
			"Get LinkedIn profiles of attendees",
			"Network with precision",
			"Better lead generation from events",
		},
		UseCases: []string{
			"Networking at tech events",
			"Finding potential customers at conferences",
			"Pre-event research and preparation",
			"Building targeted outreach lists",
			"Identifying decision-makers at events",
		},
	},
	Voice: Voice{
		Tone: "direct and respectful",
		Style: []string{
			"Conversational, not salesy",
			"Share genuine experiences and learnings",
			"Add value first, soft-promote later",
			"Use storytelling to make points relatable",
			"Sound like a fellow entrepreneur, not a marketer",
		},
		Avoid: []string{
			"Excessive exclamation marks",
			"Hype language",
			"Pushy sales tactics",
			"Generic marketing speak",
			"Overpromising",
		},
		Embrace: []string{
			"Vulnerability about failures",
			"Specific numbers and metrics",
			"Actionable insights",
			"Genuine questions",
			"Helping others without expecting return",
		},
	},
	ContentPillars: []ContentPillar{
		{
			ID:          "event-networking",
			Name:        "Event Networking Insights",
			Description: "Tips on maximizing value from tech events and conferences",
			Keywords:    []string{"luma", "events", "networking", "conferences", "meetups"},
		},
		{
			ID:          "lead-generation",
			Name:        "Lead Generation Tactics",
			Description: "B2B lead gen strategies, tools, and case studies",
			Keywords:    []string{"leads", "outbound", "cold outreach", "prospecting", "ICP"},
		},
		{
			ID:          "product-insights",
			Name:        "Product Building & Launches",
			Description: "Sharing what we're building, why, and learnings",
			Keywords:    []string{"product", "building", "startup", "launch", "features"},
		},
		{
			ID:          "growth-tactics",
			Name:        "Growth & Marketing Tactics",
			Description: "Actionable growth strategies that worked",
			Keywords:    []string{"growth", "marketing", "acquisition", "traffic", "conversion"},
		},
		{
			ID:          "founder-journey",
			Name:        "Founder Journey & Learnings",
			Description: "Personal stories, wins, failures, and lessons",
			Keywords:    []string{"founder", "journey", "startup", "lessons", "mistakes"},
		},
	},
}

// PostTemplate describes one post type: what it is and how it should be
// structured.
type PostTemplate struct {
	Name        string
	Emoji       string
	Description string
	Structure   []string
	Example     string
}

// PostTemplates is the fixed post-type table. Unknown keys are a caller
// error at the handler boundary.
var PostTemplates = map[string]PostTemplate{
	"storytelling": {
		Name:        "Storytelling",
		Emoji:       "\U0001F4D6",
		Description: "Personal journey or experience post",
		Structure: []string{
			"Hook: Start with a relatable problem or surprising insight",
			"Context: Brief background on the situation",
			"Journey: What happened, what you tried",
			"Lesson: The key insight or takeaway",
			"Call to discussion: Invite others to share their experience",
		},
		Example: "I spent 3 months manually researching event attendees before every conference...",
	},
	"experience": {
		Name:        "Experience/Learning",
		Emoji:       "\U0001F4A1",
		Description: "What I discovered or learned",
		Structure: []string{
			"The discovery: What you learned",
			"How you found it: The experiment or situation",
			"The impact: What changed as a result",
			"The application: How others can use this",
		},
		Example: "After analyzing 50+ Luma events, I noticed a pattern...",
	},
	"suggestion": {
		Name:        "Tips & Suggestions",
		Emoji:       "\U0001F3AF",
		Description: "Helpful recommendations for others",
		Structure: []string{
			"The problem: What issue are you solving",
			"The solution: Clear, actionable steps",
			"Why it works: Brief explanation",
			"Pro tip: One advanced insight",
		},
		Example: "Here's how I prepare for any networking event in 10 minutes...",
	},
	"question": {
		Name:        "Discussion Question",
		Emoji:       "❓",
		Description: "Genuine question to engage the community",
		Structure: []string{
			"Context: Why you're asking",
			"The question: Clear and specific",
			"Your current thinking: What you've tried or considered",
			"What you're looking for: Type of advice needed",
		},
		Example: "How do you handle following up with people you meet at events?",
	},
	"promotional": {
		Name:        "Soft Promotion",
		Emoji:       "\U0001F4E2",
		Description: "Subtle product mention (only where allowed)",
		Structure: []string{
			"Value-first: Start with useful insight",
			"The problem: What pain point exists",
			"Your approach: How you solved it (product naturally fits)",
			"Results: What changed",
			"Offer: Invite to learn more (not pushy)",
		},
		Example: "We built a tool to solve the exact problem I kept facing at Luma events...",
	},
	"reply": {
		Name:        "Reply/Comment",
		Emoji:       "\U0001F4AC",
		Description: "Thoughtful response to existing discussion",
		Structure: []string{
			"Acknowledge: Reference what they said",
			"Add value: Your perspective or experience",
			"Be helpful: Actionable insight if possible",
			"Engage: Ask a follow-up or invite continued discussion",
		},
		Example: "Great point about pre-event research. What I've found works well is...",
	},
}

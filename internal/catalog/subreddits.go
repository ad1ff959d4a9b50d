package catalog

import "github.com/findmyicp/reddit-assistant/internal/models"

// DefaultSubreddits is the static catalog of researched subreddit
// profiles the working set starts from.
var DefaultSubreddits = []models.SubredditProfile{
	{
		Name:        "entrepreneur",
		DisplayName: "r/entrepreneur",
		Subscribers: "3.2M",
		Description: "A community for discussion about entrepreneurship",
		Category:    "primary",
		Rules: []models.Rule{
			{Text: "No direct self-promotion or links to your own business", Severity: "strict"},
			{Text: "No referral codes or affiliate links", Severity: "strict"},
			{Text: "Context and value must come before any mention of your product", Severity: "strict"},
			{Text: "Store/Business feedback only in designated threads", Severity: "moderate"},
			{Text: "No low-effort posts or one-liners", Severity: "moderate"},
		},
		AllowsProductMention: false,
		AllowsLinks:          false,
		RequiresFlair:        true,
		BestPostTypes:        []string{"storytelling", "experience", "question"},
		BestContentPillars:   []string{"founder-journey", "growth-tactics", "lead-generation"},
		PeakPostingTimes:     []string{"Tuesday 9-11 AM EST", "Wednesday 10 AM EST", "Thursday 2 PM EST"},
		PostingFrequency:     "Max 1-2 per week, different topics",
		TopPostPatterns: []string{
			"Personal failure stories with lessons",
			"Specific revenue/growth numbers",
			"Contrarian takes on common advice",
			"Before/after transformation stories",
		},
		TitleFormulas: []string{
			"I [achieved X] in [timeframe]. Here's what I learned.",
			"After [X years/months] of [activity], here's the truth about [topic]",
			"[Specific metric] later, here's what actually works for [topic]",
			"The [topic] advice that changed everything for me",
		},
		AvoidTopics: []string{"Direct product pitches", "Asking for feedback on business ideas", "Generic motivation posts"},
	},
	{
		Name:        "startups",
		DisplayName: "r/startups",
		Subscribers: "1.2M",
		Description: "Discussion hub for startups and entrepreneurship",
		Category:    "primary",
		Rules: []models.Rule{
			{Text: "No direct advertisements or promotional posts", Severity: "strict"},
			{Text: "Share Saturday is the only time for self-promo", Severity: "strict"},
			{Text: "Provide substantial value in every post", Severity: "moderate"},
			{Text: "No asking for feedback without substantial context", Severity: "moderate"},
		},
		AllowsProductMention: false,
		AllowsLinks:          false,
		RequiresFlair:        true,
		BestPostTypes:        []string{"storytelling", "experience"},
		BestContentPillars:   []string{"founder-journey", "product-insights"},
		PeakPostingTimes:     []string{"Monday 10 AM EST", "Wednesday 9 AM EST", "Friday 11 AM EST"},
		PostingFrequency:     "Max 1 per week, Share Saturday for promos",
		TopPostPatterns: []string{
			"Deep-dive case studies with specific metrics",
			"Vulnerability about challenges faced",
			"Specific tactical advice with examples",
			"Genuine questions about strategy",
		},
		TitleFormulas: []string{
			"How we went from [A] to [B] in [timeframe]",
			"The mistake that almost killed our startup",
			"[Specific question] - looking for advice from founders who've been there",
		},
		AvoidTopics: []string{"Generic startup advice", "Unsolicited product feedback requests"},
	},
	{
		Name:        "SaaS",
		DisplayName: "r/SaaS",
		Subscribers: "150K",
		Description: "Community for SaaS founders, marketers, and enthusiasts",
		Category:    "primary",
		Rules: []models.Rule{
			{Text: "Self-promotion allowed in moderation", Severity: "flexible"},
			{Text: "Must provide value alongside any promotion", Severity: "moderate"},
			{Text: "No spam or repetitive posting", Severity: "strict"},
			{Text: "Engage with comments on your posts", Severity: "moderate"},
		},
		AllowsProductMention: true,
		AllowsLinks:          true,
		BestPostTypes:        []string{"storytelling", "experience", "promotional"},
		BestContentPillars:   []string{"product-insights", "growth-tactics", "lead-generation"},
		PeakPostingTimes:     []string{"Tuesday 11 AM EST", "Thursday 2 PM EST"},
		PostingFrequency:     "1-2 per week, mix promotional and value",
		TopPostPatterns: []string{
			"MRR/ARR growth stories with specific numbers",
			"Behind-the-scenes of building features",
			"Tool stacks and automation setups",
			"Honest revenue/growth updates",
		},
		TitleFormulas: []string{
			"How we got our first [X] customers",
			"Built [feature] in [timeframe] - here's what happened",
			"Our journey from $0 to $[X]k MRR",
			"[Tool type] for [use case] - would love feedback",
		},
		AvoidTopics: []string{"Generic SaaS advice without specifics"},
	},
	{
		Name:        "marketing",
		DisplayName: "r/marketing",
		Subscribers: "850K",
		Description: "Discussion of marketing strategies and tactics",
		Category:    "secondary",
		Rules: []models.Rule{
			{Text: "No self-promotion or spam", Severity: "strict"},
			{Text: "Links must add value to discussion", Severity: "moderate"},
			{Text: "Be respectful and constructive", Severity: "moderate"},
			{Text: "No job postings outside designated threads", Severity: "strict"},
		},
		AllowsProductMention: false,
		AllowsLinks:          false,
		BestPostTypes:        []string{"experience", "suggestion", "question"},
		BestContentPillars:   []string{"growth-tactics", "lead-generation"},
		PeakPostingTimes:     []string{"Wednesday 10 AM EST", "Friday 9 AM EST"},
		PostingFrequency:     "Max 1 per week",
		TopPostPatterns: []string{
			"Data-backed marketing insights",
			"Case studies without naming your company",
			"Tactical how-to guides",
			"Industry trend analysis",
		},
		TitleFormulas: []string{
			"What [X] taught me about [marketing topic]",
			"[X]% increase in [metric] - here's the strategy",
			"Unpopular opinion: [contrarian marketing take]",
		},
		AvoidTopics: []string{"Direct product mentions", "Generic marketing tips"},
	},
	{
		Name:        "sales",
		DisplayName: "r/sales",
		Subscribers: "250K",
		Description: "Community for sales professionals",
		Category:    "secondary",
		Rules: []models.Rule{
			{Text: "No spam or excessive self-promotion", Severity: "strict"},
			{Text: "Be helpful and constructive", Severity: "moderate"},
			{Text: "Sales tips must be actionable", Severity: "moderate"},
		},
		AllowsProductMention: false,
		AllowsLinks:          false,
		BestPostTypes:        []string{"experience", "suggestion"},
		BestContentPillars:   []string{"lead-generation", "growth-tactics"},
		PeakPostingTimes:     []string{"Monday 9 AM EST", "Thursday 10 AM EST"},
		PostingFrequency:     "Max 1 per week",
		TopPostPatterns: []string{
			"Cold outreach templates that worked",
			"Prospecting techniques with results",
			"Sales tool recommendations (genuine)",
			"Celebrating wins and discussing losses",
		},
		TitleFormulas: []string{
			"This [approach] 2x'd my response rate",
			"After [X] cold calls, here's what I learned",
			"The sales technique nobody talks about",
		},
		AvoidTopics: []string{"Tool pitches", "Generic sales motivation"},
	},
	{
		Name:        "growthacking",
		DisplayName: "r/growthacking",
		Subscribers: "85K",
		Description: "Growth hacking strategies and tactics",
		Category:    "primary",
		Rules: []models.Rule{
			{Text: "Share actionable growth tactics", Severity: "moderate"},
			{Text: "No low-quality content", Severity: "moderate"},
			{Text: "Self-promotion must add value", Severity: "flexible"},
		},
		AllowsProductMention: true,
		AllowsLinks:          true,
		BestPostTypes:        []string{"experience", "suggestion", "promotional"},
		BestContentPillars:   []string{"growth-tactics", "lead-generation", "product-insights"},
		PeakPostingTimes:     []string{"Tuesday 2 PM EST", "Thursday 11 AM EST"},
		PostingFrequency:     "2-3 per week okay if valuable",
		TopPostPatterns: []string{
			"Step-by-step growth experiments",
			"Before/after metrics from tactics",
			"Unconventional acquisition channels",
			"Automation and tool stack reveals",
		},
		TitleFormulas: []string{
			"How I got [X] users in [timeframe] with [tactic]",
			"The growth hack that [specific result]",
			"[Unconventional channel] for B2B - here's how",
		},
		AvoidTopics: []string{"Generic growth advice"},
	},
	{
		Name:        "smallbusiness",
		DisplayName: "r/smallbusiness",
		Subscribers: "1.5M",
		Description: "Community for small business owners",
		Category:    "secondary",
		Rules: []models.Rule{
			{Text: "No advertising or self-promotion", Severity: "strict"},
			{Text: "Be helpful and supportive", Severity: "moderate"},
			{Text: "No asking what business to start", Severity: "moderate"},
			{Text: "Specific questions only", Severity: "moderate"},
		},
		AllowsProductMention: false,
		AllowsLinks:          false,
		BestPostTypes:        []string{"experience", "suggestion", "question"},
		BestContentPillars:   []string{"founder-journey", "lead-generation"},
		PeakPostingTimes:     []string{"Monday 10 AM EST", "Wednesday 2 PM EST"},
		PostingFrequency:     "Max 1 per week",
		TopPostPatterns: []string{
			"Operational insights and tips",
			"Real challenges faced and solutions",
			"Cost-saving strategies",
			"Genuine advice requests",
		},
		TitleFormulas: []string{
			"After [X] years in [industry], here's what I wish I knew",
			"The [topic] that saved my business",
			"Looking for advice on [specific situation]",
		},
		AvoidTopics: []string{"Product promotion", "Generic business motivation"},
	},
	{
		Name:        "Emailmarketing",
		DisplayName: "r/Emailmarketing",
		Subscribers: "45K",
		Description: "Email marketing strategies and tools",
		Category:    "niche",
		Rules: []models.Rule{
			{Text: "Share valuable email marketing content", Severity: "moderate"},
			{Text: "Tool recommendations welcome if helpful", Severity: "flexible"},
		},
		AllowsProductMention: true,
		AllowsLinks:          true,
		BestPostTypes:        []string{"experience", "suggestion", "promotional"},
		BestContentPillars:   []string{"lead-generation", "growth-tactics"},
		PeakPostingTimes:     []string{"Tuesday 10 AM EST", "Thursday 2 PM EST"},
		PostingFrequency:     "1-2 per week",
		TopPostPatterns: []string{
			"Email templates that convert",
			"Open rate/click rate improvements",
			"Deliverability tips",
			"Automation workflows",
		},
		TitleFormulas: []string{
			"This subject line got [X]% open rate",
			"How I improved email deliverability from [X] to [Y]",
		},
		AvoidTopics: []string{"Spam tactics"},
	},
	{
		Name:        "linkedinads",
		DisplayName: "r/linkedinads",
		Subscribers: "8K",
		Description: "LinkedIn advertising and marketing",
		Category:    "niche",
		Rules: []models.Rule{
			{Text: "Share LinkedIn marketing insights", Severity: "moderate"},
		},
		AllowsProductMention: true,
		AllowsLinks:          true,
		BestPostTypes:        []string{"experience", "suggestion"},
		BestContentPillars:   []string{"lead-generation", "growth-tactics"},
		PeakPostingTimes:     []string{"Wednesday 11 AM EST"},
		PostingFrequency:     "1 per week",
		TopPostPatterns: []string{
			"Campaign results and learnings",
			"Targeting strategies",
			"Creative that works",
		},
		TitleFormulas: []string{
			"LinkedIn Ads case study: [result]",
			"What's working for B2B LinkedIn ads in 2026",
		},
	},
	{
		Name:        "eventplanning",
		DisplayName: "r/eventplanning",
		Subscribers: "95K",
		Description: "Event planning professionals and enthusiasts",
		Category:    "niche",
		Rules: []models.Rule{
			{Text: "Be helpful to fellow event planners", Severity: "moderate"},
			{Text: "No spam or excessive promotion", Severity: "moderate"},
		},
		AllowsProductMention: true,
		AllowsLinks:          true,
		BestPostTypes:        []string{"experience", "suggestion", "question"},
		BestContentPillars:   []string{"event-networking"},
		PeakPostingTimes:     []string{"Monday 2 PM EST", "Thursday 10 AM EST"},
		PostingFrequency:     "1 per week",
		TopPostPatterns: []string{
			"Event management tips",
			"Attendee engagement strategies",
			"Tech tools for events",
		},
		TitleFormulas: []string{
			"How tech events are changing attendee management",
			"Tips for maximizing networking at your events",
		},
	},
}

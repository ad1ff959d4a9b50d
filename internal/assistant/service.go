// Package assistant composes the prompt composers, the generation and
// acquisition clients, and the parsers into the operations the API
// exposes. Each operation is a single sequential request/response
// cycle; there are no retries and no cross-request state beyond the
// working set and the activity log.
package assistant

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/activitylog"
	"github.com/findmyicp/reddit-assistant/internal/apify"
	"github.com/findmyicp/reddit-assistant/internal/catalog"
	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/gemini"
	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/findmyicp/reddit-assistant/internal/parser"
	"github.com/findmyicp/reddit-assistant/internal/prompts"
	"github.com/sirupsen/logrus"
)

const (
	// At most this many conversations go into one scoring prompt.
	scoringBatchLimit = 10

	// Comment limits per acquisition path: a small sample when searching
	// for conversations, a larger one on the raw scrape passthrough.
	searchMaxComments = 10
	scrapeMaxComments = 100
)

// Service wires the pipeline together. All collaborators are injected
// so tests can run against fixtures.
type Service struct {
	config     *config.Config
	brand      *catalog.Brand
	subreddits *catalog.Store
	generator  gemini.Generator
	searcher   apify.Searcher
	activity   *activitylog.Store
}

// NewService creates the assistant service.
func NewService(cfg *config.Config, brand *catalog.Brand, subreddits *catalog.Store,
	generator gemini.Generator, searcher apify.Searcher, activity *activitylog.Store) *Service {
	return &Service{
		config:     cfg,
		brand:      brand,
		subreddits: subreddits,
		generator:  generator,
		searcher:   searcher,
		activity:   activity,
	}
}

// Subreddits exposes the working set for the handlers.
func (s *Service) Subreddits() *catalog.Store {
	return s.subreddits
}

// Activity exposes the activity log for the handlers.
func (s *Service) Activity() *activitylog.Store {
	return s.activity
}

// PostRequest describes one multi-subreddit post generation.
type PostRequest struct {
	Topic              string
	SubredditNames     []string
	PostType           string
	ContentPillar      string
	ExamplePosts       []prompts.ExamplePost
	GenerateVariations bool
	Persona            *prompts.PersonaOverride
	PreviousPosts      []prompts.PreviousPost
}

// PostOutcome is the per-subreddit result of a batch generation:
// either a draft or that subreddit's own error, never both.
type PostOutcome struct {
	Subreddit string                `json:"subreddit"`
	Post      *models.GeneratedPost `json:"post,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// GeneratePosts generates one draft per requested subreddit. Failures
// are isolated per item: one subreddit failing does not stop the
// others. The returned error is only for request-level preconditions
// (missing API key).
func (s *Service) GeneratePosts(ctx context.Context, req PostRequest) ([]PostOutcome, error) {
	if !s.generator.IsEnabled() {
		return nil, gemini.ErrNotConfigured
	}

	template, ok := catalog.PostTemplates[req.PostType]
	if !ok {
		return nil, fmt.Errorf("unknown post type %q", req.PostType)
	}

	outcomes := make([]PostOutcome, 0, len(req.SubredditNames))
	for _, name := range req.SubredditNames {
		profile, found := s.subreddits.Get(name)
		if !found {
			outcomes = append(outcomes, PostOutcome{
				Subreddit: name,
				Error:     fmt.Sprintf("Subreddit %s not found in configuration", name),
			})
			continue
		}

		post, err := s.generateOnePost(ctx, req, template, profile)
		if err != nil {
			logrus.Errorf("Post generation for r/%s failed: %v", name, err)
			outcomes = append(outcomes, PostOutcome{Subreddit: name, Error: err.Error()})
			continue
		}
		outcomes = append(outcomes, PostOutcome{Subreddit: name, Post: post})
	}

	s.activity.Record(models.ActivityPostGenerated, map[string]interface{}{
		"topic":      req.Topic,
		"subreddits": req.SubredditNames,
		"postType":   req.PostType,
	})

	return outcomes, nil
}

func (s *Service) generateOnePost(ctx context.Context, req PostRequest,
	template catalog.PostTemplate, profile models.SubredditProfile) (*models.GeneratedPost, error) {

	prompt := prompts.BuildPostPrompt(s.brand, prompts.PostParams{
		Topic:              req.Topic,
		Subreddit:          profile,
		Template:           template,
		Pillar:             s.brand.Pillar(req.ContentPillar),
		ExamplePosts:       req.ExamplePosts,
		GenerateVariations: req.GenerateVariations,
		Persona:            req.Persona,
		PreviousPosts:      req.PreviousPosts,
	})

	text, err := s.generator.Generate(ctx, s.config.GeminiFastModel, prompt)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	parsed := parser.ParsePostCompletion(text, req.GenerateVariations,
		fmt.Sprintf("var-%d", now.UnixMilli()))

	return &models.GeneratedPost{
		ID:              fmt.Sprintf("post-%d-%s", now.UnixMilli(), profile.Name),
		Subreddit:       profile.Name,
		Title:           parsed.Title,
		Body:            parsed.Body,
		PostType:        req.PostType,
		ContentPillar:   req.ContentPillar,
		ComplianceScore: parsed.ComplianceScore,
		ComplianceNotes: parsed.ComplianceNotes,
		CreatedAt:       now,
		Status:          "draft",
		Variations:      parsed.Variations,
		Permissions: models.Permissions{
			AllowsProductMention: profile.AllowsProductMention,
			AllowsLinks:          profile.AllowsLinks,
			Category:             profile.Category,
		},
		RawResponse: text,
	}, nil
}

// ReplyRequest describes one reply generation.
type ReplyRequest struct {
	PostURL   string
	PostTitle string
	PostBody  string
	Subreddit string
	Tone      string
	Context   string
}

// GenerateReply drafts a reply to an existing post. Unknown subreddits
// get a synthetic profile with permissions off.
func (s *Service) GenerateReply(ctx context.Context, req ReplyRequest) (*models.GeneratedReply, error) {
	profile, found := s.subreddits.Get(req.Subreddit)
	if !found {
		profile = catalog.FallbackProfile(req.Subreddit)
	}

	prompt := prompts.BuildReplyPrompt(s.brand, prompts.ReplyParams{
		OriginalTitle: req.PostTitle,
		OriginalBody:  req.PostBody,
		Subreddit:     profile,
		Tone:          req.Tone,
		Context:       req.Context,
	})

	text, err := s.generator.Generate(ctx, s.config.GeminiModel, prompt)
	if err != nil {
		return nil, err
	}

	parsed := parser.ParseReplyCompletion(text)
	now := time.Now().UTC()

	reply := &models.GeneratedReply{
		ID:                fmt.Sprintf("reply-%d", now.UnixMilli()),
		OriginalPostURL:   req.PostURL,
		OriginalPostTitle: req.PostTitle,
		OriginalPostBody:  req.PostBody,
		Subreddit:         req.Subreddit,
		Reply:             parsed.Reply,
		Tone:              req.Tone,
		ToneCheck:         parsed.ToneCheck,
		ValueAdded:        parsed.ValueAdded,
		CreatedAt:         now,
		Status:            "draft",
	}

	s.activity.Record(models.ActivityReplyGenerated, map[string]interface{}{
		"subreddit": req.Subreddit,
		"tone":      req.Tone,
	})

	return reply, nil
}

// FindRequest describes one conversation search. MinScore is taken as
// given, zero included; the handler applies the default of 1 only when
// the caller omitted the field.
type FindRequest struct {
	Keywords   []string
	Subreddits []string
	MaxResults int
	MinScore   int
}

// FindResult is the response of a conversation search.
type FindResult struct {
	Conversations []models.Conversation
	TotalFound    int
	Filtered      int
}

// FindConversations searches Reddit for candidate posts, normalizes
// them, scores them with the generator when one is configured, and
// returns them sorted by relevance descending. Scoring is best-effort:
// any scoring failure leaves the defaults in place.
func (s *Service) FindConversations(ctx context.Context, req FindRequest) (*FindResult, error) {
	if req.MaxResults <= 0 {
		req.MaxResults = 20
	}

	queries := apify.BuildQueries(req.Keywords, req.Subreddits)
	items, err := s.searcher.Search(ctx, queries, req.MaxResults, searchMaxComments, true)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	kept := apify.FilterPosts(items, req.MinScore)

	conversations := make([]models.Conversation, 0, len(kept))
	for _, item := range kept {
		conversations = append(conversations, normalizeConversation(item, req.Keywords, now))
	}

	s.scoreConversations(ctx, conversations)

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].RelevanceScore > conversations[j].RelevanceScore
	})

	s.activity.Record(models.ActivityConversationSearch, map[string]interface{}{
		"keywords":   req.Keywords,
		"subreddits": req.Subreddits,
		"found":      len(conversations),
	})

	return &FindResult{
		Conversations: conversations,
		TotalFound:    len(items),
		Filtered:      len(conversations),
	}, nil
}

func normalizeConversation(item apify.RawItem, keywords []string, now time.Time) models.Conversation {
	url := item.URL
	if url == "" {
		url = "https://reddit.com" + item.Permalink
	}
	id := item.ID
	if id == "" {
		id = fmt.Sprintf("post-%d", now.UnixNano())
	}
	return models.Conversation{
		ID:              id,
		Title:           item.Title,
		Body:            item.Selftext,
		URL:             url,
		Subreddit:       item.Subreddit,
		Author:          item.Author,
		Score:           item.Score,
		NumComments:     item.NumComments,
		CreatedAt:       apify.ParseCreatedAt(item, now),
		RelevanceScore:  50,
		SuggestedAction: "monitor",
		Keywords:        keywords,
	}
}

// scoreConversations asks the generator to rank the first batch of
// conversations. Everything here is best-effort; the defaults survive
// any failure.
func (s *Service) scoreConversations(ctx context.Context, conversations []models.Conversation) {
	if len(conversations) == 0 {
		return
	}

	batch := conversations
	if len(batch) > scoringBatchLimit {
		batch = batch[:scoringBatchLimit]
	}

	candidates := make([]prompts.ScoringCandidate, 0, len(batch))
	for _, c := range batch {
		candidates = append(candidates, prompts.ScoringCandidate{
			Title:     c.Title,
			Body:      c.Body,
			Subreddit: c.Subreddit,
			Score:     c.Score,
		})
	}

	prompt := prompts.BuildScoringPrompt(s.brand, candidates)
	text, err := s.generator.Generate(ctx, s.config.GeminiModel, prompt)
	if err != nil {
		logrus.Warnf("AI scoring failed, using default scores: %v", err)
		return
	}

	parser.ApplyConversationScores(text, conversations)
}

// DiscoveryRequest describes one subreddit discovery.
type DiscoveryRequest struct {
	Keywords []string
	Topic    string
	Exclude  []string
	Limit    int
}

// DiscoverSubreddits asks the generator for relevant subreddit
// suggestions. A completion with no parsable JSON surfaces as a
// *parser.ParseError; there is no partial fallback for a discovery
// list.
func (s *Service) DiscoverSubreddits(ctx context.Context, req DiscoveryRequest) ([]models.SubredditProfile, error) {
	if req.Limit <= 0 {
		req.Limit = 15
	}

	searchTerms := strings.Join(req.Keywords, ", ")
	if searchTerms == "" {
		searchTerms = req.Topic
	}
	if searchTerms == "" {
		searchTerms = "B2B SaaS, lead generation, startup growth"
	}

	prompt := prompts.BuildDiscoveryPrompt(prompts.DiscoveryParams{
		SearchTerms: searchTerms,
		Exclude:     req.Exclude,
		Limit:       req.Limit,
	})

	text, err := s.generator.Generate(ctx, s.config.GeminiModel, prompt)
	if err != nil {
		return nil, err
	}

	suggestions, err := parser.ParseSubredditSuggestions(text)
	if err != nil {
		return nil, err
	}

	s.activity.Record(models.ActivitySubredditDiscovered, map[string]interface{}{
		"searchTerms": searchTerms,
		"found":       len(suggestions),
	})

	return suggestions, nil
}

// Scrape is the raw passthrough to the search actor.
func (s *Service) Scrape(ctx context.Context, queries []string, maxPosts int, scrapeComments bool) ([]apify.RawItem, error) {
	if maxPosts <= 0 {
		maxPosts = 50
	}
	return s.searcher.Search(ctx, queries, maxPosts, scrapeMaxComments, scrapeComments)
}

// RunScan performs a scheduled conversation scan over the configured
// keywords and returns a digest report for the notification service.
func (s *Service) RunScan(ctx context.Context) (*models.ScanReport, error) {
	result, err := s.FindConversations(ctx, FindRequest{
		Keywords: s.config.ScanKeywords,
		MinScore: 1,
	})
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int)
	for _, c := range result.Conversations {
		summary[c.SuggestedAction]++
	}

	return &models.ScanReport{
		GeneratedAt:   time.Now().UTC(),
		Period:        s.config.ScanSchedule,
		Keywords:      s.config.ScanKeywords,
		TotalFound:    result.TotalFound,
		Conversations: result.Conversations,
		Summary:       summary,
	}, nil
}

package assistant

import (
	"context"
	"fmt"
	"testing"

	"github.com/findmyicp/reddit-assistant/internal/activitylog"
	"github.com/findmyicp/reddit-assistant/internal/apify"
	"github.com/findmyicp/reddit-assistant/internal/catalog"
	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGenerator is a mock implementation of the generation backend
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockGenerator) IsEnabled() bool {
	return true
}

// MockSearcher is a mock implementation of the search backend
type MockSearcher struct {
	mock.Mock
}

func (m *MockSearcher) Search(ctx context.Context, queries []string, maxPosts, maxComments int, scrapeComments bool) ([]apify.RawItem, error) {
	args := m.Called(ctx, queries, maxPosts, maxComments, scrapeComments)
	return args.Get(0).([]apify.RawItem), args.Error(1)
}

// memoryStorage is an in-memory storage backend for tests.
type memoryStorage struct {
	files map[string][]byte
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{files: make(map[string][]byte)}
}

func (m *memoryStorage) Store(filename string, data []byte) error {
	m.files[filename] = data
	return nil
}

func (m *memoryStorage) Retrieve(filename string) ([]byte, error) {
	data, ok := m.files[filename]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", filename)
	}
	return data, nil
}

func (m *memoryStorage) List(prefix string) ([]string, error) {
	var names []string
	for name := range m.files {
		names = append(names, name)
	}
	return names, nil
}

func (m *memoryStorage) Delete(filename string) error {
	delete(m.files, filename)
	return nil
}

func newTestService(generator *MockGenerator, searcher *MockSearcher) *Service {
	cfg := &config.Config{
		GeminiModel:     "gemini-2.5-flash",
		GeminiFastModel: "gemini-2.0-flash",
		ScanSchedule:    "daily",
		ScanKeywords:    []string{"lead generation"},
	}
	brand := catalog.DefaultBrand
	subreddits := catalog.NewStore(catalog.DefaultSubreddits, nil)
	activity := activitylog.NewStore(newMemoryStorage())
	return NewService(cfg, &brand, subreddits, generator, searcher, activity)
}

func TestService_GeneratePosts(t *testing.T) {
	generator := &MockGenerator{}
	service := newTestService(generator, &MockSearcher{})

	completion := "**TITLE:**\nA real title\n\n**BODY:**\nA real body\n\n**COMPLIANCE SCORE:** 8\n**COMPLIANCE NOTES:**\n- Fits the weekly thread rule\n"
	generator.On("Generate", mock.Anything, "gemini-2.0-flash", mock.Anything).Return(completion, nil)

	outcomes, err := service.GeneratePosts(context.Background(), PostRequest{
		Topic:          "pre-event research",
		SubredditNames: []string{"entrepreneur", "nosuchsub"},
		PostType:       "storytelling",
	})

	assert.NoError(t, err)
	assert.Len(t, outcomes, 2)

	assert.Equal(t, "entrepreneur", outcomes[0].Subreddit)
	assert.Empty(t, outcomes[0].Error)
	assert.Equal(t, "A real title", outcomes[0].Post.Title)
	assert.Equal(t, "A real body", outcomes[0].Post.Body)
	assert.Equal(t, 8, outcomes[0].Post.ComplianceScore)
	assert.Equal(t, "draft", outcomes[0].Post.Status)
	assert.Equal(t, completion, outcomes[0].Post.RawResponse)

	// The unknown subreddit fails on its own without stopping the batch.
	assert.Equal(t, "nosuchsub", outcomes[1].Subreddit)
	assert.Nil(t, outcomes[1].Post)
	assert.Contains(t, outcomes[1].Error, "not found")
}

func TestService_GeneratePosts_UnknownPostType(t *testing.T) {
	service := newTestService(&MockGenerator{}, &MockSearcher{})

	_, err := service.GeneratePosts(context.Background(), PostRequest{
		Topic:          "topic",
		SubredditNames: []string{"entrepreneur"},
		PostType:       "freestyle",
	})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown post type")
}

func TestService_GeneratePosts_NotConfigured(t *testing.T) {
	client, err := gemini.NewClient(context.Background(), "")
	assert.NoError(t, err)

	cfg := &config.Config{GeminiFastModel: "gemini-2.0-flash"}
	brand := catalog.DefaultBrand
	subreddits := catalog.NewStore(catalog.DefaultSubreddits, nil)
	activity := activitylog.NewStore(newMemoryStorage())
	service := NewService(cfg, &brand, subreddits, client, &MockSearcher{}, activity)

	// The missing key fails the whole request before any per-item work.
	_, err = service.GeneratePosts(context.Background(), PostRequest{
		Topic:          "topic",
		SubredditNames: []string{"entrepreneur", "startups"},
		PostType:       "storytelling",
	})

	assert.ErrorIs(t, err, gemini.ErrNotConfigured)
}

func TestService_GenerateReply(t *testing.T) {
	generator := &MockGenerator{}
	service := newTestService(generator, &MockSearcher{})

	completion := "**REPLY:**\nHave you tried narrowing your ICP?\n\n**TONE CHECK:** Helpful\n**VALUE ADDED:** A concrete framework"
	generator.On("Generate", mock.Anything, "gemini-2.5-flash", mock.Anything).Return(completion, nil)

	reply, err := service.GenerateReply(context.Background(), ReplyRequest{
		PostTitle: "How do you find leads?",
		Subreddit: "someunknownsub",
		Tone:      "helpful",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Have you tried narrowing your ICP?", reply.Reply)
	assert.Equal(t, "Helpful", reply.ToneCheck)
	assert.Equal(t, "A concrete framework", reply.ValueAdded)
	assert.Equal(t, "draft", reply.Status)
	assert.Equal(t, "someunknownsub", reply.Subreddit)
}

func TestService_FindConversations(t *testing.T) {
	generator := &MockGenerator{}
	searcher := &MockSearcher{}
	service := newTestService(generator, searcher)

	items := []apify.RawItem{
		{ID: "t3_a", Title: "Post A", Subreddit: "sales", Score: 5, Permalink: "/r/sales/a"},
		{ID: "t3_b", Title: "Post B", Subreddit: "startups", Score: 3, URL: "https://reddit.com/r/startups/b"},
		{Title: "", Subreddit: "sales", Score: 9}, // filtered: no title
	}
	searcher.On("Search", mock.Anything, []string{"icp subreddit:sales"}, 20, 10, true).Return(items, nil)

	scoring := `[
  {"post_index": 1, "total_score": 40, "suggested_action": "ignore"},
  {"post_index": 2, "total_score": 90, "suggested_action": "reply", "reply_angle": "Share the playbook"}
]`
	generator.On("Generate", mock.Anything, "gemini-2.5-flash", mock.Anything).Return(scoring, nil)

	result, err := service.FindConversations(context.Background(), FindRequest{
		Keywords:   []string{"icp"},
		Subreddits: []string{"sales"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, result.TotalFound)
	assert.Equal(t, 2, result.Filtered)
	assert.Len(t, result.Conversations, 2)

	// Scored and sorted by relevance descending.
	assert.Equal(t, "t3_b", result.Conversations[0].ID)
	assert.Equal(t, 90, result.Conversations[0].RelevanceScore)
	assert.Equal(t, "reply", result.Conversations[0].SuggestedAction)
	assert.Equal(t, "Share the playbook", result.Conversations[0].ReplyAngle)
	assert.Equal(t, "t3_a", result.Conversations[1].ID)
	assert.Equal(t, 40, result.Conversations[1].RelevanceScore)
	assert.Equal(t, "https://reddit.com/r/sales/a", result.Conversations[1].URL)
}

func TestService_FindConversations_ScoringFailureKeepsDefaults(t *testing.T) {
	generator := &MockGenerator{}
	searcher := &MockSearcher{}
	service := newTestService(generator, searcher)

	items := []apify.RawItem{
		{ID: "t3_a", Title: "Post A", Subreddit: "sales", Score: 5, URL: "https://reddit.com/a"},
	}
	searcher.On("Search", mock.Anything, mock.Anything, 20, 10, true).Return(items, nil)
	generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("", fmt.Errorf("quota exceeded"))

	result, err := service.FindConversations(context.Background(), FindRequest{
		Keywords: []string{"icp"},
	})

	assert.NoError(t, err)
	assert.Len(t, result.Conversations, 1)
	assert.Equal(t, 50, result.Conversations[0].RelevanceScore)
	assert.Equal(t, "monitor", result.Conversations[0].SuggestedAction)
	assert.Equal(t, []string{"icp"}, result.Conversations[0].Keywords)
}

func TestService_FindConversations_ExplicitZeroMinScore(t *testing.T) {
	generator := &MockGenerator{}
	searcher := &MockSearcher{}
	service := newTestService(generator, searcher)

	items := []apify.RawItem{
		{ID: "t3_a", Title: "Zero score post", Subreddit: "sales", Score: 0, URL: "https://reddit.com/a"},
	}
	searcher.On("Search", mock.Anything, mock.Anything, 20, 10, true).Return(items, nil)
	generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).Return("[]", nil)

	result, err := service.FindConversations(context.Background(), FindRequest{
		Keywords: []string{"icp"},
		MinScore: 0,
	})

	assert.NoError(t, err)
	assert.Len(t, result.Conversations, 1)
	assert.Equal(t, "t3_a", result.Conversations[0].ID)
}

func TestService_DiscoverSubreddits(t *testing.T) {
	generator := &MockGenerator{}
	service := newTestService(generator, &MockSearcher{})

	completion := `{"subreddits": [{"name": "b2bsaas", "category": "primary"}]}`
	generator.On("Generate", mock.Anything, "gemini-2.5-flash", mock.Anything).Return(completion, nil)

	profiles, err := service.DiscoverSubreddits(context.Background(), DiscoveryRequest{
		Keywords: []string{"b2b saas"},
	})

	assert.NoError(t, err)
	assert.Len(t, profiles, 1)
	assert.Equal(t, "b2bsaas", profiles[0].Name)
	assert.Equal(t, "primary", profiles[0].Category)
}

func TestService_Scrape_DefaultMaxPosts(t *testing.T) {
	searcher := &MockSearcher{}
	service := newTestService(&MockGenerator{}, searcher)

	searcher.On("Search", mock.Anything, []string{"q"}, 50, 100, false).Return([]apify.RawItem{}, nil)

	_, err := service.Scrape(context.Background(), []string{"q"}, 0, false)

	assert.NoError(t, err)
	searcher.AssertExpectations(t)
}

func TestService_RunScan(t *testing.T) {
	generator := &MockGenerator{}
	searcher := &MockSearcher{}
	service := newTestService(generator, searcher)

	items := []apify.RawItem{
		{ID: "t3_a", Title: "Post A", Subreddit: "sales", Score: 5, URL: "https://reddit.com/a"},
	}
	searcher.On("Search", mock.Anything, mock.Anything, 20, 10, true).Return(items, nil)
	generator.On("Generate", mock.Anything, mock.Anything, mock.Anything).
		Return(`[{"total_score": 75, "suggested_action": "reply"}]`, nil)

	report, err := service.RunScan(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "daily", report.Period)
	assert.Equal(t, []string{"lead generation"}, report.Keywords)
	assert.Equal(t, 1, report.TotalFound)
	assert.Equal(t, map[string]int{"reply": 1}, report.Summary)
}

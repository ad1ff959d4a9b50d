package apify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when no Apify token is set.
var ErrNotConfigured = errors.New("apify API key not configured")

// Searcher is the acquisition contract the assistant service consumes.
type Searcher interface {
	Search(ctx context.Context, queries []string, maxPosts, maxComments int, scrapeComments bool) ([]RawItem, error)
}

// RawItem is one record as returned by the Reddit search actor. The
// result set is heterogeneous: posts carry a title and subreddit,
// comments typically do not.
type RawItem struct {
	ID          string      `json:"id"`
	Kind        string      `json:"kind"`
	Title       string      `json:"title"`
	Selftext    string      `json:"selftext"`
	Body        string      `json:"body"`
	URL         string      `json:"url"`
	Permalink   string      `json:"permalink"`
	Subreddit   string      `json:"subreddit"`
	Author      string      `json:"author"`
	Score       int         `json:"score"`
	NumComments int         `json:"num_comments"`
	CreatedUTC  interface{} `json:"created_utc"` // integer seconds or date string
	CreatedAt   string      `json:"createdAt"`
}

// Client wraps the Apify Reddit search actor.
type Client struct {
	token  string
	actor  string
	client *resty.Client
}

// Ensure Client implements Searcher
var _ Searcher = (*Client)(nil)

// NewClient creates a new Apify client for the given actor.
func NewClient(token, actor string) *Client {
	return &Client{
		token:  token,
		actor:  actor,
		client: resty.New().SetTimeout(120 * time.Second),
	}
}

// IsEnabled reports whether a token is configured.
func (c *Client) IsEnabled() bool {
	return c.token != ""
}

// searchRequest is the actor's run input. Sort and timeframe are fixed:
// relevance-ordered results from the last week, never NSFW.
type searchRequest struct {
	IncludeNsfw    bool     `json:"includeNsfw"`
	MaxComments    int      `json:"maxComments"`
	MaxPosts       int      `json:"maxPosts"`
	Queries        []string `json:"queries"`
	ScrapeComments bool     `json:"scrapeComments"`
	Sort           string   `json:"sort"`
	Timeframe      string   `json:"timeframe"`
}

// Search runs the actor synchronously and returns its dataset items.
// The comment limit is the caller's: conversation search wants a small
// sample, the raw scrape passthrough a larger one.
func (c *Client) Search(ctx context.Context, queries []string, maxPosts, maxComments int, scrapeComments bool) ([]RawItem, error) {
	if !c.IsEnabled() {
		return nil, ErrNotConfigured
	}

	if maxPosts < 10 {
		maxPosts = 10
	}

	body := searchRequest{
		IncludeNsfw:    false,
		MaxComments:    maxComments,
		MaxPosts:       maxPosts,
		Queries:        queries,
		ScrapeComments: scrapeComments,
		Sort:           "relevance",
		Timeframe:      "week",
	}

	url := fmt.Sprintf("https://api.apify.com/v2/acts/%s/run-sync-get-dataset-items", c.actor)

	logrus.Debugf("Running Apify actor %s with %d queries", c.actor, len(queries))

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("token", c.token).
		SetBody(body).
		Post(url)

	if err != nil {
		return nil, fmt.Errorf("apify request failed: %w", err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, fmt.Errorf("apify API returned status %d", resp.StatusCode())
	}

	var items []RawItem
	if err := json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("failed to decode apify response: %w", err)
	}

	return items, nil
}

// BuildQueries constructs the actor's query strings. With target
// subreddits the cross product of keyword and subreddit is requested,
// one query per pair; otherwise the keywords stand alone.
func BuildQueries(keywords, subreddits []string) []string {
	var queries []string
	for _, keyword := range keywords {
		if len(subreddits) == 0 {
			queries = append(queries, keyword)
			continue
		}
		for _, sub := range subreddits {
			queries = append(queries, fmt.Sprintf("%s subreddit:%s", keyword, sub))
		}
	}
	return queries
}

// FilterPosts keeps items that look like real posts worth surfacing:
// non-empty title and subreddit, score at or above minScore, and
// identified as a post rather than a comment. An item without a kind
// tag counts as a post when it has both a title and a subreddit;
// comments typically lack a title. Comment records carrying a
// synthesized title can slip through, a known limitation of the
// heuristic.
func FilterPosts(items []RawItem, minScore int) []RawItem {
	var kept []RawItem
	for _, item := range items {
		hasTitle := strings.TrimSpace(item.Title) != ""
		hasSubreddit := strings.TrimSpace(item.Subreddit) != ""
		isPost := item.Kind == "post" || (hasTitle && hasSubreddit)
		if !isPost || !hasTitle || !hasSubreddit || item.Score < minScore {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// ParseCreatedAt resolves an item's timestamp. created_utc may be
// integer seconds or a date string, or absent with a createdAt
// fallback; anything unparsable resolves to now rather than an invalid
// date.
func ParseCreatedAt(item RawItem, now time.Time) time.Time {
	switch v := item.CreatedUTC.(type) {
	case float64:
		if v > 0 {
			return time.Unix(int64(v), 0).UTC()
		}
	case string:
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t
		}
	}
	if item.CreatedAt != "" {
		if t, err := time.Parse(time.RFC3339, item.CreatedAt); err == nil {
			return t
		}
	}
	return now
}

package gemini

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// ErrNotConfigured is returned when no API key is set. It is checked
// before any network call so misconfiguration fails fast.
var ErrNotConfigured = errors.New("gemini API key not configured")

// Generator is the contract handlers and the assistant service consume:
// prompt in, completion out, plus a preflight check so batch operations
// can fail before doing any work.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
	IsEnabled() bool
}

// Client wraps the Gemini API behind the Generator contract.
type Client struct {
	apiKey string
	client *genai.Client
}

// Ensure Client implements Generator
var _ Generator = (*Client)(nil)

// NewClient creates a Gemini client. An empty key is allowed at
// construction; Generate reports ErrNotConfigured on use so endpoints
// that do not need generation still work.
func NewClient(ctx context.Context, apiKey string) (*Client, error) {
	c := &Client{apiKey: apiKey}
	if apiKey == "" {
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	return c, nil
}

// IsEnabled reports whether a key is configured.
func (c *Client) IsEnabled() bool {
	return c.apiKey != ""
}

// Generate submits prompt to the named model and returns the completion
// text. One shot, no retries: a failed call fails the caller's request.
func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	if c.client == nil {
		return "", ErrNotConfigured
	}

	logrus.Debugf("Generating with %s (%d prompt chars)", model, len(prompt))

	result, err := c.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned an empty completion")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}

package notifications

import (
	"testing"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/stretchr/testify/assert"
)

func testReport() *models.ScanReport {
	return &models.ScanReport{
		GeneratedAt: time.Date(2026, 8, 24, 9, 0, 0, 0, time.UTC),
		Period:      "daily",
		Keywords:    []string{"lead generation", "icp"},
		TotalFound:  12,
		Conversations: []models.Conversation{
			{
				Title:           "How do you research event attendees?",
				URL:             "https://reddit.com/r/sales/abc",
				Subreddit:       "sales",
				Author:          "some_founder",
				RelevanceScore:  88,
				SuggestedAction: "reply",
				ReplyAngle:      "Share the pre-event research workflow",
			},
			{
				Title:           "Cold email open rates dropping",
				URL:             "https://reddit.com/r/Emailmarketing/def",
				Subreddit:       "Emailmarketing",
				Author:          "mailer",
				RelevanceScore:  55,
				SuggestedAction: "monitor",
			},
		},
		Summary: map[string]int{"reply": 1, "monitor": 1},
	}
}

func TestBuildTeamsMessage(t *testing.T) {
	service := NewService(&config.Config{})

	message := service.buildTeamsMessage(testReport())

	assert.Equal(t, "MessageCard", message.Type)
	assert.Contains(t, message.Title, "daily")
	assert.Contains(t, message.Text, "2 conversations")
	assert.Contains(t, message.Text, "lead generation, icp")
	assert.Len(t, message.Sections, 2)

	facts := message.Sections[0].Facts
	assert.Equal(t, "Total Found", facts[0].Name)
	assert.Equal(t, "12", facts[0].Value)

	assert.Contains(t, message.Sections[1].ActivityText, "How do you research event attendees?")
	assert.Contains(t, message.Sections[1].ActivityText, "relevance 88, reply")
}

func TestBuildTeamsMessage_NoConversations(t *testing.T) {
	service := NewService(&config.Config{})
	report := testReport()
	report.Conversations = nil

	message := service.buildTeamsMessage(report)

	assert.Len(t, message.Sections, 1)
}

func TestBuildEmailHTML(t *testing.T) {
	service := NewService(&config.Config{})

	html, err := service.buildEmailHTML(testReport())

	assert.NoError(t, err)
	assert.Contains(t, html, "Reddit Conversation Digest")
	assert.Contains(t, html, "lead generation, icp")
	assert.Contains(t, html, `href="https://reddit.com/r/sales/abc"`)
	assert.Contains(t, html, "Share the pre-event research workflow")
	assert.Contains(t, html, `class="conversation reply"`)
	assert.Contains(t, html, `class="conversation monitor"`)
}

func TestBuildEmailText(t *testing.T) {
	service := NewService(&config.Config{})

	text := service.buildEmailText(testReport())

	assert.Contains(t, text, "Reddit Conversation Digest - daily")
	assert.Contains(t, text, "Keywords: lead generation, icp")
	assert.Contains(t, text, "Conversations: 2 (of 12 found)")
	assert.Contains(t, text, "1. How do you research event attendees?")
	assert.Contains(t, text, "r/sales | by some_founder | relevance 88 | reply")
	assert.Contains(t, text, "Angle: Share the pre-event research workflow")
}

func TestSendDigest_NoChannelsConfigured(t *testing.T) {
	service := NewService(&config.Config{})

	assert.NoError(t, service.SendDigest(testReport()))
}

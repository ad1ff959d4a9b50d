package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/go-resty/resty/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// Service sends scan digests via the configured channels: a Teams
// webhook, an email, or both.
type Service struct {
	config *config.Config
	client *resty.Client
}

// Ensure Service implements Notifier
var _ Notifier = (*Service)(nil)

// TeamsMessage represents a Microsoft Teams message card
type TeamsMessage struct {
	Type     string         `json:"@type"`
	Context  string         `json:"@context"`
	Title    string         `json:"title"`
	Text     string         `json:"text"`
	Sections []TeamsSection `json:"sections,omitempty"`
}

type TeamsSection struct {
	ActivityTitle string      `json:"activityTitle,omitempty"`
	ActivityText  string      `json:"activityText,omitempty"`
	Facts         []TeamsFact `json:"facts,omitempty"`
	Markdown      bool        `json:"markdown,omitempty"`
}

type TeamsFact struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewService creates a new notification service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
		client: resty.New().SetTimeout(30 * time.Second),
	}
}

// SendDigest sends a scan digest via every configured channel.
func (s *Service) SendDigest(report *models.ScanReport) error {
	var errs []string

	if s.config.TeamsWebhookURL != "" {
		if err := s.sendToTeams(report); err != nil {
			logrus.Errorf("Failed to send Teams digest: %v", err)
			errs = append(errs, fmt.Sprintf("Teams: %v", err))
		} else {
			logrus.Info("Sent scan digest to Teams")
		}
	}

	if s.config.NotificationEmail != "" {
		if err := s.sendEmail(report); err != nil {
			logrus.Errorf("Failed to send email digest: %v", err)
			errs = append(errs, fmt.Sprintf("Email: %v", err))
		} else {
			logrus.Info("Sent scan digest via email")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("digest delivery errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

func (s *Service) sendToTeams(report *models.ScanReport) error {
	message := s.buildTeamsMessage(report)

	resp, err := s.client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(message).
		Post(s.config.TeamsWebhookURL)

	if err != nil {
		return fmt.Errorf("failed to send Teams message: %w", err)
	}

	if resp.StatusCode() != 200 {
		return fmt.Errorf("Teams webhook returned status %d: %s", resp.StatusCode(), string(resp.Body()))
	}

	return nil
}

func (s *Service) buildTeamsMessage(report *models.ScanReport) *TeamsMessage {
	message := &TeamsMessage{
		Type:    "MessageCard",
		Context: "https://schema.org/extensions",
		Title:   fmt.Sprintf("Reddit Conversation Digest - %s", report.Period),
		Text: fmt.Sprintf("Found %d conversations for %s",
			len(report.Conversations), strings.Join(report.Keywords, ", ")),
	}

	facts := []TeamsFact{
		{Name: "Total Found", Value: fmt.Sprintf("%d", report.TotalFound)},
		{Name: "After Filtering", Value: fmt.Sprintf("%d", len(report.Conversations))},
		{Name: "Generated", Value: report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")},
	}
	for action, count := range report.Summary {
		facts = append(facts, TeamsFact{
			Name:  fmt.Sprintf("Suggested: %s", action),
			Value: fmt.Sprintf("%d", count),
		})
	}
	message.Sections = append(message.Sections, TeamsSection{
		ActivityTitle: "Summary",
		Facts:         facts,
		Markdown:      true,
	})

	if len(report.Conversations) > 0 {
		var top []string
		limit := 5
		if len(report.Conversations) < limit {
			limit = len(report.Conversations)
		}
		for i := 0; i < limit; i++ {
			c := report.Conversations[i]
			top = append(top, fmt.Sprintf("**[%s](%s)** - r/%s (relevance %d, %s)",
				c.Title, c.URL, c.Subreddit, c.RelevanceScore, c.SuggestedAction))
		}
		message.Sections = append(message.Sections, TeamsSection{
			ActivityTitle: "Top Conversations",
			ActivityText:  strings.Join(top, "\n\n"),
			Markdown:      true,
		})
	}

	return message
}

func (s *Service) sendEmail(report *models.ScanReport) error {
	subject := fmt.Sprintf("Reddit Conversation Digest - %s (%d conversations)",
		report.Period, len(report.Conversations))

	htmlBody, err := s.buildEmailHTML(report)
	if err != nil {
		return fmt.Errorf("failed to build email HTML: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.config.SMTPUsername)
	m.SetHeader("To", s.config.NotificationEmail)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", s.buildEmailText(report))
	m.AddAlternative("text/html", htmlBody)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *Service) buildEmailHTML(report *models.ScanReport) (string, error) {
	tmpl := `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Reddit Conversation Digest</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; }
        .header { background-color: #ff4500; color: white; padding: 20px; border-radius: 5px; }
        .summary { background-color: #f5f5f5; padding: 15px; margin: 20px 0; border-radius: 5px; }
        .conversation { border-left: 4px solid #ff4500; padding: 10px; margin: 10px 0; background-color: #fafafa; }
        .conversation-title { font-weight: bold; margin-bottom: 5px; }
        .conversation-meta { color: #666; font-size: 0.9em; }
        .reply { border-left-color: #107c10; }
        .monitor { border-left-color: #605e5c; }
        .ignore { border-left-color: #d13438; }
    </style>
</head>
<body>
    <div class="header">
        <h1>Reddit Conversation Digest</h1>
        <p>{{.Period}} scan generated on {{.GeneratedAt.Format "January 2, 2006 at 3:04 PM UTC"}}</p>
    </div>

    <div class="summary">
        <h2>Summary</h2>
        <p><strong>Keywords:</strong> {{join .Keywords ", "}}</p>
        <p><strong>Conversations:</strong> {{len .Conversations}} (of {{.TotalFound}} found)</p>
    </div>

    {{if .Conversations}}
    <h2>Top Conversations</h2>
    {{range $index, $c := .Conversations}}
        {{if lt $index 10}}
        <div class="conversation {{$c.SuggestedAction}}">
            <div class="conversation-title">
                <a href="{{$c.URL}}" target="_blank">{{$c.Title}}</a>
            </div>
            <div class="conversation-meta">
                r/{{$c.Subreddit}} | by {{$c.Author}} | relevance {{$c.RelevanceScore}} | {{$c.SuggestedAction}}
            </div>
            {{if $c.ReplyAngle}}
            <p>{{$c.ReplyAngle}}</p>
            {{end}}
        </div>
        {{end}}
    {{end}}
    {{end}}

    <hr>
    <p><small>This digest was generated automatically by the Reddit marketing assistant.</small></p>
</body>
</html>
`

	t := template.New("digest").Funcs(template.FuncMap{
		"join": strings.Join,
	})

	t, err := t.Parse(tmpl)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, report); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Service) buildEmailText(report *models.ScanReport) string {
	var text strings.Builder

	text.WriteString(fmt.Sprintf("Reddit Conversation Digest - %s\n", report.Period))
	text.WriteString(fmt.Sprintf("Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04:05 UTC")))

	text.WriteString("SUMMARY\n")
	text.WriteString("=======\n")
	text.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(report.Keywords, ", ")))
	text.WriteString(fmt.Sprintf("Conversations: %d (of %d found)\n", len(report.Conversations), report.TotalFound))

	if len(report.Conversations) > 0 {
		text.WriteString("\nTOP CONVERSATIONS\n")
		text.WriteString("=================\n")

		limit := 10
		if len(report.Conversations) < limit {
			limit = len(report.Conversations)
		}

		for i := 0; i < limit; i++ {
			c := report.Conversations[i]
			text.WriteString(fmt.Sprintf("\n%d. %s\n", i+1, c.Title))
			text.WriteString(fmt.Sprintf("   r/%s | by %s | relevance %d | %s\n",
				c.Subreddit, c.Author, c.RelevanceScore, c.SuggestedAction))
			text.WriteString(fmt.Sprintf("   URL: %s\n", c.URL))
			if c.ReplyAngle != "" {
				text.WriteString(fmt.Sprintf("   Angle: %s\n", c.ReplyAngle))
			}
		}
	}

	text.WriteString("\n---\nThis digest was generated automatically by the Reddit marketing assistant.\n")

	return text.String()
}

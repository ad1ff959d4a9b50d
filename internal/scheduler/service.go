package scheduler

import (
	"context"

	"github.com/findmyicp/reddit-assistant/internal/assistant"
	"github.com/findmyicp/reddit-assistant/internal/config"
	"github.com/findmyicp/reddit-assistant/internal/notifications"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Service runs the optional scheduled conversation scans.
type Service struct {
	config    *config.Config
	assistant *assistant.Service
	notifier  notifications.Notifier
	cron      *cron.Cron
}

// NewService creates a new scheduler service
func NewService(cfg *config.Config, svc *assistant.Service, notifier notifications.Notifier) *Service {
	return &Service{
		config:    cfg,
		assistant: svc,
		notifier:  notifier,
		cron:      cron.New(cron.WithSeconds()),
	}
}

// Start begins the scheduled scans. A no-op when no schedule is
// configured.
func (s *Service) Start() error {
	if s.config.ScanSchedule == "" {
		logrus.Info("No scan schedule configured, scheduler disabled")
		return nil
	}

	var cronExpression string
	switch s.config.ScanSchedule {
	case "daily":
		// Run daily at 9 AM UTC
		cronExpression = "0 0 9 * * *"
	default:
		// Run weekly on Monday at 9 AM UTC
		cronExpression = "0 0 9 * * MON"
	}

	_, err := s.cron.AddFunc(cronExpression, s.runScan)
	if err != nil {
		return err
	}

	s.cron.Start()
	logrus.Infof("Scheduler started with %s scan schedule", s.config.ScanSchedule)
	return nil
}

func (s *Service) runScan() {
	logrus.Info("Starting scheduled conversation scan")

	report, err := s.assistant.RunScan(context.Background())
	if err != nil {
		logrus.Errorf("Scheduled scan failed: %v", err)
		return
	}

	if err := s.notifier.SendDigest(report); err != nil {
		logrus.Errorf("Failed to deliver scan digest: %v", err)
		return
	}

	logrus.Infof("Scheduled scan completed with %d conversations", len(report.Conversations))
}

// Stop stops the scheduler
func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		logrus.Info("Scheduler stopped")
	}
}

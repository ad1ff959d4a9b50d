package notifications

import "github.com/findmyicp/reddit-assistant/internal/models"

// Notifier delivers scheduled scan digests.
type Notifier interface {
	SendDigest(report *models.ScanReport) error
}

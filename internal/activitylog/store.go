package activitylog

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/findmyicp/reddit-assistant/internal/storage"
	"github.com/sirupsen/logrus"
)

const (
	logFile    = "logs/activity.json"
	maxEntries = 500
)

// Stats are the per-type counts returned alongside a listing.
type Stats struct {
	Total                int `json:"total"`
	PostsGenerated       int `json:"postsGenerated"`
	RepliesGenerated     int `json:"repliesGenerated"`
	ConversationSearches int `json:"conversationSearches"`
	Errors               int `json:"errors"`
}

// Store is the append-only activity log: a single JSON array capped at
// the 500 most recent entries, rewritten in full on every append. Reads
// of a missing or corrupt file mean an empty log, never an error.
type Store struct {
	mu      sync.Mutex
	backend storage.Interface
}

// NewStore creates an activity log over the given storage backend.
func NewStore(backend storage.Interface) *Store {
	return &Store{backend: backend}
}

// Append writes a new entry, assigning its id and timestamp, and trims
// the log to the cap, discarding the oldest entries silently.
func (s *Store) Append(entryType string, data map[string]interface{}) (models.ActivityEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.readAll()

	entry := models.ActivityEntry{
		ID:        fmt.Sprintf("log-%d-%09d", time.Now().UnixMilli(), rand.Intn(1e9)),
		Type:      entryType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
	entries = append(entries, entry)

	if len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}

	payload, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return models.ActivityEntry{}, fmt.Errorf("failed to marshal activity log: %w", err)
	}

	if err := s.backend.Store(logFile, payload); err != nil {
		return models.ActivityEntry{}, fmt.Errorf("failed to write activity log: %w", err)
	}

	return entry, nil
}

// Record is best-effort logging for the request handlers: failures are
// logged and swallowed so a log-write problem never fails a request.
func (s *Store) Record(entryType string, data map[string]interface{}) {
	if _, err := s.Append(entryType, data); err != nil {
		logrus.Warnf("Failed to record activity: %v", err)
	}
}

// List returns up to limit entries, newest first, optionally filtered
// by type, along with summary counts over the returned slice.
func (s *Store) List(filterType string, limit int) ([]models.ActivityEntry, Stats) {
	s.mu.Lock()
	entries := s.readAll()
	s.mu.Unlock()

	if filterType != "" {
		var filtered []models.ActivityEntry
		for _, e := range entries {
			if e.Type == filterType {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	// newest first
	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}

	stats := Stats{Total: len(entries)}
	for _, e := range entries {
		switch e.Type {
		case models.ActivityPostGenerated:
			stats.PostsGenerated++
		case models.ActivityReplyGenerated:
			stats.RepliesGenerated++
		case models.ActivityConversationSearch:
			stats.ConversationSearches++
		case models.ActivityError:
			stats.Errors++
		}
	}

	return entries, stats
}

func (s *Store) readAll() []models.ActivityEntry {
	data, err := s.backend.Retrieve(logFile)
	if err != nil {
		return nil
	}

	var entries []models.ActivityEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logrus.Warnf("Activity log is corrupt, starting fresh: %v", err)
		return nil
	}
	return entries
}

package catalog

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/findmyicp/reddit-assistant/internal/storage"
	"github.com/sirupsen/logrus"
)

const workingSetFile = "subreddits.json"

// Store is the current working set of subreddit profiles. It starts
// from an injected snapshot (normally DefaultSubreddits, or whatever a
// previous session persisted) so callers can be tested against fixtures
// instead of shared globals. Names are unique case-insensitively.
type Store struct {
	mu        sync.RWMutex
	profiles  map[string]models.SubredditProfile // keyed by lowercase name
	order     []string
	updatedAt time.Time
	backend   storage.Interface
}

// NewStore creates a working set seeded with the given snapshot.
// Duplicate names (case-insensitive) in the snapshot keep the first
// occurrence.
func NewStore(snapshot []models.SubredditProfile, backend storage.Interface) *Store {
	s := &Store{
		profiles:  make(map[string]models.SubredditProfile),
		backend:   backend,
		updatedAt: time.Now(),
	}
	for _, p := range snapshot {
		s.addLocked(p)
	}
	return s
}

// Load replaces the working set with a previously persisted one, if any.
// A missing or unreadable file leaves the seeded snapshot in place.
func (s *Store) Load() error {
	if s.backend == nil {
		return nil
	}

	data, err := s.backend.Retrieve(workingSetFile)
	if err != nil {
		logrus.Debugf("No persisted working set, keeping seed catalog: %v", err)
		return nil
	}

	var profiles []models.SubredditProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		logrus.Warnf("Persisted working set is corrupt, keeping seed catalog: %v", err)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = make(map[string]models.SubredditProfile)
	s.order = nil
	for _, p := range profiles {
		s.addLocked(p)
	}
	s.updatedAt = time.Now()
	return nil
}

// Save persists the current working set. Last writer wins.
func (s *Store) Save() error {
	if s.backend == nil {
		return nil
	}

	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal working set: %w", err)
	}

	return s.backend.Store(workingSetFile, data)
}

func (s *Store) addLocked(p models.SubredditProfile) {
	key := strings.ToLower(strings.TrimPrefix(p.Name, "r/"))
	if key == "" {
		return
	}
	if _, exists := s.profiles[key]; !exists {
		s.order = append(s.order, key)
	}
	s.profiles[key] = p
}

// Add inserts or replaces a profile and persists the working set.
func (s *Store) Add(p models.SubredditProfile) error {
	s.mu.Lock()
	s.addLocked(p)
	s.updatedAt = time.Now()
	s.mu.Unlock()
	return s.Save()
}

// Get returns the profile for name (case-insensitive, "r/" prefix
// tolerated) and whether it exists.
func (s *Store) Get(name string) (models.SubredditProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[strings.ToLower(strings.TrimPrefix(name, "r/"))]
	return p, ok
}

// Names returns the working-set names, insertion-ordered.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.order))
	for _, key := range s.order {
		names = append(names, s.profiles[key].Name)
	}
	return names
}

// Snapshot returns a copy of the working set, insertion-ordered.
func (s *Store) Snapshot() []models.SubredditProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SubredditProfile, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, s.profiles[key])
	}
	return out
}

// ByCategory returns working-set profiles in the given category.
func (s *Store) ByCategory(category string) []models.SubredditProfile {
	var out []models.SubredditProfile
	for _, p := range s.Snapshot() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpdatedAt reports when the working set last changed.
func (s *Store) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updatedAt
}

// FallbackProfile builds a synthetic profile for a subreddit that is not
// in the working set. Permissions default to not allowed, the safe side
// for compliance instructions.
func FallbackProfile(name string) models.SubredditProfile {
	bare := strings.TrimPrefix(name, "r/")
	return models.SubredditProfile{
		Name:        bare,
		DisplayName: "r/" + bare,
		Subscribers: "Unknown",
		Category:    "secondary",
		Rules:       []models.Rule{},
	}
}

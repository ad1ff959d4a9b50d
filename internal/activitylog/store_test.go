package activitylog

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/findmyicp/reddit-assistant/internal/models"
	"github.com/stretchr/testify/assert"
)

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

func TestStore_AppendAssignsIDAndTimestamp(t *testing.T) {
	store := NewStore(newMemoryStorage())

	entry, err := store.Append(models.ActivityPostGenerated, map[string]interface{}{"topic": "icp"})

	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.Timestamp.IsZero())
	assert.Equal(t, models.ActivityPostGenerated, entry.Type)
}

func TestStore_CapsAtFiveHundred(t *testing.T) {
	backend := newMemoryStorage()
	store := NewStore(backend)

	for i := 0; i < 501; i++ {
		_, err := store.Append(models.ActivityPostGenerated, map[string]interface{}{"n": i})
		assert.NoError(t, err)
	}

	var persisted []models.ActivityEntry
	assert.NoError(t, json.Unmarshal(backend.files[logFile], &persisted))
	assert.Len(t, persisted, 500)

	// The oldest entry (n=0) was discarded.
	assert.Equal(t, float64(1), persisted[0].Data["n"])
	assert.Equal(t, float64(500), persisted[499].Data["n"])
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := NewStore(newMemoryStorage())

	for i := 0; i < 3; i++ {
		_, err := store.Append(models.ActivityReplyGenerated, map[string]interface{}{"n": i})
		assert.NoError(t, err)
	}

	entries, stats := store.List("", 50)

	assert.Len(t, entries, 3)
	assert.Equal(t, float64(2), entries[0].Data["n"])
	assert.Equal(t, float64(0), entries[2].Data["n"])
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 3, stats.RepliesGenerated)
}

func TestStore_ListFilterAndLimit(t *testing.T) {
	store := NewStore(newMemoryStorage())

	store.Record(models.ActivityPostGenerated, nil)
	store.Record(models.ActivityReplyGenerated, nil)
	store.Record(models.ActivityPostGenerated, nil)
	store.Record(models.ActivityError, nil)

	entries, stats := store.List(models.ActivityPostGenerated, 1)

	assert.Len(t, entries, 1)
	assert.Equal(t, models.ActivityPostGenerated, entries[0].Type)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.PostsGenerated)
	assert.Equal(t, 0, stats.Errors)
}

func TestStore_CorruptLogStartsFresh(t *testing.T) {
	backend := newMemoryStorage()
	backend.files[logFile] = []byte("not json")
	store := NewStore(backend)

	entries, stats := store.List("", 50)
	assert.Empty(t, entries)
	assert.Equal(t, 0, stats.Total)

	_, err := store.Append(models.ActivityPostGenerated, nil)
	assert.NoError(t, err)

	entries, _ = store.List("", 50)
	assert.Len(t, entries, 1)
}

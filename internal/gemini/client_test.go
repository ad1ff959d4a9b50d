package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_WithoutKey(t *testing.T) {
	client, err := NewClient(context.Background(), "")
	assert.NoError(t, err)
	assert.False(t, client.IsEnabled())

	_, err = client.Generate(context.Background(), "gemini-2.5-flash", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

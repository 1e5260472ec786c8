package genai

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateInsights_EmptyKeyFallsBack(t *testing.T) {
	c := NewClient("", "gemini-2.0-flash")

	got := c.GenerateInsights(context.Background(), "analyze today's traffic")

	assert.Equal(t, FallbackMessage, got)
}

func TestGenerateInsights_CancelledContextFallsBack(t *testing.T) {
	c := NewClient("some-key", "gemini-2.0-flash")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := c.GenerateInsights(ctx, "analyze today's traffic")

	assert.Equal(t, FallbackMessage, got)
}

// Package llm provides clients for generative-AI text services.
package llm

import (
	"context"
	"time"
)

// Client defines the interface for generative-AI providers.
type Client interface {
	// Generate submits a text prompt and returns the raw completion text.
	Generate(ctx context.Context, prompt string) (string, error)
}

// Config holds configuration for a generative-AI client.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	BaseURL     string // overridable for tests; empty means the provider default
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

const defaultTimeout = 30 * time.Second

package llm

import (
	"context"

	"github.com/fernwood/dresscode/internal/common"
)

// ErrNotConfigured is returned when no oracle provider is configured.
// Aliased from common so both packages recognize the same sentinel.
var ErrNotConfigured = common.ErrOracleNotConfigured

// CompletionRequest carries one prompt to the oracle.
type CompletionRequest struct {
	System      string
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// Client is the completion oracle: prompt in, raw text out. Implementations
// must be safe for concurrent use.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// Config holds configuration for oracle providers.
type Config struct {
	Provider    string
	APIKey      string
	Model       string
	MaxTokens   int
	Temperature float64
	RateLimit   int // requests per minute; zero disables limiting
}

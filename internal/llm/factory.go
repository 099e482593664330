package llm

import (
	"context"
	"fmt"
	"strings"
)

// NewClient creates an oracle client for the configured provider. An empty
// provider returns ErrNotConfigured so callers can degrade to an empty
// result instead of failing. When a rate limit is set the client is
// wrapped so callers never exceed it.
func NewClient(cfg Config) (Client, error) {
	var client Client
	var err error

	switch strings.ToLower(cfg.Provider) {
	case "":
		return nil, ErrNotConfigured
	case "openai":
		client, err = newOpenAIClient(cfg)
	case "anthropic":
		client, err = newAnthropicClient(cfg)
	case "gemini":
		client, err = newGeminiClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported oracle provider: %s", cfg.Provider)
	}

	if err != nil {
		return nil, err
	}

	if cfg.RateLimit > 0 {
		client = &limitedClient{inner: client, limiter: newRateLimiter(cfg.RateLimit)}
	}

	return client, nil
}

// limitedClient applies a rate limit ahead of the wrapped client.
type limitedClient struct {
	inner   Client
	limiter *rateLimiter
}

func (c *limitedClient) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	if err := c.limiter.wait(ctx); err != nil {
		return "", err
	}
	return c.inner.Complete(ctx, req)
}

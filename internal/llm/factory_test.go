package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_EmptyProviderIsNotConfigured(t *testing.T) {
	_, err := NewClient(Config{})

	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestNewClient_MissingAPIKeyIsNotConfigured(t *testing.T) {
	for _, provider := range []string{"openai", "anthropic", "gemini"} {
		_, err := NewClient(Config{Provider: provider})
		assert.True(t, errors.Is(err, ErrNotConfigured), "provider %s", provider)
	}
}

func TestNewClient_UnsupportedProvider(t *testing.T) {
	_, err := NewClient(Config{Provider: "markov-chain", APIKey: "key"})

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotConfigured))
}

func TestNewClient_ProviderCaseInsensitive(t *testing.T) {
	client, err := NewClient(Config{Provider: "OpenAI", APIKey: "key"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_RateLimitWrapsClient(t *testing.T) {
	client, err := NewClient(Config{Provider: "openai", APIKey: "key", RateLimit: 10})

	require.NoError(t, err)
	_, ok := client.(*limitedClient)
	assert.True(t, ok)
}

// Package gaps identifies wardrobe items missing from a generated outfit
// by consulting the text-completion oracle. Every failure mode degrades to
// an empty suggestion list: an unconfigured oracle, a failed call, or a
// malformed response never surfaces as an error to the caller.
package gaps

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/url"
	"strings"

	"github.com/fernwood/dresscode/internal/llm"
	"github.com/fernwood/dresscode/internal/model"
)

// maxSuggestions caps how many missing items one request may yield.
const maxSuggestions = 3

const searchBaseURL = "https://www.google.com/search"

// Identifier asks the oracle to name missing wardrobe items. A nil client
// means the oracle is not configured and every call returns empty.
type Identifier struct {
	client llm.Client
	logger *slog.Logger
}

// NewIdentifier creates a gap identifier. client may be nil.
func NewIdentifier(client llm.Client, logger *slog.Logger) *Identifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Identifier{client: client, logger: logger}
}

// gapItem is the structured shape the oracle is asked to produce.
type gapItem struct {
	Item   string `json:"item"`
	Reason string `json:"reason"`
}

// Identify proposes up to three items missing from the outfit relative to
// the wardrobe. The returned error is always nil today; the signature
// leaves room for callers that want to distinguish cancellation.
func (i *Identifier) Identify(ctx context.Context, wardrobe, outfitItems []model.Garment, occasion string) ([]model.GapSuggestion, error) {
	if i.client == nil {
		return nil, nil
	}

	content, err := i.client.Complete(ctx, llm.CompletionRequest{
		System:      systemPrompt,
		Prompt:      buildUserPrompt(wardrobe, outfitItems, occasion),
		MaxTokens:   300,
		Temperature: 0.4,
	})
	if err != nil {
		i.logger.Warn("gap oracle call failed, returning no suggestions", "error", err)
		return nil, nil
	}

	items, ok := parseGapItems(content)
	if !ok {
		i.logger.Warn("gap oracle returned unparseable content, returning no suggestions")
		return nil, nil
	}

	suggestions := make([]model.GapSuggestion, 0, len(items))
	for _, item := range items {
		term := strings.TrimSpace(item.Item)
		if term == "" {
			continue
		}
		suggestions = append(suggestions, model.GapSuggestion{
			Term:      term,
			Reason:    strings.TrimSpace(item.Reason),
			SearchURL: SearchURL(term),
		})
		if len(suggestions) == maxSuggestions {
			break
		}
	}

	return suggestions, nil
}

// parseGapItems parses the oracle response as a JSON list, tolerating a
// markdown code fence. The whole result is discarded when the content is
// not a list.
func parseGapItems(content string) ([]gapItem, bool) {
	content = llm.StripCodeFence(content)

	var items []gapItem
	if err := json.Unmarshal([]byte(content), &items); err != nil {
		return nil, false
	}
	return items, true
}

// SearchURL builds the deterministic shopping-search URL for a term.
func SearchURL(term string) string {
	return searchBaseURL + "?tbm=shop&q=" + url.QueryEscape(term)
}

// Package llm provides the text-completion oracle used by the gap
// identifier. It supports multiple providers (OpenAI, Anthropic, Gemini)
// behind a narrow prompt-in, text-out interface, with rate limiting and
// a recognizable not-configured condition that callers map to an empty
// result.
package llm

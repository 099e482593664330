package llm

import "strings"

// StripCodeFence removes a markdown code-fence wrapper from a completion,
// tolerating a language tag after the opening fence. Content without a
// fence is returned trimmed but otherwise untouched.
func StripCodeFence(content string) string {
	content = strings.TrimSpace(content)

	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```")
	if idx := strings.Index(content, "\n"); idx >= 0 {
		// Drop the language tag line, e.g. "json"
		firstLine := strings.TrimSpace(content[:idx])
		if firstLine == "" || !strings.ContainsAny(firstLine, "{[") {
			content = content[idx+1:]
		}
	}

	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}

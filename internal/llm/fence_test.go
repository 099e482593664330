package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "no fence",
			content: `[{"item": "belt"}]`,
			want:    `[{"item": "belt"}]`,
		},
		{
			name:    "json fence",
			content: "```json\n[{\"item\": \"belt\"}]\n```",
			want:    `[{"item": "belt"}]`,
		},
		{
			name:    "bare fence",
			content: "```\n[1, 2]\n```",
			want:    "[1, 2]",
		},
		{
			name:    "fence without newline",
			content: "```[1]```",
			want:    "[1]",
		},
		{
			name:    "surrounding whitespace",
			content: "  \n```json\n{}\n```  \n",
			want:    "{}",
		},
		{
			name:    "empty",
			content: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripCodeFence(tt.content))
		})
	}
}

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON untouched",
			input: `{"score": 90}`,
			want:  `{"score": 90}`,
		},
		{
			name:  "json fence",
			input: "```json\n{\"score\": 90}\n```",
			want:  `{"score": 90}`,
		},
		{
			name:  "bare fence",
			input: "```\n{\"score\": 90}\n```",
			want:  `{"score": 90}`,
		},
		{
			name:  "surrounding whitespace",
			input: "  \n```json\n{}\n```  ",
			want:  `{}`,
		},
		{
			name:  "fence with language identifier",
			input: "```javascript\n{\"a\": 1}\n```",
			want:  `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanJSONBlock(tt.input))
		})
	}
}

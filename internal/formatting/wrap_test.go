package formatting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"empty", "", 80, ""},
		{"whitespace only", "   \n\t ", 80, ""},
		{"short line untouched", "built Go microservices", 80, "built Go microservices"},
		{"packs greedily", "one two three four", 9, "one two\nthree\nfour"},
		{"exact fit", "ab cd", 5, "ab cd"},
		{"one over", "ab cde", 5, "ab\ncde"},
		{"long word own line", "x supercalifragilistic y", 10, "x\nsupercalifragilistic\ny"},
		{"collapses internal whitespace", "a   b\n\nc", 80, "a b c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.input, tt.width))
		})
	}
}

func TestWrap_LineLengthLaw(t *testing.T) {
	text := strings.Repeat("architecture migration pipeline observability kubernetes terraform ", 8)

	wrapped := Wrap(text, WrapWidth)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), WrapWidth, "line too long: %q", line)
	}
	// No word may be split: the wrapped text contains the same words.
	assert.Equal(t, strings.Fields(text), strings.Fields(wrapped))
}

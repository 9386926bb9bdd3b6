package formatting

import "strings"

// WrapWidth is the line width used for wrapped description text.
const WrapWidth = 80

// Wrap re-flows text into lines of at most width characters, greedily
// packing whole words. A word longer than the width gets its own line
// rather than being split.
func Wrap(text string, width int) string {
	if width <= 0 {
		width = WrapWidth
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
			continue
		}
		lines = append(lines, current)
		current = word
	}
	lines = append(lines, current)

	return strings.Join(lines, "\n")
}

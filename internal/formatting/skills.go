package formatting

import (
	"strings"

	"github.com/jonathan/cv-dossier/internal/types"
)

// JoinStyle selects how a skill category's items follow its title.
type JoinStyle int

const (
	// StyleNewline renders "<Title>:" then each item on its own line,
	// items joined with ",\n". Used by the top-level skills copy block.
	StyleNewline JoinStyle = iota
	// StyleComma renders "<Title>: <item1>, <item2>". Used inside the
	// technical environment of an experience.
	StyleComma
)

// SkillCategories is the single category renderer shared by every call site
// that displays grouped technical skills. Empty categories are omitted
// entirely, never rendered as a bare title.
func SkillCategories(ts *types.TechnicalSkills, style JoinStyle) string {
	var blocks []string
	for _, cat := range ts.Categories() {
		if len(cat.Items) == 0 {
			continue
		}
		switch style {
		case StyleComma:
			blocks = append(blocks, cat.Title+": "+strings.Join(cat.Items, ", "))
		default:
			blocks = append(blocks, cat.Title+":\n"+strings.Join(cat.Items, ",\n"))
		}
	}
	return strings.Join(blocks, "\n")
}

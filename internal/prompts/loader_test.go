package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_StructuringPrompt(t *testing.T) {
	prompt, err := Get("extraction.json", "structure-dossier")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.ResumeText}}")
	assert.Contains(t, prompt, "technical_skills")
}

func TestGet_ScoringPrompt(t *testing.T) {
	prompt, err := Get("comparison.json", "score-candidate")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.MissionText}}")
	assert.Contains(t, prompt, "{{.CandidateText}}")
	assert.Contains(t, prompt, "0-100")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("extraction.json", "does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "anything")
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	result := Format("Mission:\n{{.MissionText}}\nCV:\n{{.CandidateText}}", map[string]string{
		"MissionText":   "build a Go service",
		"CandidateText": "ten years of Go",
	})

	assert.Equal(t, "Mission:\nbuild a Go service\nCV:\nten years of Go", result)
	assert.False(t, strings.Contains(result, "{{"))
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("extraction.json", "nope")
	})
}

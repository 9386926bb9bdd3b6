package comparison

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/cv-dossier/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateJSONFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return "", nil
}

func (m *MockLLMClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateJSONFunc != nil {
		return m.GenerateJSONFunc(ctx, prompt, tier)
	}
	return "{}", nil
}

func (m *MockLLMClient) GetModel(tier llm.ModelTier) string { return "mock-model" }

func (m *MockLLMClient) Close() error { return nil }

func candidateFile(name, text string) InputFile {
	return InputFile{Filename: name, DeclaredType: "text/plain", Data: []byte(text)}
}

func missionFile() InputFile {
	return candidateFile("mission.txt", "Senior Go engineer mission, distributed systems, Kubernetes.")
}

// scoreByMarker returns a scoring response whose score depends on a marker
// embedded in the candidate text, so ordering can be asserted end to end.
func scoreByMarker(scores map[string]float64) func(context.Context, string, llm.ModelTier) (string, error) {
	return func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
		for marker, score := range scores {
			if strings.Contains(prompt, marker) {
				return fmt.Sprintf(
					`{"score": %g, "strengths": ["solid Go background"], "summary": "candidate %s"}`,
					score, marker), nil
			}
		}
		return "", fmt.Errorf("no marker matched")
	}
}

func TestCompare_SortsDescending(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: scoreByMarker(map[string]float64{
			"CAND-A": 55,
			"CAND-B": 90,
			"CAND-C": 72,
		}),
	}

	candidates := []InputFile{
		candidateFile("a.txt", "Resume of candidate CAND-A, junior developer."),
		candidateFile("b.txt", "Resume of candidate CAND-B, staff engineer."),
		candidateFile("c.txt", "Resume of candidate CAND-C, senior engineer."),
	}

	outcome, err := NewComparator(client).Compare(context.Background(), candidates, missionFile())

	require.NoError(t, err)
	require.Len(t, outcome.Results, 3)
	assert.NotEmpty(t, outcome.ResultID)

	assert.Equal(t, "b.txt", outcome.Results[0].SourceFilename)
	assert.Equal(t, float64(90), outcome.Results[0].Score)
	assert.Equal(t, "c.txt", outcome.Results[1].SourceFilename)
	assert.Equal(t, float64(72), outcome.Results[1].Score)
	assert.Equal(t, "a.txt", outcome.Results[2].SourceFilename)
	assert.Equal(t, float64(55), outcome.Results[2].Score)

	// Nil sequences must marshal as [] downstream.
	assert.NotNil(t, outcome.Results[0].Weaknesses)
	assert.NotNil(t, outcome.Results[0].MatchedSkills)
}

func TestCompare_TiesKeepSubmissionOrder(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: scoreByMarker(map[string]float64{
			"CAND-A": 80,
			"CAND-B": 80,
			"CAND-C": 80,
		}),
	}

	candidates := []InputFile{
		candidateFile("first.txt", "CAND-A resume."),
		candidateFile("second.txt", "CAND-B resume."),
		candidateFile("third.txt", "CAND-C resume."),
	}

	outcome, err := NewComparator(client, WithConcurrency(1)).Compare(context.Background(), candidates, missionFile())

	require.NoError(t, err)
	assert.Equal(t, "first.txt", outcome.Results[0].SourceFilename)
	assert.Equal(t, "second.txt", outcome.Results[1].SourceFilename)
	assert.Equal(t, "third.txt", outcome.Results[2].SourceFilename)
}

func TestCompare_NoCandidates(t *testing.T) {
	_, err := NewComparator(&MockLLMClient{}).Compare(context.Background(), nil, missionFile())

	var ire *InvalidRequestError
	require.ErrorAs(t, err, &ire)
}

func TestCompare_NoMission(t *testing.T) {
	_, err := NewComparator(&MockLLMClient{}).Compare(
		context.Background(),
		[]InputFile{candidateFile("a.txt", "CAND-A resume.")},
		InputFile{},
	)

	var ire *InvalidRequestError
	require.ErrorAs(t, err, &ire)
}

func TestCompare_ScoringFailureAbortsAll(t *testing.T) {
	llmErr := errors.New("model unavailable")
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
			if strings.Contains(prompt, "CAND-B") {
				return "", llmErr
			}
			return `{"score": 70, "strengths": ["ok"], "summary": "fine"}`, nil
		},
	}

	candidates := []InputFile{
		candidateFile("a.txt", "CAND-A resume."),
		candidateFile("b.txt", "CAND-B resume."),
	}

	_, err := NewComparator(client).Compare(context.Background(), candidates, missionFile())

	var se *ScoringError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "b.txt", se.Filename)
	assert.ErrorIs(t, err, llmErr)
}

func TestCompare_OutOfRangeScoreRejected(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"score": 150, "strengths": ["ok"], "summary": "fine"}`, nil
		},
	}

	_, err := NewComparator(client).Compare(
		context.Background(),
		[]InputFile{candidateFile("a.txt", "CAND-A resume.")},
		missionFile(),
	)

	var se *ScoringError
	require.ErrorAs(t, err, &se)
}

func TestCompare_MissingSummaryRejected(t *testing.T) {
	client := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"score": 50, "strengths": ["ok"]}`, nil
		},
	}

	_, err := NewComparator(client).Compare(
		context.Background(),
		[]InputFile{candidateFile("a.txt", "CAND-A resume.")},
		missionFile(),
	)

	var se *ScoringError
	require.ErrorAs(t, err, &se)
}

package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockLLMClient implements llm.Client for testing
type MockLLMClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
	GenerateJSONFunc    func(ctx context.Context, prompt string, tier llm.ModelTier) (string, error)
}

func (m *MockLLMClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt, tier)
	}
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

const sampleResume = `Jean Dupont, senior backend engineer with ten years of
experience building distributed systems in Go and Python for fintech clients.`

func TestFromText_Success(t *testing.T) {
	var gotPrompt string
	var gotTier llm.ModelTier
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, prompt string, tier llm.ModelTier) (string, error) {
			gotPrompt = prompt
			gotTier = tier
			return `{
				"header": {"first_name": "Jean", "last_name": "Dupont", "job_title": "Backend Engineer"},
				"technical_skills": {"language_framework": ["Go", "Python"]}
			}`, nil
		},
	}

	extractor := NewExtractor(mockClient)
	dossier, err := extractor.FromText(context.Background(), sampleResume)

	require.NoError(t, err)
	require.NotNil(t, dossier)
	assert.Equal(t, "Jean", dossier.Header.FirstName)
	assert.Equal(t, []string{"Go", "Python"}, dossier.TechnicalSkills.LanguageFramework)
	// Defaults must be applied to everything the model omitted.
	assert.NotNil(t, dossier.Degrees)
	assert.NotNil(t, dossier.TechnicalSkills.DatabasesBigData)

	assert.Equal(t, llm.TierStandard, gotTier)
	assert.Contains(t, gotPrompt, "Jean Dupont")
}

func TestFromText_StripsMarkdownFences(t *testing.T) {
	mockClient := &MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "```json\n{\"header\": {\"first_name\": \"Jean\"}}\n```", nil
		},
	}

	extractor := NewExtractor(mockClient)
	dossier, err := extractor.FromText(context.Background(), sampleResume)

	require.NoError(t, err)
	assert.Equal(t, "Jean", dossier.Header.FirstName)
}

func TestFromText_TooShort(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			t.Fatal("LLM must not be called for short input")
			return "", nil
		},
	})

	_, err := extractor.FromText(context.Background(), "   short resume   ")

	var iie *InsufficientInputError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, MinTextChars, iie.Minimum)
	assert.Equal(t, len("short resume"), iie.Length)
}

func TestFromText_CountsCharactersNotBytes(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			t.Fatal("LLM must not be called for short input")
			return "", nil
		},
	})

	// 30 characters, 60 bytes in UTF-8. A byte-length check would let
	// accented French text through below the character threshold.
	accented := strings.Repeat("é", 30)
	_, err := extractor.FromText(context.Background(), accented)

	var iie *InsufficientInputError
	require.ErrorAs(t, err, &iie)
	assert.Equal(t, 30, iie.Length)
}

func TestFromText_LLMFailure(t *testing.T) {
	llmErr := errors.New("quota exceeded")
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "", llmErr
		},
	})

	_, err := extractor.FromText(context.Background(), sampleResume)

	var fe *FailedError
	require.ErrorAs(t, err, &fe)
	assert.ErrorIs(t, err, llmErr)
}

func TestFromText_MalformedResponse(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return "not json at all", nil
		},
	})

	_, err := extractor.FromText(context.Background(), sampleResume)

	var fe *FailedError
	require.ErrorAs(t, err, &fe)
}

func TestFromText_SchemaViolation(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"header": {"first_name": ["Jean"]}}`, nil
		},
	})

	_, err := extractor.FromText(context.Background(), sampleResume)

	var fe *FailedError
	require.ErrorAs(t, err, &fe)
}

func TestFromText_WithMinChars(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{}`, nil
		},
	}, WithMinChars(5))

	_, err := extractor.FromText(context.Background(), "hello world")
	require.NoError(t, err)
}

func TestFromFile_PlainText(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{
		GenerateJSONFunc: func(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
			return `{"header": {"first_name": "Jean"}}`, nil
		},
	})

	dossier, err := extractor.FromFile(context.Background(), "cv.txt", "text/plain", []byte(sampleResume))

	require.NoError(t, err)
	assert.Equal(t, "Jean", dossier.Header.FirstName)
}

func TestFromFile_UnsupportedType(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{})

	_, err := extractor.FromFile(context.Background(), "cv.png", "image/png", []byte("data"))

	var ute *ingestion.UnsupportedTypeError
	require.ErrorAs(t, err, &ute)
}

func TestFromFile_TooLarge(t *testing.T) {
	extractor := NewExtractor(&MockLLMClient{}, WithMaxBytes(10))

	_, err := extractor.FromFile(context.Background(), "cv.txt", "text/plain", []byte(strings.Repeat("x", 20)))

	var tle *ingestion.TooLargeError
	require.ErrorAs(t, err, &tle)
}

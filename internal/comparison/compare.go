// Package comparison ranks candidate resumes against a mission document
// using per-candidate LLM scoring.
package comparison

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-dossier/internal/ingestion"
	"github.com/jonathan/cv-dossier/internal/llm"
	"github.com/jonathan/cv-dossier/internal/prompts"
	"github.com/jonathan/cv-dossier/internal/types"
)

// DefaultConcurrency caps how many candidates are scored at once.
const DefaultConcurrency = 4

// InputFile is an uploaded document waiting to be read and scored.
type InputFile struct {
	Filename     string
	DeclaredType string
	Data         []byte
}

// Comparator scores candidate resumes against a mission document.
type Comparator struct {
	client      llm.Client
	validate    *validator.Validate
	concurrency int
	maxBytes    int64
}

// Option customizes a Comparator.
type Option func(*Comparator)

// WithConcurrency overrides the scoring concurrency. Values <= 0 keep the default.
func WithConcurrency(n int) Option {
	return func(c *Comparator) {
		if n > 0 {
			c.concurrency = n
		}
	}
}

// WithMaxBytes overrides the upload size limit passed to ingestion.
func WithMaxBytes(n int64) Option {
	return func(c *Comparator) {
		if n > 0 {
			c.maxBytes = n
		}
	}
}

// NewComparator builds a Comparator around an LLM client.
func NewComparator(client llm.Client, opts ...Option) *Comparator {
	c := &Comparator{
		client:      client,
		validate:    validator.New(),
		concurrency: DefaultConcurrency,
		maxBytes:    ingestion.DefaultMaxBytes,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// scoringResponse is the JSON contract the scoring prompt asks the model for.
type scoringResponse struct {
	Score         float64  `json:"score" validate:"gte=0,lte=100"`
	Strengths     []string `json:"strengths" validate:"required,min=1"`
	Weaknesses    []string `json:"weaknesses"`
	Summary       string   `json:"summary" validate:"required"`
	MatchedSkills []string `json:"matched_skills"`
	Reasoning     string   `json:"reasoning"`
}

// Compare scores every candidate against the mission document and returns
// the results sorted by descending score. Ties keep submission order.
// Scoring is all-or-nothing: the first failing candidate cancels the rest
// and the whole call returns a *ScoringError.
func (c *Comparator) Compare(ctx context.Context, candidates []InputFile, mission InputFile) (*types.ComparisonOutcome, error) {
	if len(candidates) == 0 {
		return nil, &InvalidRequestError{Message: "at least one candidate file is required"}
	}
	if len(mission.Data) == 0 {
		return nil, &InvalidRequestError{Message: "a mission document is required"}
	}

	missionText, err := ingestion.Read(mission.Filename, mission.DeclaredType, mission.Data, c.maxBytes)
	if err != nil {
		return nil, err
	}

	candidateTexts := make([]string, len(candidates))
	for i, cand := range candidates {
		text, err := ingestion.Read(cand.Filename, cand.DeclaredType, cand.Data, c.maxBytes)
		if err != nil {
			return nil, err
		}
		candidateTexts[i] = text
	}

	// Index-tagged results so the pre-sort order is the submission order.
	results := make([]types.ComparisonResult, len(candidates))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i := range candidates {
		g.Go(func() error {
			result, err := c.scoreCandidate(gctx, candidates[i].Filename, candidateTexts[i], missionText)
			if err != nil {
				return err
			}
			results[i] = *result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score > results[b].Score
	})

	return &types.ComparisonOutcome{
		ResultID: uuid.New().String(),
		Results:  results,
	}, nil
}

// scoreCandidate runs the scoring capability for one candidate.
func (c *Comparator) scoreCandidate(ctx context.Context, filename, candidateText, missionText string) (*types.ComparisonResult, error) {
	prompt := buildScoringPrompt(candidateText, missionText)

	responseText, err := c.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ScoringError{
			Filename: filename,
			Message:  "failed to generate score from LLM",
			Cause:    err,
		}
	}

	responseText = llm.CleanJSONBlock(responseText)

	var response scoringResponse
	if err := json.Unmarshal([]byte(responseText), &response); err != nil {
		return nil, &ScoringError{
			Filename: filename,
			Message:  "failed to parse scoring response",
			Cause:    err,
		}
	}

	if err := c.validate.Struct(&response); err != nil {
		return nil, &ScoringError{
			Filename: filename,
			Message:  "scoring response violates the expected shape",
			Cause:    err,
		}
	}

	result := &types.ComparisonResult{
		SourceFilename: filename,
		Score:          response.Score,
		Strengths:      response.Strengths,
		Weaknesses:     response.Weaknesses,
		Summary:        response.Summary,
		MatchedSkills:  response.MatchedSkills,
		Reasoning:      response.Reasoning,
	}
	result.ApplyDefaults()
	result.ClampScore()
	return result, nil
}

// buildScoringPrompt constructs the prompt for candidate scoring.
func buildScoringPrompt(candidateText, missionText string) string {
	template := prompts.MustGet("comparison.json", "score-candidate")
	return prompts.Format(template, map[string]string{
		"MissionText":   missionText,
		"CandidateText": candidateText,
	})
}

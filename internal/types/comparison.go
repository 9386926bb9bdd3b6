package types

// ComparisonResult is one candidate's outcome of ranking against a mission
// document. Results are created once per comparison run and never mutated.
type ComparisonResult struct {
	SourceFilename string   `json:"source_filename"`
	Score          float64  `json:"score" validate:"gte=0,lte=100"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	Summary        string   `json:"summary"`
	MatchedSkills  []string `json:"matched_skills"`
	Reasoning      string   `json:"reasoning"`
}

// ComparisonOutcome is the result handle returned by a comparison run. The
// core keeps no state between requests; callers that want to revisit a
// ranking hold on to the outcome themselves, keyed by ResultID.
// The Results order is the definitive ranking: index 0 is the best match.
type ComparisonOutcome struct {
	ResultID string             `json:"result_id"`
	Results  []ComparisonResult `json:"results"`
}

// ApplyDefaults replaces nil sequences so results marshal with [] not null.
func (r *ComparisonResult) ApplyDefaults() {
	if r.Strengths == nil {
		r.Strengths = []string{}
	}
	if r.Weaknesses == nil {
		r.Weaknesses = []string{}
	}
	if r.MatchedSkills == nil {
		r.MatchedSkills = []string{}
	}
}

// ClampScore forces the score into the documented [0,100] contract. The
// scoring capability is asked for that range but is not trusted to honor it.
func (r *ComparisonResult) ClampScore() {
	if r.Score < 0 {
		r.Score = 0
	}
	if r.Score > 100 {
		r.Score = 100
	}
}

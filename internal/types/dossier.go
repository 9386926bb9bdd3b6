// Package types provides type definitions for structured data used throughout the cv-dossier system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Dossier is the canonical structured competency record derived from a résumé.
// Every optional field has a deterministic default (empty string, empty slice,
// false), so a validated Dossier is always fully renderable without nil checks.
type Dossier struct {
	Header                  Header                   `json:"header"`
	RecentKeyExperiences    []KeyExperience          `json:"recent_key_experiences"`
	Degrees                 []Degree                 `json:"degrees"`
	Certifications          []Certification          `json:"certifications"`
	Languages               []Language               `json:"languages"`
	TechnicalSkills         TechnicalSkills          `json:"technical_skills"`
	FunctionalSkills        FunctionalSkills         `json:"functional_skills"`
	ProfessionalExperiences []ProfessionalExperience `json:"professional_experiences"`
}

// Header carries the identity line of a dossier.
type Header struct {
	JobTitle        string `json:"job_title"`
	YearsExperience string `json:"years_experience"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	ProfileSummary  string `json:"profile_summary"`
}

// KeyExperience is one entry of the recent key experiences section.
// Slice order is relevance/recency order and must be preserved end-to-end.
type KeyExperience struct {
	Client           string `json:"client"`
	JobTitle         string `json:"job_title"`
	Duration         string `json:"duration"`
	ShortDescription string `json:"short_description"`
}

// Degree represents one diploma entry.
type Degree struct {
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Certification represents one certification entry.
type Certification struct {
	Title       string `json:"title"`
	IssuingBody string `json:"issuing_body"`
	Year        string `json:"year"`
}

// Language represents one spoken-language entry.
type Language struct {
	Language         string `json:"language"`
	ProficiencyLevel string `json:"proficiency_level"`
}

// FunctionalSkills groups the non-technical competencies of a candidate.
type FunctionalSkills struct {
	ProjectManagement  []string `json:"project_management"`
	CodeReview         bool     `json:"code_review"`
	PairProgramming    bool     `json:"pair_programming"`
	DeliverableQuality bool     `json:"deliverable_quality"`
	ScrumMethodology   []string `json:"scrum_methodology"`
	Mentoring          string   `json:"mentoring"`
}

// OngoingSentinel is the wire value marking an experience without an end date.
// Renderers must translate it (or an empty end date) to display text and never
// emit the raw token.
const OngoingSentinel = "ongoing"

// ProfessionalExperience is one detailed experience entry.
type ProfessionalExperience struct {
	Client               string          `json:"client"`
	JobTitle             string          `json:"job_title"`
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	Context              string          `json:"context"`
	Responsibilities     []string        `json:"responsibilities"`
	Deliverables         []string        `json:"deliverables"`
	TechnicalEnvironment TechnicalSkills `json:"technical_environment"`
}

// Ongoing reports whether the experience has no end date yet.
func (e *ProfessionalExperience) Ongoing() bool {
	return e.EndDate == "" || e.EndDate == OngoingSentinel
}

// ApplyDefaults normalizes a freshly unmarshalled Dossier so that every
// sequence is non-nil. This is the total defaulting function from the schema
// contract: it is applied exactly once, at the validation boundary, and the
// rest of the system never re-checks for absence. Scalars and booleans are
// already zero-valued by unmarshalling; only nil slices need replacing so
// they marshal as [] rather than null.
func (d *Dossier) ApplyDefaults() {
	if d.RecentKeyExperiences == nil {
		d.RecentKeyExperiences = []KeyExperience{}
	}
	if d.Degrees == nil {
		d.Degrees = []Degree{}
	}
	if d.Certifications == nil {
		d.Certifications = []Certification{}
	}
	if d.Languages == nil {
		d.Languages = []Language{}
	}
	d.TechnicalSkills.applyDefaults()
	if d.FunctionalSkills.ProjectManagement == nil {
		d.FunctionalSkills.ProjectManagement = []string{}
	}
	if d.FunctionalSkills.ScrumMethodology == nil {
		d.FunctionalSkills.ScrumMethodology = []string{}
	}
	if d.ProfessionalExperiences == nil {
		d.ProfessionalExperiences = []ProfessionalExperience{}
	}
	for i := range d.ProfessionalExperiences {
		exp := &d.ProfessionalExperiences[i]
		if exp.Responsibilities == nil {
			exp.Responsibilities = []string{}
		}
		if exp.Deliverables == nil {
			exp.Deliverables = []string{}
		}
		exp.TechnicalEnvironment.applyDefaults()
	}
}

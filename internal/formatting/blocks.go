// Package formatting derives the plain-text copy blocks of a dossier. Every
// function here is pure and deterministic: the same dossier always formats
// to byte-identical text, and the rendering templates reuse these functions
// so artifacts never drift from the copy blocks.
package formatting

import (
	"strings"

	"github.com/jonathan/cv-dossier/internal/types"
)

// OngoingLabel is the display text for an experience without an end date.
const OngoingLabel = "Ongoing"

// joinPresent comma-joins the non-blank parts.
func joinPresent(parts ...string) string {
	var present []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, ", ")
}

// FullName joins first and last name, skipping whichever is blank.
func FullName(h *types.Header) string {
	var present []string
	for _, p := range []string{h.FirstName, h.LastName} {
		if strings.TrimSpace(p) != "" {
			present = append(present, p)
		}
	}
	return strings.Join(present, " ")
}

// HeaderBlock holds the independently copyable header fields.
type HeaderBlock struct {
	FullName        string
	JobTitle        string
	YearsExperience string
	ProfileSummary  string
}

// NewHeaderBlock derives the header copy block from a dossier.
func NewHeaderBlock(d *types.Dossier) HeaderBlock {
	return HeaderBlock{
		FullName:        FullName(&d.Header),
		JobTitle:        d.Header.JobTitle,
		YearsExperience: d.Header.YearsExperience,
		ProfileSummary:  d.Header.ProfileSummary,
	}
}

// Lines returns the non-blank header fields in display order.
func (b HeaderBlock) Lines() []string {
	var lines []string
	for _, l := range []string{b.FullName, b.JobTitle, b.YearsExperience, b.ProfileSummary} {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// KeyExperienceLine renders the one-line summary of a key experience as a
// blank-filtered comma join of client, job title and duration.
func KeyExperienceLine(e *types.KeyExperience) string {
	return joinPresent(e.Client, e.JobTitle, e.Duration)
}

// KeyExperienceBlock renders the summary line followed by the description
// wrapped to 80 characters.
func KeyExperienceBlock(e *types.KeyExperience) string {
	line := KeyExperienceLine(e)
	desc := Wrap(e.ShortDescription, WrapWidth)
	switch {
	case line == "":
		return desc
	case desc == "":
		return line
	default:
		return line + "\n" + desc
	}
}

// DateRange renders "<start> to <end>" for an experience. An empty or
// sentinel end date displays as Ongoing; the raw sentinel never appears.
func DateRange(e *types.ProfessionalExperience) string {
	end := e.EndDate
	if e.Ongoing() {
		end = OngoingLabel
	}
	if strings.TrimSpace(e.StartDate) == "" {
		if e.EndDate == "" {
			return ""
		}
		return end
	}
	return e.StartDate + " to " + end
}

// ExperienceBlock renders one professional experience in the fixed section
// order: header lines, context, responsibilities, deliverables, technical
// environment. Empty sections are dropped without leaving a dangling label.
func ExperienceBlock(e *types.ProfessionalExperience) string {
	var lines []string

	if header := joinPresent(e.Client, e.JobTitle); header != "" {
		lines = append(lines, header)
	}
	if dates := DateRange(e); dates != "" {
		lines = append(lines, dates)
	}

	if strings.TrimSpace(e.Context) != "" {
		lines = append(lines, "Context.", e.Context)
	}

	if len(e.Responsibilities) > 0 {
		lines = append(lines, "Responsibilities.")
		lines = append(lines, e.Responsibilities...)
	}

	if len(e.Deliverables) > 0 {
		lines = append(lines, "Deliverables.")
		lines = append(lines, e.Deliverables...)
	}

	if !e.TechnicalEnvironment.IsEmpty() {
		lines = append(lines, "Technical environment.")
		lines = append(lines, SkillCategories(&e.TechnicalEnvironment, StyleComma))
	}

	return strings.Join(lines, "\n")
}

// DegreeLine renders one diploma entry.
func DegreeLine(d *types.Degree) string {
	return joinPresent(d.Title, d.Institution, d.Year)
}

// CertificationLine renders one certification entry.
func CertificationLine(c *types.Certification) string {
	return joinPresent(c.Title, c.IssuingBody, c.Year)
}

// LanguageLine renders one spoken-language entry.
func LanguageLine(l *types.Language) string {
	return joinPresent(l.Language, l.ProficiencyLevel)
}

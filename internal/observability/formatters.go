// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/cv-dossier/internal/formatting"
	"github.com/jonathan/cv-dossier/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDossier outputs a human-readable summary of an extracted dossier.
func (p *Printer) PrintDossier(d *types.Dossier) {
	if d == nil {
		return
	}

	var sb strings.Builder

	header := formatting.NewHeaderBlock(d)
	sb.WriteString(fmt.Sprintf("Name:   %s\n", header.FullName))
	sb.WriteString(fmt.Sprintf("Title:  %s\n", header.JobTitle))
	if header.YearsExperience != "" {
		sb.WriteString(fmt.Sprintf("Years:  %s\n", header.YearsExperience))
	}
	sb.WriteString("\n")

	if len(d.RecentKeyExperiences) > 0 {
		sb.WriteString("Key Experiences:\n")
		count := min(len(d.RecentKeyExperiences), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", formatting.KeyExperienceLine(&d.RecentKeyExperiences[i])))
		}
		if len(d.RecentKeyExperiences) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(d.RecentKeyExperiences)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	var nonEmpty []string
	for _, cat := range d.TechnicalSkills.Categories() {
		if len(cat.Items) > 0 {
			nonEmpty = append(nonEmpty, fmt.Sprintf("%s (%d)", cat.Title, len(cat.Items)))
		}
	}
	if len(nonEmpty) > 0 {
		sb.WriteString(fmt.Sprintf("Skill categories: %s\n", strings.Join(nonEmpty, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Professional experiences: %d", len(d.ProfessionalExperiences)))

	p.printBox("EXTRACTED DOSSIER", sb.String())
}

// PrintComparison outputs a human-readable ranking of comparison results.
func (p *Printer) PrintComparison(outcome *types.ComparisonOutcome) {
	if outcome == nil || len(outcome.Results) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates ranked: %d\n\n", len(outcome.Results)))

	count := min(len(outcome.Results), maxItemsToShow)
	for i := 0; i < count; i++ {
		result := outcome.Results[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, result.SourceFilename))
		sb.WriteString(fmt.Sprintf("    Score: %.0f\n", result.Score))
		if len(result.MatchedSkills) > 0 {
			skills := strings.Join(result.MatchedSkills, ", ")
			if len(skills) > 40 {
				skills = skills[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(outcome.Results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more\n", len(outcome.Results)-maxItemsToShow))
	}

	p.printBox("COMPARISON RESULTS", strings.TrimSuffix(sb.String(), "\n"))
}

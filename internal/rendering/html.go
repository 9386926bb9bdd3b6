package rendering

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/cv-dossier/internal/formatting"
	"github.com/jonathan/cv-dossier/internal/types"
)

//go:embed templates/*.html
var templateFS embed.FS

// documentData is the data passed to both HTML templates. Every field is a
// pre-rendered text block from the formatting package, so the artifacts can
// never drift from the copy blocks.
type documentData struct {
	Title          string
	HeaderLines    []string
	ProfileSummary string
	KeyExperiences []string
	Degrees        []string
	Certifications []string
	Languages      []string
	SkillsBlock    string
	Experiences    []string
}

func buildDocumentData(d *types.Dossier) documentData {
	header := formatting.NewHeaderBlock(d)

	title := header.FullName
	if title == "" {
		title = "Competency Dossier"
	}

	keyExps := make([]string, 0, len(d.RecentKeyExperiences))
	for i := range d.RecentKeyExperiences {
		keyExps = append(keyExps, formatting.KeyExperienceBlock(&d.RecentKeyExperiences[i]))
	}

	degrees := make([]string, 0, len(d.Degrees))
	for i := range d.Degrees {
		degrees = append(degrees, formatting.DegreeLine(&d.Degrees[i]))
	}

	certs := make([]string, 0, len(d.Certifications))
	for i := range d.Certifications {
		certs = append(certs, formatting.CertificationLine(&d.Certifications[i]))
	}

	langs := make([]string, 0, len(d.Languages))
	for i := range d.Languages {
		langs = append(langs, formatting.LanguageLine(&d.Languages[i]))
	}

	exps := make([]string, 0, len(d.ProfessionalExperiences))
	for i := range d.ProfessionalExperiences {
		exps = append(exps, formatting.ExperienceBlock(&d.ProfessionalExperiences[i]))
	}

	return documentData{
		Title:          title,
		HeaderLines:    header.Lines(),
		ProfileSummary: header.ProfileSummary,
		KeyExperiences: keyExps,
		Degrees:        degrees,
		Certifications: certs,
		Languages:      langs,
		SkillsBlock:    formatting.SkillCategories(&d.TechnicalSkills, formatting.StyleNewline),
		Experiences:    exps,
	}
}

// executeTemplate renders one of the embedded templates to an HTML string.
func executeTemplate(name string, d *types.Dossier) (string, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return "", &TemplateError{
			Message: "failed to parse template " + name,
			Cause:   err,
		}
	}

	var out strings.Builder
	if err := tmpl.Execute(&out, buildDocumentData(d)); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template " + name,
			Cause:   err,
		}
	}

	return out.String(), nil
}

// DocumentHTML renders the single-page document layout for a dossier.
func DocumentHTML(d *types.Dossier) (string, error) {
	return executeTemplate("dossier.html", d)
}

// DeckHTML renders the slide deck layout, one section per slide.
func DeckHTML(d *types.Dossier) (string, error) {
	return executeTemplate("deck.html", d)
}

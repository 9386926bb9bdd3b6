package types

// TechnicalSkills is the closed set of technical skill categories. The
// category set is enumerated rather than open-ended so that grouping in
// exports stays stable; the JSON keys are pinned by the wire format shared
// with the frontend and the structuring capability.
type TechnicalSkills struct {
	LanguageFramework      []string `json:"language_framework"`
	CICD                   []string `json:"ci_cd"`
	StateManagement        []string `json:"state_management"`
	Tests                  []string `json:"tests"`
	Outils                 []string `json:"outils"`
	DatabasesBigData       []string `json:"databases_big_data"`
	AnalyticsVisualization []string `json:"analytics_visualization"`
	Collaboration          []string `json:"collaboration"`
	UXUI                   []string `json:"ux_ui"`
}

// SkillCategory pairs a category's display title with its items.
type SkillCategory struct {
	Key   string
	Title string
	Items []string
}

// Categories returns the categories in canonical render order. The order is
// fixed: exports and copy blocks must agree on it.
func (t *TechnicalSkills) Categories() []SkillCategory {
	return []SkillCategory{
		{Key: "language_framework", Title: "Languages & Frameworks", Items: t.LanguageFramework},
		{Key: "ci_cd", Title: "CI/CD", Items: t.CICD},
		{Key: "state_management", Title: "State Management", Items: t.StateManagement},
		{Key: "tests", Title: "Tests", Items: t.Tests},
		{Key: "outils", Title: "Outils", Items: t.Outils},
		{Key: "databases_big_data", Title: "Databases & Big Data", Items: t.DatabasesBigData},
		{Key: "analytics_visualization", Title: "Analytics & Visualization", Items: t.AnalyticsVisualization},
		{Key: "collaboration", Title: "Collaboration", Items: t.Collaboration},
		{Key: "ux_ui", Title: "UX/UI", Items: t.UXUI},
	}
}

// IsEmpty reports whether no category has any item.
func (t *TechnicalSkills) IsEmpty() bool {
	for _, c := range t.Categories() {
		if len(c.Items) > 0 {
			return false
		}
	}
	return true
}

func (t *TechnicalSkills) applyDefaults() {
	if t.LanguageFramework == nil {
		t.LanguageFramework = []string{}
	}
	if t.CICD == nil {
		t.CICD = []string{}
	}
	if t.StateManagement == nil {
		t.StateManagement = []string{}
	}
	if t.Tests == nil {
		t.Tests = []string{}
	}
	if t.Outils == nil {
		t.Outils = []string{}
	}
	if t.DatabasesBigData == nil {
		t.DatabasesBigData = []string{}
	}
	if t.AnalyticsVisualization == nil {
		t.AnalyticsVisualization = []string{}
	}
	if t.Collaboration == nil {
		t.Collaboration = []string{}
	}
	if t.UXUI == nil {
		t.UXUI = []string{}
	}
}

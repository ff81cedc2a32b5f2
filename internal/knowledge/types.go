// Package knowledge holds the static methodology tables (archetypes, industries,
// keywords and exclusion policies) and exposes read-only lookups over them.
//
// Every lookup is total: unknown or empty keys fall back to an empty list, the
// "general" industry, or a built-in default instead of failing.
package knowledge

// GeneralIndustry is the fallback industry used when none is selected.
const GeneralIndustry = "general"

// DefaultKeywords score archetypes that have no keyword entry of their own.
var DefaultKeywords = []string{"Framework", "Analysis", "Management", "Process"}

// Option is a value/label pair shown as a selectable choice.
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
}

// Pattern describes how an archetype phrases its recommendations.
type Pattern struct {
	Format string   `yaml:"format" json:"format"`
	Styles []string `yaml:"styles,flow" json:"styles"`
}

// DepthConcept is the archetype-specific name and choices for "how deep".
type DepthConcept struct {
	Concept  string   `yaml:"concept" json:"concept"`
	Question string   `yaml:"question" json:"question"`
	Options  []Option `yaml:"options" json:"options"`
}

// TaskChecklist is a labelled multi-select of task descriptions.
type TaskChecklist struct {
	Label   string   `yaml:"label" json:"label"`
	Options []string `yaml:"options" json:"options"`
}

// AudienceChoice is a labelled single-select of target audiences.
type AudienceChoice struct {
	Label   string   `yaml:"label" json:"label"`
	Options []Option `yaml:"options" json:"options"`
}

// QuestionSet is the archetype-specific wording of the opening questions.
type QuestionSet struct {
	PrimaryGoal string         `yaml:"primaryGoal" json:"primaryGoal"`
	Tasks       TaskChecklist  `yaml:"tasks" json:"tasks"`
	Audience    AudienceChoice `yaml:"audience" json:"audience"`
}

// Archetype is one kind of agent a user can create.
type Archetype struct {
	ID            string        `yaml:"id" json:"id"`
	Label         string        `yaml:"label" json:"label"`
	Description   string        `yaml:"description" json:"description"`
	Methodologies []string      `yaml:"methodologies" json:"methodologies"`
	Keywords      []string      `yaml:"keywords,omitempty" json:"keywords,omitempty"`
	Pattern       Pattern       `yaml:"pattern" json:"pattern"`
	Depth         *DepthConcept `yaml:"depth,omitempty" json:"depth,omitempty"`
	Questions     *QuestionSet  `yaml:"questions,omitempty" json:"questions,omitempty"`
}

// Industry is a field an agent can serve.
type Industry struct {
	ID                   string   `yaml:"id" json:"id"`
	Label                string   `yaml:"label" json:"label"`
	Methodologies        []string `yaml:"methodologies" json:"methodologies"`
	RecommendationStyles []Option `yaml:"recommendationStyles" json:"recommendationStyles"`
}

// Policy restricts which industry methodologies an archetype may be offered.
// Methodologies of the industry that are neither in Allow nor among the
// archetype's own methodologies are excluded.
type Policy struct {
	Allow []string `yaml:"allow" json:"allow"`
}

// Policies maps archetype id -> industry id -> policy.
type Policies map[string]map[string]Policy

// Document is the on-disk shape of knowledge files, embedded or overlay.
type Document struct {
	Archetypes []Archetype `yaml:"archetypes,omitempty" json:"archetypes,omitempty"`
	Industries []Industry  `yaml:"industries,omitempty" json:"industries,omitempty"`
	Policies   Policies    `yaml:"policies,omitempty" json:"policies,omitempty"`
}

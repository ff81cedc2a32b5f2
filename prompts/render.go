package prompts

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/LMKidston/meta-agent1/internal/form"
	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/spf13/afero"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Data is the value templates are executed against.
type Data struct {
	AgentType     string
	AgentLabel    string
	Industry      string
	IndustryLabel string
	PrimaryGoal   string
	Tasks         []string
	Frameworks    []string
	DepthConcept  string
	Pattern       knowledge.Pattern
	// A holds the answers with defaults resolved.
	A form.Answers
}

const (
	defaultAgentLabel    = "general-purpose"
	defaultIndustryLabel = "General"
	defaultPrimaryGoal   = "to help users with their questions and tasks"
)

// NewData resolves answers against base into template data.
func NewData(a form.Answers, base *knowledge.Base) Data {
	r := a.Resolve(base)
	d := Data{
		AgentType:     a.AgentType,
		AgentLabel:    defaultAgentLabel,
		Industry:      a.Industry,
		IndustryLabel: defaultIndustryLabel,
		PrimaryGoal:   strings.TrimSpace(a.PrimaryGoal),
		Tasks:         r.SpecificTasks,
		Frameworks:    r.DomainFrameworks,
		DepthConcept:  base.DepthConcept(a.AgentType).Concept,
		Pattern:       base.RecommendationPattern(a.AgentType),
		A:             r,
	}
	if arch, ok := base.Archetype(a.AgentType); ok {
		d.AgentLabel = arch.Label
	} else if a.AgentType != "" {
		d.AgentLabel = DisplayName(a.AgentType)
	}
	if ind, ok := base.Industry(a.Industry); ok {
		d.IndustryLabel = ind.Label
	} else if a.Industry != "" {
		d.IndustryLabel = DisplayName(a.Industry)
	}
	if d.PrimaryGoal == "" {
		d.PrimaryGoal = defaultPrimaryGoal
	}
	return d
}

// DisplayName turns an id such as "real-estate" into "Real Estate".
func DisplayName(id string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(id, "-", " "))
}

var funcs = template.FuncMap{
	"bullets": func(items []string) string {
		lines := make([]string, len(items))
		for i, item := range items {
			lines[i] = "- " + item
		}
		return strings.Join(lines, "\n")
	},
	"join": func(items []string) string {
		return strings.Join(items, ", ")
	},
	"lower": strings.ToLower,
}

// Renderer executes prompt templates, honouring overrides in templatesDir.
type Renderer struct {
	fs           afero.Fs
	templatesDir string
}

// NewRenderer creates a renderer reading overrides from templatesDir on fs.
func NewRenderer(fs afero.Fs, templatesDir string) *Renderer {
	return &Renderer{fs: fs, templatesDir: templatesDir}
}

// Render executes the template for key against the answers.
func (r *Renderer) Render(key PromptKey, a form.Answers, base *knowledge.Base) (string, error) {
	text, err := GetTemplate(r.fs, key, r.templatesDir)
	if err != nil {
		return "", err
	}
	tmpl, err := template.New(string(key)).Funcs(funcs).Option("missingkey=error").Parse(text)
	if err != nil {
		return "", fmt.Errorf("parse %s template: %w", key, err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, NewData(a, base)); err != nil {
		return "", fmt.Errorf("render %s template: %w", key, err)
	}
	return sb.String(), nil
}

// Render renders the full agent prompt, reading overrides from the OS filesystem.
func Render(a form.Answers, base *knowledge.Base, templatesDir string) (string, error) {
	return NewRenderer(afero.NewOsFs(), templatesDir).Render(KeyAgentPrompt, a, base)
}

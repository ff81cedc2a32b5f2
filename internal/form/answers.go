// Package form holds the questionnaire answers that feed prompt generation.
package form

import (
	"slices"

	"github.com/LMKidston/meta-agent1/internal/knowledge"
)

// Answers is the full questionnaire. Empty fields are filled by Resolve.
type Answers struct {
	// Agent purpose and domain
	AgentType     string   `yaml:"agentType" json:"agentType"`
	Industry      string   `yaml:"industry" json:"industry"`
	PrimaryGoal   string   `yaml:"primaryGoal" json:"primaryGoal"`
	SpecificTasks []string `yaml:"specificTasks,omitempty" json:"specificTasks,omitempty" validate:"dive,required"`

	// Communication style
	Tone           string `yaml:"tone,omitempty" json:"tone,omitempty" validate:"omitempty,oneof=professional friendly casual enthusiastic empathetic"`
	Formality      string `yaml:"formality,omitempty" json:"formality,omitempty" validate:"omitempty,oneof=very-formal formal balanced informal very-informal"`
	ResponseLength string `yaml:"responseLength,omitempty" json:"responseLength,omitempty" validate:"omitempty,oneof=brief concise detailed comprehensive"`

	// Expertise level
	TargetAudience   string `yaml:"targetAudience,omitempty" json:"targetAudience,omitempty"`
	TechnicalDepth   string `yaml:"technicalDepth,omitempty" json:"technicalDepth,omitempty"`
	ExplanationStyle string `yaml:"explanationStyle,omitempty" json:"explanationStyle,omitempty"`

	// Behaviour. Zero means unset for the levels; nil means unset for the flags.
	Proactiveness   int   `yaml:"proactiveness,omitempty" json:"proactiveness,omitempty" validate:"omitempty,min=1,max=10"`
	AskQuestions    *bool `yaml:"askQuestions,omitempty" json:"askQuestions,omitempty"`
	CreativityLevel int   `yaml:"creativityLevel,omitempty" json:"creativityLevel,omitempty" validate:"omitempty,min=1,max=10"`

	// Output format
	ResponseStructure string `yaml:"responseStructure,omitempty" json:"responseStructure,omitempty"`
	IncludeExamples   *bool  `yaml:"includeExamples,omitempty" json:"includeExamples,omitempty"`
	FormatStyle       string `yaml:"formatStyle,omitempty" json:"formatStyle,omitempty"`

	// Domain expertise
	DomainFrameworks []string `yaml:"domainFrameworks,omitempty" json:"domainFrameworks,omitempty" validate:"dive,required"`
	AnalysisDepth    string   `yaml:"analysisDepth,omitempty" json:"analysisDepth,omitempty"`
	DataRequirements string   `yaml:"dataRequirements,omitempty" json:"dataRequirements,omitempty"`

	// Advanced behaviour
	HandlesUncertainty string `yaml:"handlesUncertainty,omitempty" json:"handlesUncertainty,omitempty"`
	FollowUpStyle      string `yaml:"followUpStyle,omitempty" json:"followUpStyle,omitempty"`
	RiskTolerance      string `yaml:"riskTolerance,omitempty" json:"riskTolerance,omitempty"`

	// Specialised knowledge
	KeyMetrics    []string `yaml:"keyMetrics,omitempty" json:"keyMetrics,omitempty"`
	IndustryFocus []string `yaml:"industryFocus,omitempty" json:"industryFocus,omitempty"`
	Methodologies []string `yaml:"methodologies,omitempty" json:"methodologies,omitempty"`

	// Output enhancement
	ReportStructure     string `yaml:"reportStructure,omitempty" json:"reportStructure,omitempty"`
	DecisionFramework   string `yaml:"decisionFramework,omitempty" json:"decisionFramework,omitempty"`
	RecommendationStyle string `yaml:"recommendationStyle,omitempty" json:"recommendationStyle,omitempty"`
}

// Choices offered for the single-select style questions.
var (
	ToneOptions = []knowledge.Option{
		{Value: "professional", Label: "Professional"},
		{Value: "friendly", Label: "Friendly"},
		{Value: "casual", Label: "Casual"},
		{Value: "enthusiastic", Label: "Enthusiastic"},
		{Value: "empathetic", Label: "Empathetic"},
	}
	FormalityOptions = []knowledge.Option{
		{Value: "very-formal", Label: "Very Formal"},
		{Value: "formal", Label: "Formal"},
		{Value: "balanced", Label: "Balanced"},
		{Value: "informal", Label: "Informal"},
		{Value: "very-informal", Label: "Very Informal"},
	}
	ResponseLengthOptions = []knowledge.Option{
		{Value: "brief", Label: "Brief (1-2 sentences)"},
		{Value: "concise", Label: "Concise (1 paragraph)"},
		{Value: "detailed", Label: "Detailed (2-3 paragraphs)"},
		{Value: "comprehensive", Label: "Comprehensive (as long as needed)"},
	}
)

// Textual defaults used when a question was left blank.
const (
	DefaultTargetAudience      = "General users"
	DefaultTechnicalDepth      = "Moderate"
	DefaultExplanationStyle    = "Clear and structured"
	DefaultTone                = "Professional"
	DefaultFormality           = "Balanced"
	DefaultResponseLength      = "Detailed as needed"
	DefaultAnalysisDepth       = "Comprehensive analysis with key insights"
	DefaultHandlesUncertainty  = "Acknowledge limitations and provide best estimate"
	DefaultResponseStructure   = "Structured report with clear sections"
	DefaultRecommendationStyle = "Clear recommendations with supporting reasoning"
	DefaultLevel               = 5
)

// Resolve returns a copy with blank answers replaced by their defaults.
// Option values (tone, formality, response length, audience and depth) are
// replaced by their display labels.
func (a Answers) Resolve(base *knowledge.Base) Answers {
	r := a.clone()

	r.TargetAudience = orDefault(
		labelFor(base.Questions(a.AgentType).Audience.Options, a.TargetAudience), DefaultTargetAudience)
	r.TechnicalDepth = orDefault(a.TechnicalDepth, DefaultTechnicalDepth)
	r.ExplanationStyle = orDefault(a.ExplanationStyle, DefaultExplanationStyle)
	r.Tone = orDefault(labelFor(ToneOptions, a.Tone), DefaultTone)
	r.Formality = orDefault(labelFor(FormalityOptions, a.Formality), DefaultFormality)
	r.ResponseLength = orDefault(labelFor(ResponseLengthOptions, a.ResponseLength), DefaultResponseLength)
	r.AnalysisDepth = orDefault(
		labelFor(base.DepthConcept(a.AgentType).Options, a.AnalysisDepth), DefaultAnalysisDepth)
	r.HandlesUncertainty = orDefault(a.HandlesUncertainty, DefaultHandlesUncertainty)
	r.ResponseStructure = orDefault(a.ResponseStructure, DefaultResponseStructure)
	r.RecommendationStyle = orDefault(
		labelFor(base.RecommendationStyles(a.Industry), a.RecommendationStyle), DefaultRecommendationStyle)

	if r.Proactiveness == 0 {
		r.Proactiveness = DefaultLevel
	}
	if r.CreativityLevel == 0 {
		r.CreativityLevel = DefaultLevel
	}
	if r.AskQuestions == nil {
		r.AskQuestions = boolPtr(true)
	}
	if r.IncludeExamples == nil {
		r.IncludeExamples = boolPtr(true)
	}
	return r
}

// Asks reports whether the agent should ask clarifying questions.
func (a Answers) Asks() bool {
	return a.AskQuestions == nil || *a.AskQuestions
}

// WantsExamples reports whether the agent should include examples.
func (a Answers) WantsExamples() bool {
	return a.IncludeExamples == nil || *a.IncludeExamples
}

func (a Answers) clone() Answers {
	c := a
	c.SpecificTasks = slices.Clone(a.SpecificTasks)
	c.DomainFrameworks = slices.Clone(a.DomainFrameworks)
	c.KeyMetrics = slices.Clone(a.KeyMetrics)
	c.IndustryFocus = slices.Clone(a.IndustryFocus)
	c.Methodologies = slices.Clone(a.Methodologies)
	if a.AskQuestions != nil {
		c.AskQuestions = boolPtr(*a.AskQuestions)
	}
	if a.IncludeExamples != nil {
		c.IncludeExamples = boolPtr(*a.IncludeExamples)
	}
	return c
}

// labelFor maps an option value to its label; other text passes through.
func labelFor(options []knowledge.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func boolPtr(b bool) *bool {
	return &b
}

package form

import (
	"testing"

	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/stretchr/testify/assert"
)

func TestResolve_Defaults(t *testing.T) {
	r := Answers{}.Resolve(knowledge.Default())

	assert.Equal(t, DefaultTargetAudience, r.TargetAudience)
	assert.Equal(t, DefaultTechnicalDepth, r.TechnicalDepth)
	assert.Equal(t, DefaultExplanationStyle, r.ExplanationStyle)
	assert.Equal(t, DefaultTone, r.Tone)
	assert.Equal(t, DefaultFormality, r.Formality)
	assert.Equal(t, DefaultResponseLength, r.ResponseLength)
	assert.Equal(t, DefaultAnalysisDepth, r.AnalysisDepth)
	assert.Equal(t, DefaultHandlesUncertainty, r.HandlesUncertainty)
	assert.Equal(t, DefaultResponseStructure, r.ResponseStructure)
	assert.Equal(t, DefaultRecommendationStyle, r.RecommendationStyle)
	assert.Equal(t, DefaultLevel, r.Proactiveness)
	assert.Equal(t, DefaultLevel, r.CreativityLevel)
	assert.True(t, r.Asks())
	assert.True(t, r.WantsExamples())
}

func TestResolve_LabelsAndPassThrough(t *testing.T) {
	no := false
	a := Answers{
		AgentType:           "consultant",
		Industry:            "technology",
		Tone:                "empathetic",
		Formality:           "very-formal",
		ResponseLength:      "brief",
		AnalysisDepth:       "detailed",
		RecommendationStyle: "best-practices",
		TargetAudience:      "Startup founders",
		Proactiveness:       9,
		AskQuestions:        &no,
		SpecificTasks:       []string{"Market analysis"},
	}

	r := a.Resolve(knowledge.Default())

	assert.Equal(t, "Empathetic", r.Tone)
	assert.Equal(t, "Very Formal", r.Formality)
	assert.Equal(t, "Brief (1-2 sentences)", r.ResponseLength)
	assert.Equal(t, "Detailed strategic analysis with recommendations", r.AnalysisDepth)
	assert.Equal(t, "Industry best practices", r.RecommendationStyle)
	assert.Equal(t, "Startup founders", r.TargetAudience, "free text is kept")
	assert.Equal(t, 9, r.Proactiveness)
	assert.False(t, r.Asks())

	// the receiver is not modified
	r.SpecificTasks[0] = "changed"
	*r.AskQuestions = true
	assert.Equal(t, "Market analysis", a.SpecificTasks[0])
	assert.False(t, *a.AskQuestions)
	assert.Equal(t, "empathetic", a.Tone)
}

func TestValidate(t *testing.T) {
	kb := knowledge.Default()

	tests := []struct {
		name    string
		answers Answers
		wantErr string
	}{
		{name: "empty is valid", answers: Answers{}},
		{
			name: "fully specified",
			answers: Answers{
				AgentType: "developer", Industry: "finance", Tone: "casual",
				Formality: "formal", ResponseLength: "concise", Proactiveness: 1, CreativityLevel: 10,
			},
		},
		{name: "bad tone", answers: Answers{Tone: "snarky"}, wantErr: `tone: "snarky" is not one of`},
		{name: "proactiveness too high", answers: Answers{Proactiveness: 11}, wantErr: "proactiveness: 11 must be between 1 and 10"},
		{name: "negative creativity", answers: Answers{CreativityLevel: -1}, wantErr: "creativityLevel: -1 must be between 1 and 10"},
		{name: "unknown archetype", answers: Answers{AgentType: "astronaut"}, wantErr: `unknown archetype "astronaut"`},
		{name: "unknown industry", answers: Answers{Industry: "mars"}, wantErr: `unknown industry "mars"`},
		{name: "blank task", answers: Answers{SpecificTasks: []string{"ok", ""}}, wantErr: "empty entry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.answers.Validate(kb)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidAnswers)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

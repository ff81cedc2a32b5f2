package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Catalogue(t *testing.T) {
	b := Default()

	archetypes := b.Archetypes()
	require.Len(t, archetypes, 20)
	assert.Equal(t, "consultant", archetypes[0].ID)
	assert.Equal(t, "innovation-catalyst", archetypes[len(archetypes)-1].ID)

	industries := b.Industries()
	require.Len(t, industries, 26)
	assert.Equal(t, "technology", industries[0].ID)
	assert.Equal(t, GeneralIndustry, industries[len(industries)-1].ID)

	assert.Empty(t, b.Validate(), "embedded tables should be consistent")
}

func TestPreferredMethodologies(t *testing.T) {
	b := Default()

	tests := []struct {
		name      string
		agentType string
		want      []string
	}{
		{
			name:      "known archetype",
			agentType: "teacher",
			want: []string{
				"Bloom's Taxonomy",
				"Learning Objectives Framework",
				"Instructional Design (ADDIE)",
				"Assessment and Evaluation",
				"Differentiated Instruction",
				"Universal Design for Learning (UDL)",
			},
		},
		{name: "empty", agentType: "", want: nil},
		{name: "unknown", agentType: "astronaut", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.PreferredMethodologies(tt.agentType))
		})
	}
}

func TestIndustryMethodologies_FallsBackToGeneral(t *testing.T) {
	b := Default()
	general := b.IndustryMethodologies(GeneralIndustry)
	require.NotEmpty(t, general)

	assert.Equal(t, general, b.IndustryMethodologies(""))
	assert.Equal(t, general, b.IndustryMethodologies("space-mining"))
	assert.NotEqual(t, general, b.IndustryMethodologies("finance"))
	assert.Equal(t, "SWOT Analysis", b.IndustryMethodologies("finance")[0])
}

func TestCompatibilityKeywords(t *testing.T) {
	b := Default()

	assert.Equal(t,
		[]string{"Technical", "Development", "Design", "Architecture", "Framework", "System"},
		b.CompatibilityKeywords("developer"))
	assert.Equal(t, DefaultKeywords, b.CompatibilityKeywords("technical-writer"))
	assert.Equal(t, DefaultKeywords, b.CompatibilityKeywords(""))
	assert.Equal(t, DefaultKeywords, b.CompatibilityKeywords("astronaut"))
}

func TestIsExcluded(t *testing.T) {
	b := Default()

	tests := []struct {
		name        string
		methodology string
		agentType   string
		industry    string
		want        bool
	}{
		{"not whitelisted", "NIST Cybersecurity Framework", "hr-specialist", "cybersecurity", true},
		{"whitelisted", "Identity and Access Management (IAM)", "hr-specialist", "cybersecurity", false},
		{"no policy for pair", "NIST Cybersecurity Framework", "developer", "cybersecurity", false},
		{"no policy for industry", "Lean Startup", "hr-specialist", "startup", false},
		{"not an industry methodology", "Made Up Framework", "hr-specialist", "cybersecurity", false},
		{"unknown archetype", "NIST Cybersecurity Framework", "astronaut", "cybersecurity", false},
		{"empty allow list excludes everything else", "DCF Valuation", "therapist", "finance", true},
		{"own specialty is exempt", "Evidence-Based Medicine", "therapist", "healthcare", false},
		{"own specialty is exempt without whitelist", "Clinical Practice Guidelines", "therapist", "healthcare", false},
		{"healthcare non-specialty excluded", "Risk Stratification", "therapist", "healthcare", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.IsExcluded(tt.methodology, tt.agentType, tt.industry))
		})
	}
}

func TestIsExcluded_OwnSpecialtyNeverExcluded(t *testing.T) {
	b := Default()
	for _, a := range b.Archetypes() {
		for _, ind := range b.Industries() {
			for _, m := range a.Methodologies {
				assert.False(t, b.IsExcluded(m, a.ID, ind.ID), "%s/%s/%s", a.ID, ind.ID, m)
			}
		}
	}
}

func TestLookups_ReturnCopies(t *testing.T) {
	b := Default()

	preferred := b.PreferredMethodologies("developer")
	preferred[0] = "mutated"
	assert.Equal(t, "Agile Framework", b.PreferredMethodologies("developer")[0])

	industry := b.IndustryMethodologies("finance")
	industry[0] = "mutated"
	assert.Equal(t, "SWOT Analysis", b.IndustryMethodologies("finance")[0])

	keywords := b.CompatibilityKeywords("astronaut")
	keywords[0] = "mutated"
	assert.Equal(t, "Framework", DefaultKeywords[0])
}

func TestSupplementaryLookups(t *testing.T) {
	b := Default()

	t.Run("recommendation styles fall back to general", func(t *testing.T) {
		general := b.RecommendationStyles(GeneralIndustry)
		require.NotEmpty(t, general)
		assert.Equal(t, general, b.RecommendationStyles("space-mining"))
		assert.Equal(t, "implementation-roadmap", b.RecommendationStyles("technology")[0].Value)
	})

	t.Run("pattern is zero for unknown archetype", func(t *testing.T) {
		assert.Equal(t, Pattern{}, b.RecommendationPattern("astronaut"))
		assert.NotEmpty(t, b.RecommendationPattern("consultant").Format)
	})

	t.Run("depth concept falls back to generic", func(t *testing.T) {
		assert.Equal(t, "Strategic Depth", b.DepthConcept("consultant").Concept)
		assert.Equal(t, "Analysis Depth", b.DepthConcept("astronaut").Concept)
		assert.Len(t, b.DepthConcept("").Options, 4)
	})

	t.Run("questions fall back to generic", func(t *testing.T) {
		q := b.Questions("therapist")
		assert.Equal(t, "What's the primary goal of your agent?", q.PrimaryGoal)
		assert.Contains(t, q.Tasks.Options, "Answer questions")

		consultant := b.Questions("consultant")
		assert.Contains(t, consultant.Tasks.Options, "Strategic planning and analysis")
	})
}

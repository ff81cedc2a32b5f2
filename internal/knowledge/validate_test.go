package knowledge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	doc := Document{
		Archetypes: []Archetype{
			{ID: "coach", Label: "Coach", Methodologies: []string{"GROW Model", "GROW Model"}},
			{ID: "nolabel"},
		},
		Industries: []Industry{
			{ID: "finance", Label: "Finance", Methodologies: []string{"SWOT Analysis"}},
		},
		Policies: Policies{
			"coach": {
				"finance": {Allow: []string{"SWOT Analysis", "DCF Valuation"}},
				"mars":    {Allow: nil},
			},
			"ghost": {"finance": {}},
		},
	}

	issues := New(doc).Validate()

	var messages []string
	for _, i := range issues {
		messages = append(messages, i.String())
	}

	assert.Equal(t, []string{
		`industries: fallback industry "general" is missing`,
		`archetype coach: duplicate methodology "GROW Model"`,
		`archetype nolabel: empty label`,
		`policy coach/finance: allowed methodology "DCF Valuation" is not listed for the industry`,
		`policy coach/mars: unknown industry "mars"`,
		`policy ghost/finance: unknown archetype "ghost"`,
	}, messages)
}

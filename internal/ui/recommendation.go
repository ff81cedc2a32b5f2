package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/LMKidston/meta-agent1/internal/recommend"
)

// RenderRecommendation formats a recommendation for the terminal. With
// explain set, each entry carries its provenance and the case is shown.
func RenderRecommendation(res recommend.Result, explain bool) string {
	var sb strings.Builder

	sel := res.Selection
	agent, industry := orNone(sel.AgentType), orNone(sel.Industry)
	sb.WriteString(StyleSectionTitle.Render("Recommended methodologies") + "\n")
	sb.WriteString(StyleSubtle.Render(fmt.Sprintf("archetype: %s  industry: %s", agent, industry)) + "\n")
	if explain {
		sb.WriteString(StyleSubtle.Render("case: "+string(res.Case)) + "\n")
	}
	sb.WriteString("\n")

	if len(res.Entries) == 0 {
		sb.WriteString(StyleWarning.Render("No methodologies recommended for this combination.") + "\n")
		return sb.String()
	}

	for i, e := range res.Entries {
		line := fmt.Sprintf("%2d. %s", i+1, sourceStyle(e.Source).Render(e.Methodology))
		if explain {
			line += "  " + StyleSelectDim.Render(e.Provenance())
		}
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func sourceStyle(src recommend.Source) lipgloss.Style {
	switch src {
	case recommend.SourceArchetype:
		return StyleFromArchetype
	case recommend.SourceIndustry:
		return StyleFromIndustry
	default:
		return StyleText
	}
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

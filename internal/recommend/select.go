package recommend

import "github.com/LMKidston/meta-agent1/internal/knowledge"

// SelectFrameworks runs the default engine over the embedded tables.
func SelectFrameworks(agentType, industry string) []string {
	return New(knowledge.Default()).SelectFrameworks(agentType, industry)
}

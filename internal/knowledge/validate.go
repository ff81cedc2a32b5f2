package knowledge

import (
	"fmt"
	"slices"
	"sort"
)

// Issue is a problem found in the knowledge tables. Issues never affect
// lookups; they exist so that overlay authors can find mistakes.
type Issue struct {
	Scope   string `json:"scope"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Scope, i.Message)
}

// Validate reports dangling references and duplicates. The result is
// ordered deterministically.
func (b *Base) Validate() []Issue {
	var issues []Issue
	add := func(scope, format string, args ...any) {
		issues = append(issues, Issue{Scope: scope, Message: fmt.Sprintf(format, args...)})
	}

	if _, ok := b.Industry(GeneralIndustry); !ok {
		add("industries", "fallback industry %q is missing", GeneralIndustry)
	}

	for _, a := range b.archetypes {
		scope := "archetype " + a.ID
		if a.ID == "" {
			add("archetypes", "entry with empty id (label %q)", a.Label)
		}
		if a.Label == "" {
			add(scope, "empty label")
		}
		for _, d := range duplicates(a.Methodologies) {
			add(scope, "duplicate methodology %q", d)
		}
		for _, d := range duplicates(a.Keywords) {
			add(scope, "duplicate keyword %q", d)
		}
	}

	for _, ind := range b.industries {
		scope := "industry " + ind.ID
		if ind.ID == "" {
			add("industries", "entry with empty id (label %q)", ind.Label)
		}
		if ind.Label == "" {
			add(scope, "empty label")
		}
		for _, d := range duplicates(ind.Methodologies) {
			add(scope, "duplicate methodology %q", d)
		}
	}

	agents := make([]string, 0, len(b.policies))
	for agent := range b.policies {
		agents = append(agents, agent)
	}
	sort.Strings(agents)
	for _, agent := range agents {
		industries := make([]string, 0, len(b.policies[agent]))
		for industry := range b.policies[agent] {
			industries = append(industries, industry)
		}
		sort.Strings(industries)

		for _, industry := range industries {
			scope := fmt.Sprintf("policy %s/%s", agent, industry)
			if !b.HasArchetype(agent) {
				add(scope, "unknown archetype %q", agent)
			}
			ind, ok := b.Industry(industry)
			if !ok {
				add(scope, "unknown industry %q", industry)
				continue
			}
			for _, m := range b.policies[agent][industry].Allow {
				if !slices.Contains(ind.Methodologies, m) {
					add(scope, "allowed methodology %q is not listed for the industry", m)
				}
			}
		}
	}
	return issues
}

func duplicates(list []string) []string {
	seen := make(map[string]bool, len(list))
	var dups []string
	for _, s := range list {
		if seen[s] && !slices.Contains(dups, s) {
			dups = append(dups, s)
		}
		seen[s] = true
	}
	return dups
}

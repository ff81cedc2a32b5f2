// Package recommend selects the methodologies offered for an agent archetype
// and industry. Archetype methodologies always come first; industry
// methodologies are added only when they keyword-match the archetype, ranked
// by match count and bounded by Limits.
package recommend

import (
	"slices"
	"sort"
	"strings"

	"github.com/LMKidston/meta-agent1/internal/knowledge"
)

// Source records where a recommended methodology came from.
type Source string

const (
	SourceArchetype Source = "archetype"
	SourceIndustry  Source = "industry"
	SourceDefault   Source = "default"
)

// Case is the branch of the selection policy a result was produced by.
type Case string

const (
	CaseNeither      Case = "neither"
	CaseIndustryOnly Case = "industry-only"
	CaseAgentOnly    Case = "agent-only"
	CaseBoth         Case = "both"
)

// Selection is the two optional user choices.
type Selection struct {
	AgentType string `json:"agentType"`
	Industry  string `json:"industry"`
}

// Entry is one recommended methodology with its provenance.
type Entry struct {
	Methodology     string   `json:"methodology"`
	Source          Source   `json:"source"`
	Matches         int      `json:"matches,omitempty"`
	MatchedKeywords []string `json:"matchedKeywords,omitempty"`
}

// Provenance is a short human-readable origin for the entry.
func (e Entry) Provenance() string {
	switch e.Source {
	case SourceArchetype:
		return "from archetype"
	case SourceIndustry:
		if len(e.MatchedKeywords) == 0 {
			return "from industry"
		}
		return "from industry (" + strings.Join(e.MatchedKeywords, ", ") + ")"
	default:
		return "general default"
	}
}

// Result is the ordered recommendation for a selection.
type Result struct {
	// Selection is the input after unknown values were cleared.
	Selection Selection `json:"selection"`
	Case      Case      `json:"case"`
	Entries   []Entry   `json:"entries"`
}

// Methodologies returns the entry names in order.
func (r Result) Methodologies() []string {
	out := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		out[i] = e.Methodology
	}
	return out
}

// Engine combines knowledge base lookups into a recommendation.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	base   *knowledge.Base
	limits Limits
}

// Option configures an Engine.
type Option func(*Engine)

// WithLimits overrides the default presentation bounds.
func WithLimits(l Limits) Option {
	return func(e *Engine) {
		e.limits = l.normalized()
	}
}

// New creates an engine over base. A nil base uses the embedded tables.
func New(base *knowledge.Base, opts ...Option) *Engine {
	if base == nil {
		base = knowledge.Default()
	}
	e := &Engine{base: base, limits: DefaultLimits()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Base returns the knowledge base the engine reads from.
func (e *Engine) Base() *knowledge.Base {
	return e.base
}

// Limits returns the bounds in effect.
func (e *Engine) Limits() Limits {
	return e.limits
}

// Normalize clears selection fields that name no known archetype or industry.
func (e *Engine) Normalize(sel Selection) Selection {
	if !e.base.HasArchetype(sel.AgentType) {
		sel.AgentType = ""
	}
	if !e.base.HasIndustry(sel.Industry) {
		sel.Industry = ""
	}
	return sel
}

// Recommend evaluates the selection policy. It never fails; an empty result
// is possible only when both fields are set and nothing qualifies.
func (e *Engine) Recommend(sel Selection) Result {
	sel = e.Normalize(sel)
	res := Result{Selection: sel}

	switch {
	case sel.AgentType == "" && sel.Industry == "":
		res.Case = CaseNeither
		res.Entries = entries(e.base.IndustryMethodologies(knowledge.GeneralIndustry), SourceDefault)
	case sel.AgentType == "":
		res.Case = CaseIndustryOnly
		res.Entries = entries(e.base.IndustryMethodologies(sel.Industry), SourceIndustry)
	case sel.Industry == "":
		res.Case = CaseAgentOnly
		res.Entries = entries(e.base.PreferredMethodologies(sel.AgentType), SourceArchetype)
	default:
		res.Case = CaseBoth
		res.Entries = e.combine(sel.AgentType, sel.Industry)
	}
	return res
}

// SelectFrameworks returns the ordered methodology list for the pair.
func (e *Engine) SelectFrameworks(agentType, industry string) []string {
	return e.Recommend(Selection{AgentType: agentType, Industry: industry}).Methodologies()
}

func (e *Engine) combine(agentType, industry string) []Entry {
	primary := e.base.PreferredMethodologies(agentType)
	keywords := e.base.CompatibilityKeywords(agentType)

	var candidates []Entry
	for _, m := range e.base.IndustryMethodologies(industry) {
		if slices.Contains(primary, m) || e.base.IsExcluded(m, agentType, industry) {
			continue
		}
		matched := MatchKeywords(m, keywords)
		if len(matched) == 0 {
			continue
		}
		candidates = append(candidates, Entry{
			Methodology:     m,
			Source:          SourceIndustry,
			Matches:         len(matched),
			MatchedKeywords: matched,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Matches > candidates[j].Matches
	})
	if len(candidates) > e.limits.MaxIndustryAdditions {
		candidates = candidates[:e.limits.MaxIndustryAdditions]
	}

	combined := append(entries(primary, SourceArchetype), candidates...)
	out := make([]Entry, 0, len(combined))
	seen := make(map[string]bool, len(combined))
	for _, c := range combined {
		if seen[c.Methodology] {
			continue
		}
		seen[c.Methodology] = true
		out = append(out, c)
		if len(out) == e.limits.MaxCombined {
			break
		}
	}
	return out
}

// MatchKeywords returns the keywords that occur, case-insensitively, as a
// substring of methodology, in keyword order.
func MatchKeywords(methodology string, keywords []string) []string {
	lower := strings.ToLower(methodology)
	var matched []string
	for _, k := range keywords {
		if k != "" && strings.Contains(lower, strings.ToLower(k)) {
			matched = append(matched, k)
		}
	}
	return matched
}

func entries(list []string, src Source) []Entry {
	out := make([]Entry, len(list))
	for i, m := range list {
		out[i] = Entry{Methodology: m, Source: src}
	}
	return out
}

package knowledge

import "slices"

// Base is an immutable, indexed view over a Document.
// All accessors return fresh slices; callers may modify them freely.
type Base struct {
	archetypes []Archetype
	industries []Industry
	policies   Policies

	archetypeIdx map[string]int
	industryIdx  map[string]int
}

// New indexes doc. Later entries with a duplicate id replace earlier ones in place.
func New(doc Document) *Base {
	b := &Base{
		archetypeIdx: make(map[string]int, len(doc.Archetypes)),
		industryIdx:  make(map[string]int, len(doc.Industries)),
		policies:     make(Policies, len(doc.Policies)),
	}
	for _, a := range doc.Archetypes {
		if i, ok := b.archetypeIdx[a.ID]; ok {
			b.archetypes[i] = a
			continue
		}
		b.archetypeIdx[a.ID] = len(b.archetypes)
		b.archetypes = append(b.archetypes, a)
	}
	for _, ind := range doc.Industries {
		if i, ok := b.industryIdx[ind.ID]; ok {
			b.industries[i] = ind
			continue
		}
		b.industryIdx[ind.ID] = len(b.industries)
		b.industries = append(b.industries, ind)
	}
	for agent, byIndustry := range doc.Policies {
		m := make(map[string]Policy, len(byIndustry))
		for industry, p := range byIndustry {
			m[industry] = Policy{Allow: slices.Clone(p.Allow)}
		}
		b.policies[agent] = m
	}
	return b
}

// Document returns a copy of the base in file form.
func (b *Base) Document() Document {
	doc := Document{
		Archetypes: slices.Clone(b.archetypes),
		Industries: slices.Clone(b.industries),
		Policies:   make(Policies, len(b.policies)),
	}
	for agent, byIndustry := range b.policies {
		m := make(map[string]Policy, len(byIndustry))
		for industry, p := range byIndustry {
			m[industry] = Policy{Allow: slices.Clone(p.Allow)}
		}
		doc.Policies[agent] = m
	}
	return doc
}

// Archetypes returns the archetype catalogue in display order.
func (b *Base) Archetypes() []Archetype {
	return slices.Clone(b.archetypes)
}

// Industries returns the industry catalogue in display order.
func (b *Base) Industries() []Industry {
	return slices.Clone(b.industries)
}

// Archetype looks up an archetype by id.
func (b *Base) Archetype(id string) (Archetype, bool) {
	i, ok := b.archetypeIdx[id]
	if !ok {
		return Archetype{}, false
	}
	return b.archetypes[i], true
}

// Industry looks up an industry by id.
func (b *Base) Industry(id string) (Industry, bool) {
	i, ok := b.industryIdx[id]
	if !ok {
		return Industry{}, false
	}
	return b.industries[i], true
}

// HasArchetype reports whether id names a known archetype.
func (b *Base) HasArchetype(id string) bool {
	_, ok := b.archetypeIdx[id]
	return ok
}

// HasIndustry reports whether id names a known industry.
func (b *Base) HasIndustry(id string) bool {
	_, ok := b.industryIdx[id]
	return ok
}

// PreferredMethodologies returns the archetype's own methodologies, or nil
// when the archetype is empty or unknown.
func (b *Base) PreferredMethodologies(agentType string) []string {
	a, ok := b.Archetype(agentType)
	if !ok {
		return nil
	}
	return slices.Clone(a.Methodologies)
}

// IndustryMethodologies returns the industry's methodologies, falling back to
// the general industry when industry is empty or unknown.
func (b *Base) IndustryMethodologies(industry string) []string {
	return slices.Clone(b.industryOrGeneral(industry).Methodologies)
}

// CompatibilityKeywords returns the archetype's scoring keywords, or
// DefaultKeywords when it has none.
func (b *Base) CompatibilityKeywords(agentType string) []string {
	if a, ok := b.Archetype(agentType); ok && len(a.Keywords) > 0 {
		return slices.Clone(a.Keywords)
	}
	return slices.Clone(DefaultKeywords)
}

// IsExcluded reports whether methodology must not be offered for the pair.
// Only pairs with an explicit policy exclude anything, and the archetype's
// own methodologies are always exempt.
func (b *Base) IsExcluded(methodology, agentType, industry string) bool {
	policy, ok := b.Policy(agentType, industry)
	if !ok {
		return false
	}
	ind, ok := b.Industry(industry)
	if !ok || !slices.Contains(ind.Methodologies, methodology) {
		return false
	}
	if a, ok := b.Archetype(agentType); ok && slices.Contains(a.Methodologies, methodology) {
		return false
	}
	return !slices.Contains(policy.Allow, methodology)
}

// Policy returns the explicit exclusion policy for the pair, if any.
func (b *Base) Policy(agentType, industry string) (Policy, bool) {
	p, ok := b.policies[agentType][industry]
	if !ok {
		return Policy{}, false
	}
	return Policy{Allow: slices.Clone(p.Allow)}, true
}

// RecommendationStyles returns the industry's recommendation styles, falling
// back to the general industry.
func (b *Base) RecommendationStyles(industry string) []Option {
	ind := b.industryOrGeneral(industry)
	if len(ind.RecommendationStyles) == 0 && ind.ID != GeneralIndustry {
		ind = b.industryOrGeneral(GeneralIndustry)
	}
	return slices.Clone(ind.RecommendationStyles)
}

// RecommendationPattern returns the archetype's recommendation pattern, or the
// zero value when the archetype is unknown.
func (b *Base) RecommendationPattern(agentType string) Pattern {
	a, ok := b.Archetype(agentType)
	if !ok {
		return Pattern{}
	}
	return Pattern{Format: a.Pattern.Format, Styles: slices.Clone(a.Pattern.Styles)}
}

// DepthConcept returns the archetype's depth concept or the generic one.
func (b *Base) DepthConcept(agentType string) DepthConcept {
	src := genericDepth
	if a, ok := b.Archetype(agentType); ok && a.Depth != nil {
		src = *a.Depth
	}
	src.Options = slices.Clone(src.Options)
	return src
}

// Questions returns the archetype's question wording or the generic set.
func (b *Base) Questions(agentType string) QuestionSet {
	src := genericQuestions
	if a, ok := b.Archetype(agentType); ok && a.Questions != nil {
		src = *a.Questions
	}
	src.Tasks.Options = slices.Clone(src.Tasks.Options)
	src.Audience.Options = slices.Clone(src.Audience.Options)
	return src
}

func (b *Base) industryOrGeneral(id string) Industry {
	if ind, ok := b.Industry(id); ok {
		return ind
	}
	ind, _ := b.Industry(GeneralIndustry)
	return ind
}

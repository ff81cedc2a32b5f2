package recommend

// Presentation bounds for the combined archetype + industry list.
const (
	DefaultMaxIndustryAdditions = 4
	DefaultMaxCombined          = 12
)

// Limits bounds the result when both an archetype and an industry are selected.
// Single-field selections are never truncated.
type Limits struct {
	MaxIndustryAdditions int `mapstructure:"maxIndustryAdditions" yaml:"maxIndustryAdditions" json:"maxIndustryAdditions" validate:"gte=0"`
	MaxCombined          int `mapstructure:"maxCombined" yaml:"maxCombined" json:"maxCombined" validate:"gte=1"`
}

// DefaultLimits returns the 4 / 12 bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxIndustryAdditions: DefaultMaxIndustryAdditions,
		MaxCombined:          DefaultMaxCombined,
	}
}

// normalized replaces out-of-range values with the defaults.
func (l Limits) normalized() Limits {
	if l.MaxIndustryAdditions < 0 {
		l.MaxIndustryAdditions = DefaultMaxIndustryAdditions
	}
	if l.MaxCombined <= 0 {
		l.MaxCombined = DefaultMaxCombined
	}
	return l
}

package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidAnswers wraps every answers validation failure.
var ErrInvalidAnswers = errors.New("invalid answers")

var validate = validator.New()

// Validate checks field rules and that any selected archetype or industry
// exists in base.
func (a Answers) Validate(base *knowledge.Base) error {
	var problems []string

	if err := validate.Struct(a); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidAnswers, err)
		}
		for _, e := range verrs {
			problems = append(problems, describe(e))
		}
	}

	if a.AgentType != "" && !base.HasArchetype(a.AgentType) {
		problems = append(problems, fmt.Sprintf("agentType: unknown archetype %q", a.AgentType))
	}
	if a.Industry != "" && !base.HasIndustry(a.Industry) {
		problems = append(problems, fmt.Sprintf("industry: unknown industry %q", a.Industry))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidAnswers, strings.Join(problems, "; "))
	}
	return nil
}

func describe(e validator.FieldError) string {
	field := lowerFirst(e.Field())
	switch e.Tag() {
	case "oneof":
		return fmt.Sprintf("%s: %q is not one of [%s]", field, e.Value(), e.Param())
	case "min", "max":
		return fmt.Sprintf("%s: %v must be between 1 and 10", field, e.Value())
	case "required":
		return fmt.Sprintf("%s: empty entry", e.Namespace())
	default:
		return fmt.Sprintf("%s: failed rule '%s'", field, e.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

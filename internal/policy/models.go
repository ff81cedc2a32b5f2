// Package policy evaluates organisation guardrails, written in Rego, against a
// proposed agent configuration before its prompt is generated.
package policy

import (
	"time"

	"github.com/LMKidston/meta-agent1/internal/form"
)

// PolicyDecision is the outcome of evaluating all loaded policies against an input.
type PolicyDecision struct {
	DecisionID  string    `json:"decisionId"`
	PolicyPath  string    `json:"policyPath"` // Rego package path, e.g. "metaagent.policy"
	Result      string    `json:"result"`     // "allow" or "deny"
	Violations  []string  `json:"violations,omitempty"`
	Warnings    []string  `json:"warnings,omitempty"`
	Input       any       `json:"input"`
	EvaluatedAt time.Time `json:"evaluatedAt"`
}

// PolicyResult constants.
const (
	PolicyResultAllow = "allow"
	PolicyResultDeny  = "deny"
)

// IsAllowed returns true if the policy decision was "allow".
func (d *PolicyDecision) IsAllowed() bool {
	return d.Result == PolicyResultAllow
}

// IsDenied returns true if the policy decision was "deny".
func (d *PolicyDecision) IsDenied() bool {
	return d.Result == PolicyResultDeny
}

// PolicyInput is what Rego policies receive as `input`.
type PolicyInput struct {
	Selection  SelectionInput `json:"selection"`
	Frameworks []string       `json:"frameworks"`
	Answers    form.Answers   `json:"answers"`
}

// SelectionInput carries the archetype and industry choice.
type SelectionInput struct {
	AgentType string `json:"agent_type"`
	Industry  string `json:"industry"`
}

// NewInput builds the policy input for a set of answers and the frameworks
// that will appear in the prompt.
func NewInput(a form.Answers, frameworks []string) *PolicyInput {
	if frameworks == nil {
		frameworks = []string{}
	}
	return &PolicyInput{
		Selection:  SelectionInput{AgentType: a.AgentType, Industry: a.Industry},
		Frameworks: frameworks,
		Answers:    a,
	}
}

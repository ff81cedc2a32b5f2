package policy

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/open-policy-agent/opa/v1/rego"
	"github.com/spf13/afero"
)

// DefaultPolicyPackage is the Rego package queried for deny and warn rules.
const DefaultPolicyPackage = "metaagent.policy"

// ErrPolicyDenied is returned by Enforce when at least one deny rule fired.
var ErrPolicyDenied = errors.New("denied by policy")

// Engine wraps OPA for policy evaluation. All evaluation is local.
type Engine struct {
	policies      []*PolicyFile
	policyPackage string
}

// EngineConfig holds configuration for creating an Engine.
type EngineConfig struct {
	// PoliciesDir is the directory containing .rego policy files.
	PoliciesDir string

	// PolicyPackage is the Rego package to query.
	// If empty, defaults to "metaagent.policy".
	PolicyPackage string

	// Fs is the filesystem to load policies from. If nil, uses the OS filesystem.
	Fs afero.Fs
}

// NewEngine loads policies from the configured directory.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.PoliciesDir == "" {
		cfg.PoliciesDir = DefaultPoliciesDir
	}
	if cfg.PolicyPackage == "" {
		cfg.PolicyPackage = DefaultPolicyPackage
	}

	policies, err := NewLoader(cfg.Fs, cfg.PoliciesDir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("load policies: %w", err)
	}

	return &Engine{
		policies:      policies,
		policyPackage: cfg.PolicyPackage,
	}, nil
}

// NewEngineWithPolicies creates an engine with explicitly provided policies.
func NewEngineWithPolicies(policies []*PolicyFile) *Engine {
	return &Engine{
		policies:      policies,
		policyPackage: DefaultPolicyPackage,
	}
}

// PolicyCount returns the number of loaded policies.
func (e *Engine) PolicyCount() int {
	return len(e.policies)
}

// PolicyNames returns the names of all loaded policies.
func (e *Engine) PolicyNames() []string {
	names := make([]string, len(e.policies))
	for i, p := range e.policies {
		names[i] = p.Name
	}
	return names
}

// Evaluate runs all loaded policies against input, which is available as
// `input` in Rego:
//
//	{
//	  "selection":  { "agent_type": "...", "industry": "..." },
//	  "frameworks": [ "..." ],
//	  "answers":    { "tone": "...", "proactiveness": 5, ... }
//	}
//
// Strings produced by "deny" rules become violations and deny the decision.
// Strings produced by "warn" rules are reported but do not affect the result.
func (e *Engine) Evaluate(ctx context.Context, input any) (*PolicyDecision, error) {
	decision := &PolicyDecision{
		DecisionID:  uuid.New().String(),
		PolicyPath:  e.policyPackage,
		Result:      PolicyResultAllow,
		Input:       input,
		EvaluatedAt: time.Now().UTC(),
	}
	if len(e.policies) == 0 {
		return decision, nil
	}

	modules := make([]func(*rego.Rego), len(e.policies))
	for i, p := range e.policies {
		modules[i] = rego.Module(p.Path, p.Content)
	}

	violations, err := e.querySet(ctx, input, "deny", modules)
	if err != nil {
		return nil, fmt.Errorf("query deny rules: %w", err)
	}
	warnings, err := e.querySet(ctx, input, "warn", modules)
	if err != nil {
		return nil, fmt.Errorf("query warn rules: %w", err)
	}

	decision.Warnings = warnings
	if len(violations) > 0 {
		decision.Result = PolicyResultDeny
		decision.Violations = violations
	}
	return decision, nil
}

// Enforce evaluates input and returns an error wrapping ErrPolicyDenied when
// the decision is deny. The decision is returned in both cases.
func (e *Engine) Enforce(ctx context.Context, input any) (*PolicyDecision, error) {
	decision, err := e.Evaluate(ctx, input)
	if err != nil {
		return nil, err
	}
	if decision.IsDenied() {
		return decision, fmt.Errorf("%w: %d violation(s)", ErrPolicyDenied, len(decision.Violations))
	}
	return decision, nil
}

// querySet queries a set-generating rule and returns its string members,
// sorted. An undefined rule yields no results.
func (e *Engine) querySet(ctx context.Context, input any, ruleName string, modules []func(*rego.Rego)) ([]string, error) {
	opts := []func(*rego.Rego){
		rego.Query(fmt.Sprintf("data.%s.%s", e.policyPackage, ruleName)),
		rego.Input(input),
	}
	opts = append(opts, modules...)

	rs, err := rego.New(opts...).Eval(ctx)
	if err != nil {
		return nil, err
	}

	var results []string
	for _, result := range rs {
		for _, expr := range result.Expressions {
			set, ok := expr.Value.([]any)
			if !ok {
				continue
			}
			for _, item := range set {
				if s, ok := item.(string); ok {
					results = append(results, s)
				}
			}
		}
	}
	sort.Strings(results)
	return results, nil
}

// AddPolicy adds a policy to the engine at runtime.
func (e *Engine) AddPolicy(name, content string) {
	e.policies = append(e.policies, &PolicyFile{
		Name:    name,
		Path:    name + ".rego",
		Content: content,
	})
}

// ValidatePolicy checks if a policy has valid Rego syntax.
func ValidatePolicy(content string) error {
	_, err := rego.New(
		rego.Query("data"),
		rego.Module("validation.rego", content),
	).PrepareForEval(context.Background())
	if err != nil {
		return fmt.Errorf("invalid policy: %w", err)
	}
	return nil
}

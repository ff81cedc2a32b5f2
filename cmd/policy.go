/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/form"
	"github.com/LMKidston/meta-agent1/internal/policy"
	"github.com/LMKidston/meta-agent1/internal/ui"
	"github.com/LMKidston/meta-agent1/types"
)

// DefaultRegoPolicy is the default policy file content.
const DefaultRegoPolicy = `# metaagent default policy
# Guardrails evaluated before a prompt is generated.
# Learn more: https://www.openpolicyagent.org/docs/latest/policy-language/

package metaagent.policy

import rego.v1

regulated := {"healthcare", "finance", "legal", "insurance", "government"}

# Agents serving regulated industries must ask before assuming.
deny contains msg if {
    input.selection.industry in regulated
    input.answers.askQuestions == false
    msg := sprintf("agents for the %s industry must ask clarifying questions", [input.selection.industry])
}

warn contains msg if {
    count(input.frameworks) == 0
    msg := "no methodologies selected; the prompt will have no analysis framework section"
}

warn contains msg if {
    input.selection.industry in regulated
    input.answers.creativityLevel > 7
    msg := sprintf("creativity level %d is high for the %s industry", [input.answers.creativityLevel, input.selection.industry])
}
`

// policyCmd represents the policy parent command
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Manage OPA policies for prompt guardrails",
	Long: `Manage Open Policy Agent (OPA) policies that guard prompt generation.

Policies are written in Rego and stored in .metaagent/policies/*.rego, in
package metaagent.policy. "deny" rules block 'metaagent generate'; "warn"
rules are printed but do not block.

Input available to policies:
  input.selection.agent_type, input.selection.industry
  input.frameworks        methodologies that will appear in the prompt
  input.answers           the answers file

Examples:
  metaagent policy init
  metaagent policy list
  metaagent policy validate .metaagent/policies/default.rego
  metaagent policy check --answers answers.yaml`,
}

var policyInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize default policy file",
	RunE:  runPolicyInit,
}

var policyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List loaded policies",
	RunE:  runPolicyList,
}

var policyValidateCmd = &cobra.Command{
	Use:   "validate <file>...",
	Short: "Check Rego syntax of policy files",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPolicyValidate,
}

var policyCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Evaluate an answers file against policies",
	RunE:  runPolicyCheck,
}

var (
	policyInitForce          bool
	policyCheckAnswers       string
	policyCheckAutoFramework bool
)

func init() {
	rootCmd.AddCommand(policyCmd)

	policyCmd.AddCommand(policyInitCmd)
	policyCmd.AddCommand(policyListCmd)
	policyCmd.AddCommand(policyValidateCmd)
	policyCmd.AddCommand(policyCheckCmd)

	policyInitCmd.Flags().BoolVar(&policyInitForce, "force", false, "overwrite an existing default policy")
	policyCheckCmd.Flags().StringVar(&policyCheckAnswers, "answers", "", "answers file (YAML or JSON)")
	policyCheckCmd.Flags().BoolVar(&policyCheckAutoFramework, "auto-frameworks", false, "use recommended methodologies when the answers list none")
	_ = policyCheckCmd.MarkFlagRequired("answers")
}

// writeDefaultPolicy writes default.rego into dir unless it exists and force is unset.
func writeDefaultPolicy(dir string, force bool) (string, bool, error) {
	path := filepath.Join(dir, "default.rego")
	exists, err := afero.Exists(appFs, path)
	if err != nil {
		return path, false, err
	}
	if exists && !force {
		return path, false, nil
	}
	if err := appFs.MkdirAll(dir, 0o755); err != nil {
		return path, false, fmt.Errorf("create policies directory: %w", err)
	}
	if err := afero.WriteFile(appFs, path, []byte(DefaultRegoPolicy), 0o644); err != nil {
		return path, false, fmt.Errorf("write default policy: %w", err)
	}
	return path, true, nil
}

func runPolicyInit(cmd *cobra.Command, args []string) error {
	path, created, err := writeDefaultPolicy(config.GetPoliciesDir(), policyInitForce)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd, map[string]any{"path": path, "created": created})
	}
	if !created {
		cmd.Printf("Policy file already exists: %s\n", path)
		cmd.Println("Use --force to overwrite.")
		return nil
	}
	cmd.Printf("✓ Created default policy: %s\n", path)
	return nil
}

func runPolicyList(cmd *cobra.Command, args []string) error {
	dir := config.GetPoliciesDir()
	policies, err := policy.NewLoader(appFs, dir).LoadAll()
	if err != nil {
		return fmt.Errorf("load policies: %w", err)
	}

	if isJSON() {
		return printJSON(cmd, map[string]any{
			"policies_dir": dir,
			"count":        len(policies),
			"policies":     policies,
		})
	}

	if len(policies) == 0 {
		cmd.Println("No policies loaded.")
		cmd.Println("Run 'metaagent policy init' to create the default policy.")
		return nil
	}

	cmd.Printf("Policies directory: %s\n", dir)
	cmd.Printf("Loaded %d policy file(s):\n\n", len(policies))
	for _, p := range policies {
		cmd.Printf("  • %s (%s)\n", p.Name, p.Path)
	}
	return nil
}

func runPolicyValidate(cmd *cobra.Command, args []string) error {
	loader := policy.NewLoader(appFs, config.GetPoliciesDir())

	failed := 0
	results := make(map[string]string, len(args))
	for _, path := range args {
		p, err := loader.LoadFile(path)
		if err == nil {
			err = policy.ValidatePolicy(p.Content)
		}
		if err != nil {
			failed++
			results[path] = err.Error()
			if !isJSON() {
				cmd.Printf("%s %s: %v\n", ui.StyleError.Render("✗"), path, err)
			}
			continue
		}
		results[path] = "ok"
		if !isJSON() && !isQuiet() {
			cmd.Printf("%s %s\n", ui.StyleSuccess.Render("✓"), path)
		}
	}

	if isJSON() {
		if err := printJSON(cmd, results); err != nil {
			return err
		}
	}
	if failed > 0 {
		return types.NewCLIError(types.CodeInvalidInput, fmt.Sprintf("%d of %d policy file(s) invalid", failed, len(args)), nil)
	}
	return nil
}

func runPolicyCheck(cmd *cobra.Command, args []string) error {
	a, err := form.Load(appFs, policyCheckAnswers)
	if err != nil {
		return types.NewCLIError(types.CodeInvalidInput, "cannot read answers file "+policyCheckAnswers, err)
	}

	if policyCheckAutoFramework && len(a.DomainFrameworks) == 0 {
		base, err := loadBase()
		if err != nil {
			return err
		}
		a.DomainFrameworks = newEngine(base).SelectFrameworks(a.AgentType, a.Industry)
	}

	engine, err := newPolicyEngine()
	if err != nil {
		return err
	}
	decision, err := engine.Enforce(cmd.Context(), policy.NewInput(a, a.DomainFrameworks))
	denied := errors.Is(err, policy.ErrPolicyDenied)
	if err != nil && !denied {
		return fmt.Errorf("evaluate policies: %w", err)
	}

	if isJSON() {
		if err := printJSON(cmd, decision); err != nil {
			return err
		}
	} else {
		printDecision(cmd, engine.PolicyCount(), decision)
	}

	if denied {
		return types.NewCLIError(types.CodePolicyDenied, fmt.Sprintf("%d policy violation(s)", len(decision.Violations)), err)
	}
	return nil
}

func printDecision(cmd *cobra.Command, policyCount int, d *policy.PolicyDecision) {
	if policyCount == 0 {
		cmd.Println("No policies loaded; nothing to check.")
		return
	}
	for _, v := range d.Violations {
		cmd.Println(ui.StyleError.Render("✗ " + v))
	}
	for _, w := range d.Warnings {
		cmd.Println(ui.StyleWarning.Render("! " + w))
	}
	if d.IsAllowed() {
		cmd.Printf("%s allowed by %d policy file(s)\n", ui.StyleSuccess.Render("✓"), policyCount)
	}
}

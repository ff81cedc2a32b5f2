/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/form"
	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/LMKidston/meta-agent1/internal/logger"
	"github.com/LMKidston/meta-agent1/internal/policy"
	"github.com/LMKidston/meta-agent1/internal/ui"
	"github.com/LMKidston/meta-agent1/prompts"
	"github.com/LMKidston/meta-agent1/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render an agent prompt from an answers file",
	Long: `Render the system prompt for an agent described by an answers file.

The answers file is YAML, or JSON when it ends in .json. Answers are
validated, checked against the .rego policies in the policies directory and
rendered with the agent prompt template (or its override in the templates
directory).

Examples:
  metaagent generate --answers answers.yaml
  metaagent generate --answers answers.yaml --auto-frameworks --out prompt.md
  metaagent generate --answers answers.json --format compact`,
	RunE: runGenerate,
}

var (
	generateAnswers        string
	generateOut            string
	generateAutoFrameworks bool
	generateFormat         string
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&generateAnswers, "answers", "", "answers file (YAML or JSON)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "write the prompt to this file instead of stdout")
	generateCmd.Flags().BoolVar(&generateAutoFrameworks, "auto-frameworks", false, "use recommended methodologies when the answers list none")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "prompt template: agent or compact (default from templates.default)")
	_ = generateCmd.MarkFlagRequired("answers")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger.SetLastInput(generateAnswers)

	a, err := form.Load(appFs, generateAnswers)
	if err != nil {
		return types.NewCLIError(types.CodeInvalidInput, "cannot read answers file "+generateAnswers, err)
	}

	base, err := loadBase()
	if err != nil {
		return err
	}

	res, err := buildPrompt(cmd.Context(), buildRequest{
		Answers:        a,
		Base:           base,
		AutoFrameworks: generateAutoFrameworks,
		Format:         generateFormat,
	})
	if err != nil {
		return err
	}
	return emitPrompt(cmd, res, generateOut)
}

// buildRequest is one run of the validate, recommend, police, render pipeline.
type buildRequest struct {
	Answers        form.Answers
	Base           *knowledge.Base
	AutoFrameworks bool
	Format         string
}

// buildResult is the rendered prompt plus what was decided on the way.
type buildResult struct {
	Prompt   string                 `json:"prompt"`
	Answers  form.Answers           `json:"answers"`
	Decision *policy.PolicyDecision `json:"decision,omitempty"`
}

func buildPrompt(ctx context.Context, req buildRequest) (*buildResult, error) {
	a := req.Answers
	logger.SetSelection(a.AgentType, a.Industry)

	if err := a.Validate(req.Base); err != nil {
		return nil, types.NewCLIError(types.CodeInvalidInput, strings.TrimPrefix(err.Error(), form.ErrInvalidAnswers.Error()+": "), err)
	}

	if req.AutoFrameworks && len(a.DomainFrameworks) == 0 {
		a.DomainFrameworks = newEngine(req.Base).SelectFrameworks(a.AgentType, a.Industry)
		slog.Debug("using recommended methodologies", "count", len(a.DomainFrameworks))
	}

	result := &buildResult{Answers: a}

	if GetConfig().Policy.Enabled {
		engine, err := newPolicyEngine()
		if err != nil {
			return nil, err
		}
		decision, err := engine.Enforce(ctx, policy.NewInput(a, a.DomainFrameworks))
		if errors.Is(err, policy.ErrPolicyDenied) {
			return nil, types.NewCLIError(types.CodePolicyDenied,
				"policy denied: "+strings.Join(decision.Violations, "; "), err)
		}
		if err != nil {
			return nil, fmt.Errorf("evaluate policies: %w", err)
		}
		result.Decision = decision
	}

	key, err := promptKey(req.Format)
	if err != nil {
		return nil, err
	}
	text, err := prompts.NewRenderer(appFs, config.GetTemplatesDir()).Render(key, a, req.Base)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}
	result.Prompt = text
	return result, nil
}

func promptKey(format string) (prompts.PromptKey, error) {
	if format == "" {
		format = GetConfig().Templates.Default
	}
	for _, k := range prompts.Keys() {
		if string(k) == format {
			return k, nil
		}
	}
	return "", types.NewCLIError(types.CodeUsage, fmt.Sprintf("unknown format %q", format), prompts.ErrUnknownTemplate)
}

// emitPrompt prints policy warnings and writes the prompt to out or stdout.
func emitPrompt(cmd *cobra.Command, res *buildResult, out string) error {
	if res.Decision != nil && !isJSON() {
		for _, w := range res.Decision.Warnings {
			cmd.PrintErrln(ui.StyleWarning.Render("warning: " + w))
		}
	}

	if out == "" {
		if isJSON() {
			return printJSON(cmd, res)
		}
		cmd.Print(res.Prompt)
		return nil
	}

	if dir := filepath.Dir(out); dir != "." {
		if err := appFs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := afero.WriteFile(appFs, out, []byte(res.Prompt), 0o644); err != nil {
		return fmt.Errorf("write prompt: %w", err)
	}

	if isJSON() {
		return printJSON(cmd, map[string]any{"written": out, "decision": res.Decision})
	}
	if !isQuiet() {
		cmd.Printf("✓ Prompt written to %s\n", out)
	}
	return nil
}

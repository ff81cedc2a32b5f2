/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/LMKidston/meta-agent1/internal/policy"
	"github.com/LMKidston/meta-agent1/internal/recommend"
	"github.com/LMKidston/meta-agent1/types"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func printJSON(cmd *cobra.Command, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
	return err
}

// loadBase returns the embedded knowledge base merged with the configured overlay.
func loadBase() (*knowledge.Base, error) {
	overlay := config.GetKnowledgeOverlay()
	base, err := knowledge.Load(appFs, overlay)
	if err != nil {
		return nil, types.NewCLIError(types.CodeInvalidInput, "cannot load knowledge overlay "+overlay, err)
	}
	if overlay != "" {
		slog.Debug("knowledge overlay loaded", "path", overlay)
	}
	return base, nil
}

// newEngine builds a recommendation engine with the configured limits.
func newEngine(base *knowledge.Base) *recommend.Engine {
	return recommend.New(base, recommend.WithLimits(GetConfig().Recommend))
}

// newPolicyEngine loads the configured .rego policies.
func newPolicyEngine() (*policy.Engine, error) {
	cfg := GetConfig().Policy
	engine, err := policy.NewEngine(policy.EngineConfig{
		PoliciesDir:   config.GetPoliciesDir(),
		PolicyPackage: cfg.Package,
		Fs:            appFs,
	})
	if err != nil {
		return nil, fmt.Errorf("policy engine: %w", err)
	}
	return engine, nil
}

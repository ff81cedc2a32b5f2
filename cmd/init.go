/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .metaagent project directory",
	Long: `Create .metaagent/ in the current directory with a config file, the
default policy and an empty templates directory.

Drop agent_prompt.tmpl or compact_prompt.tmpl into .metaagent/templates to
override the built-in prompt templates.`,
	RunE: runInit,
}

var initForce bool

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
}

func runInit(cmd *cobra.Command, args []string) error {
	cfgPath, err := config.WriteProjectConfig(appFs, ".", *GetConfig(), initForce)
	switch {
	case errors.Is(err, config.ErrConfigExists):
		cmd.Printf("Config already exists: %s (use --force to overwrite)\n", cfgPath)
	case err != nil:
		return err
	default:
		cmd.Printf("✓ Created %s\n", cfgPath)
	}

	config.SetProjectRoot(".")
	policyPath, created, err := writeDefaultPolicy(config.GetPoliciesDir(), initForce)
	if err != nil {
		return err
	}
	if created {
		cmd.Printf("✓ Created %s\n", policyPath)
	}
	return nil
}

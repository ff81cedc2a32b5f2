/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/form"
	"github.com/LMKidston/meta-agent1/internal/ui"
	"github.com/LMKidston/meta-agent1/types"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an agent prompt interactively",
	Long: `Walk through the questionnaire in the terminal and render the prompt.

Steps: archetype, industry, primary goal, tasks, tone, formality, response
length and methodologies. The methodology step offers the recommendation
for the archetype and industry you picked.

Examples:
  metaagent create
  metaagent create --out prompt.md --save-answers answers.yaml`,
	RunE: runCreate,
}

var (
	createOut         string
	createSaveAnswers string
)

func init() {
	rootCmd.AddCommand(createCmd)

	createCmd.Flags().StringVarP(&createOut, "out", "o", "", "write the prompt to this file instead of stdout")
	createCmd.Flags().StringVar(&createSaveAnswers, "save-answers", "", "also save the answers for later 'metaagent generate' runs")
}

func runCreate(cmd *cobra.Command, args []string) error {
	if !ui.IsInteractive() {
		return types.NewCLIError(types.CodeNotAvailable,
			"create needs an interactive terminal; use 'metaagent generate --answers FILE' instead", nil)
	}

	base, err := loadBase()
	if err != nil {
		return err
	}

	a, err := ui.RunWizard(newEngine(base))
	if errors.Is(err, ui.ErrWizardCancelled) {
		cmd.Println("Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	if createSaveAnswers != "" {
		if err := form.Save(appFs, createSaveAnswers, a); err != nil {
			return err
		}
		if !isQuiet() {
			cmd.Printf("✓ Answers saved to %s\n", createSaveAnswers)
		}
	}

	res, err := buildPrompt(cmd.Context(), buildRequest{Answers: a, Base: base})
	if err != nil {
		return err
	}
	return emitPrompt(cmd, res, createOut)
}

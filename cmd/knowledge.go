/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/LMKidston/meta-agent1/internal/ui"
	"github.com/LMKidston/meta-agent1/types"
)

var knowledgeCmd = &cobra.Command{
	Use:     "knowledge",
	Aliases: []string{"kb"},
	Short:   "Inspect the archetype and industry knowledge base",
	Long: `Inspect the knowledge base: the built-in archetypes, industries and
methodology whitelists, merged with the overlay file set by
knowledge.overlay.

Overlay entries replace built-in entries with the same id; new ids are
appended.`,
}

var knowledgeValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Report dangling references and duplicates",
	RunE:  runKnowledgeValidate,
}

var knowledgeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the merged knowledge base",
	Long: `Print the merged knowledge base as YAML (or JSON with --format json).

The output is a valid overlay file, so it can be used as a starting point
for your own.`,
	RunE: runKnowledgeExport,
}

var (
	knowledgeExportFormat string
	knowledgeExportOut    string
)

func init() {
	rootCmd.AddCommand(knowledgeCmd)
	knowledgeCmd.AddCommand(knowledgeValidateCmd)
	knowledgeCmd.AddCommand(knowledgeExportCmd)

	knowledgeExportCmd.Flags().StringVarP(&knowledgeExportFormat, "format", "f", "yaml", "output format: yaml or json")
	knowledgeExportCmd.Flags().StringVarP(&knowledgeExportOut, "out", "o", "", "write to this file instead of stdout")
}

func runKnowledgeValidate(cmd *cobra.Command, args []string) error {
	base, err := loadBase()
	if err != nil {
		return err
	}
	issues := base.Validate()

	if isJSON() {
		if err := printJSON(cmd, issues); err != nil {
			return err
		}
	} else if len(issues) == 0 {
		cmd.Printf("%s knowledge base is consistent (%d archetypes, %d industries)\n",
			ui.StyleSuccess.Render("✓"), len(base.Archetypes()), len(base.Industries()))
	} else {
		for _, issue := range issues {
			cmd.Println(ui.StyleWarning.Render("! ") + issue.String())
		}
	}

	if len(issues) > 0 {
		return types.NewCLIError(types.CodeInvalidInput, fmt.Sprintf("%d knowledge base issue(s)", len(issues)), nil)
	}
	return nil
}

func runKnowledgeExport(cmd *cobra.Command, args []string) error {
	base, err := loadBase()
	if err != nil {
		return err
	}
	doc := base.Document()

	var data []byte
	switch strings.ToLower(knowledgeExportFormat) {
	case "yaml", "yml":
		data, err = yaml.Marshal(doc)
	case "json":
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	default:
		return types.NewCLIError(types.CodeUsage, fmt.Sprintf("unknown format %q (want yaml or json)", knowledgeExportFormat), nil)
	}
	if err != nil {
		return fmt.Errorf("encode knowledge base: %w", err)
	}

	if knowledgeExportOut == "" {
		cmd.Print(string(data))
		return nil
	}
	if err := afero.WriteFile(appFs, knowledgeExportOut, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", knowledgeExportOut, err)
	}
	if !isQuiet() {
		cmd.Printf("✓ Knowledge base written to %s\n", knowledgeExportOut)
	}
	return nil
}

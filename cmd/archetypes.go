/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/ui"
)

var archetypesCmd = &cobra.Command{
	Use:     "archetypes",
	Aliases: []string{"agents"},
	Short:   "List agent archetypes",
	Long: `List the agent archetypes metaagent knows about, in display order.

Use an archetype id with --agent in 'metaagent frameworks' or as agentType
in an answers file.`,
	RunE: runArchetypes,
}

func init() {
	rootCmd.AddCommand(archetypesCmd)
}

func runArchetypes(cmd *cobra.Command, args []string) error {
	base, err := loadBase()
	if err != nil {
		return err
	}
	archetypes := base.Archetypes()

	if isJSON() {
		return printJSON(cmd, archetypes)
	}

	if !isQuiet() {
		cmd.Print(ui.RenderPageHeader("Agent archetypes", strconv.Itoa(len(archetypes))+" archetypes"))
	}
	table := &ui.Table{
		Headers:  []string{"ID", "Label", "Methodologies", "Description"},
		MaxWidth: 48,
	}
	for _, a := range archetypes {
		table.Rows = append(table.Rows, []string{
			a.ID, a.Label, strconv.Itoa(len(a.Methodologies)), a.Description,
		})
	}
	cmd.Print(table.Render())
	return nil
}

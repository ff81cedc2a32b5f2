/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/ui"
)

var industriesCmd = &cobra.Command{
	Use:   "industries",
	Short: "List industries",
	Long: `List the industries metaagent knows about, in display order.

"general" is the fallback used when an industry has no methodologies of
its own.`,
	RunE: runIndustries,
}

func init() {
	rootCmd.AddCommand(industriesCmd)
}

func runIndustries(cmd *cobra.Command, args []string) error {
	base, err := loadBase()
	if err != nil {
		return err
	}
	industries := base.Industries()

	if isJSON() {
		return printJSON(cmd, industries)
	}

	if !isQuiet() {
		cmd.Print(ui.RenderPageHeader("Industries", strconv.Itoa(len(industries))+" industries, general is the fallback"))
	}
	table := &ui.Table{
		Headers:  []string{"ID", "Label", "Methodologies", "Styles"},
		MaxWidth: 48,
	}
	for _, ind := range industries {
		styles := make([]string, len(ind.RecommendationStyles))
		for i, s := range ind.RecommendationStyles {
			styles[i] = s.Value
		}
		table.Rows = append(table.Rows, []string{
			ind.ID, ind.Label, strconv.Itoa(len(ind.Methodologies)), strings.Join(styles, ", "),
		})
	}
	cmd.Print(table.Render())
	return nil
}

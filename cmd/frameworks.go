/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/knowledge"
	"github.com/LMKidston/meta-agent1/internal/recommend"
	"github.com/LMKidston/meta-agent1/internal/ui"
	"github.com/LMKidston/meta-agent1/types"
)

var frameworksCmd = &cobra.Command{
	Use:     "frameworks",
	Aliases: []string{"recommend"},
	Short:   "Recommend methodologies for an archetype and industry",
	Long: `Recommend the methodologies an agent should work with.

Both selections are optional:
  neither          general-purpose defaults
  --industry only  the industry's methodologies
  --agent only     the archetype's preferred methodologies
  both             archetype methodologies first, then up to 4 industry
                   methodologies that match the archetype's keywords

Unknown ids are treated as not selected.

Examples:
  metaagent frameworks --agent developer --industry finance
  metaagent frameworks --agent therapist --industry finance --explain
  metaagent frameworks --agent developer --json
  metaagent frameworks --agent developer --industry finance --watch`,
	RunE: runFrameworks,
}

var (
	frameworksAgent    string
	frameworksIndustry string
	frameworksExplain  bool
	frameworksWatch    bool
)

func init() {
	rootCmd.AddCommand(frameworksCmd)

	frameworksCmd.Flags().StringVarP(&frameworksAgent, "agent", "a", "", "agent archetype id")
	frameworksCmd.Flags().StringVarP(&frameworksIndustry, "industry", "i", "", "industry id")
	frameworksCmd.Flags().BoolVar(&frameworksExplain, "explain", false, "show where each methodology came from")
	frameworksCmd.Flags().BoolVarP(&frameworksWatch, "watch", "w", false, "re-run when the knowledge overlay changes")
}

func runFrameworks(cmd *cobra.Command, args []string) error {
	base, err := loadBase()
	if err != nil {
		return err
	}

	sel := recommend.Selection{AgentType: frameworksAgent, Industry: frameworksIndustry}
	printRecommendation(cmd, newEngine(base), sel)

	if !frameworksWatch {
		return nil
	}

	overlay := config.GetKnowledgeOverlay()
	if overlay == "" {
		return types.NewCLIError(types.CodeUsage, "--watch needs a knowledge overlay (set knowledge.overlay)", nil)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	if !isQuiet() && !isJSON() {
		cmd.PrintErrf("Watching %s (Ctrl+C to stop)\n", overlay)
	}
	return knowledge.Watch(ctx, appFs, overlay, func(b *knowledge.Base) {
		printRecommendation(cmd, newEngine(b), sel)
	})
}

func printRecommendation(cmd *cobra.Command, engine *recommend.Engine, sel recommend.Selection) {
	res := engine.Recommend(sel)
	if res.Selection != sel {
		slog.Warn("unknown selection treated as not selected",
			"agent", sel.AgentType, "industry", sel.Industry,
			"used_agent", res.Selection.AgentType, "used_industry", res.Selection.Industry)
	}

	if isJSON() {
		if err := printJSON(cmd, res); err != nil {
			slog.Warn("print recommendation", "error", err)
		}
		return
	}
	if isQuiet() {
		for _, m := range res.Methodologies() {
			cmd.Println(m)
		}
		return
	}
	cmd.Print(ui.RenderRecommendation(res, frameworksExplain))
}

/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LMKidston/meta-agent1/internal/config"
	"github.com/LMKidston/meta-agent1/internal/logger"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool

	// appFs is the filesystem every command reads and writes through.
	appFs afero.Fs = afero.NewOsFs()

	// configErr holds the error from InitConfig until a command runs.
	configErr error
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "metaagent",
	Short: "metaagent - system prompts for specialised AI agents",
	Long: `metaagent builds system prompts for specialised AI agents.

Pick an agent archetype and an industry, answer a short questionnaire and
metaagent recommends the methodologies the agent should work with, checks
your organisation's policies and renders the final prompt.

Examples:
  metaagent archetypes
  metaagent frameworks --agent developer --industry finance --explain
  metaagent create
  metaagent generate --answers answers.yaml --out prompt.md`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Setup(logger.Options{
			Verbose: viper.GetBool(config.KeyVerbose),
			JSON:    viper.GetBool(config.KeyJSONLogs),
			Output:  cmd.ErrOrStderr(),
		})
		logger.SetFs(appFs)
		logger.SetBasePath(filepath.Join(config.ProjectRoot(), config.ProjectDir))
		logger.SetVersion(GetVersion())
		logger.SetCommand(cmd.CommandPath())
		return configErr
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(os.Stderr, userMessage(err), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(func() { configErr = InitConfig() })

	// cmd.Print* goes to stderr unless an out writer is set; results belong on stdout.
	rootCmd.SetOut(os.Stdout)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.metaagent/.metaagent.yaml or $HOME/.metaagent.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "machine-readable JSON output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only print results")
	rootCmd.PersistentFlags().Bool("json-logs", false, "write logs as JSON")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag(config.KeyVerbose, rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag(config.KeyJSONLogs, rootCmd.PersistentFlags().Lookup("json-logs"))
}

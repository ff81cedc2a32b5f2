/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"runtime"

	"github.com/spf13/cobra"
)

// version is the application version, overridden at build time with
// -ldflags "-X github.com/LMKidston/meta-agent1/cmd.version=..."
var version = "0.1.0"

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd, map[string]string{
				"version": version,
				"go":      runtime.Version(),
				"os":      runtime.GOOS,
				"arch":    runtime.GOARCH,
			})
		}
		cmd.Printf("metaagent %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

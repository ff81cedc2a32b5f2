/*
Copyright © 2025 LMKidston
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LMKidston/meta-agent1/internal/logger"
	"github.com/LMKidston/meta-agent1/internal/ui"
)

var crashesCmd = &cobra.Command{
	Use:   "crashes [file]",
	Short: "List crash logs, or show one",
	Long: `List the crash logs written under .metaagent/crash_logs, oldest first.

With a file argument (or "latest"), print that crash log.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCrashes,
}

func init() {
	rootCmd.AddCommand(crashesCmd)
}

func runCrashes(cmd *cobra.Command, args []string) error {
	logs, err := logger.ListCrashLogs()
	if err != nil {
		return fmt.Errorf("list crash logs: %w", err)
	}

	if len(args) == 0 {
		if isJSON() {
			return printJSON(cmd, logs)
		}
		if len(logs) == 0 {
			cmd.Println("No crash logs.")
			return nil
		}
		for _, l := range logs {
			cmd.Println(l)
		}
		return nil
	}

	path := args[0]
	if path == "latest" {
		if len(logs) == 0 {
			cmd.Println("No crash logs.")
			return nil
		}
		path = logs[len(logs)-1]
	}

	crash, err := logger.ReadCrashLog(path)
	if err != nil {
		return err
	}
	if isJSON() {
		return printJSON(cmd, crash)
	}

	body := fmt.Sprintf("time:    %s\nversion: %s\ncommand: %s\npanic:   %s",
		crash.Timestamp.Format("2006-01-02 15:04:05"), crash.Version, crash.Command, crash.PanicValue)
	if crash.Selection != "" {
		body += "\nselect:  " + crash.Selection
	}
	cmd.Println(ui.RenderErrorPanel(filepath.Base(path), body))
	if verbose {
		cmd.Println(crash.StackTrace)
	}
	return nil
}

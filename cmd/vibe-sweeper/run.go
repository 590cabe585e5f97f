package main

import (
	"github.com/spf13/cobra"

	"github.com/vibe-sweeper/vibe-sweeper/internal/refactors"
	"github.com/vibe-sweeper/vibe-sweeper/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run [path]",
	Short: "Scan the repo, optionally run formatters, and print a report",
	Long: `Scan the repo, optionally run formatters, and print a report.

With --apply, external formatters are run for the languages present:
  ruff   python
  biome  javascript, typescript, html, css, json

Formatters are best effort. A missing tool is reported with return code -1.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := rootArg(args)
		apply, _ := cmd.Flags().GetBool("apply")
		configPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")

		result, err := collect(cmd, root, configPath)
		if err != nil {
			return err
		}

		var formatterResults []refactors.ToolResult
		if apply {
			formatterResults = runFormatters(cmd, root, result.Files)
		}

		return emitReport(cmd, report.Build(root, result.Files, result.Findings, formatterResults), output)
	},
}

func init() {
	runCmd.Flags().Bool("apply", false, "Apply external formatters where possible")
	runCmd.Flags().StringP("config", "c", "", "Path to config YAML (vibe.yaml)")
	runCmd.Flags().StringP("output", "o", "", "Write report to this file path")

	rootCmd.AddCommand(runCmd)
}

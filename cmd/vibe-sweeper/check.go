package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vibe-sweeper/vibe-sweeper/internal/report"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Check mode for CI – exits with non-zero status if issues are found",
	Long: `Check mode for CI – exits with non-zero status if issues are found.

Prints the same report as scan. Exit codes:
  0  no issues
  1  issues found
  2  the scan could not run (bad path, bad config)`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := rootArg(args)
		configPath, _ := cmd.Flags().GetString("config")

		result, err := collect(cmd, root, configPath)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), report.Build(root, result.Files, result.Findings, nil))

		if len(result.Findings) > 0 {
			return errIssuesFound
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().StringP("config", "c", "", "Path to config YAML (vibe.yaml)")

	rootCmd.AddCommand(checkCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vibe-sweeper/vibe-sweeper/internal/config"
	"github.com/vibe-sweeper/vibe-sweeper/internal/refactors"
	"github.com/vibe-sweeper/vibe-sweeper/internal/report"
	"github.com/vibe-sweeper/vibe-sweeper/internal/scanner"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan the repo and print a Markdown report",
	Long: `Scan the repo and print a Markdown report.

Examples:
  # Scan the current directory
  vibe-sweeper scan

  # Scan another project with explicit rules
  vibe-sweeper scan ../project --config rules.yaml

  # Save the report
  vibe-sweeper scan -o report.md`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := rootArg(args)
		configPath, _ := cmd.Flags().GetString("config")
		output, _ := cmd.Flags().GetString("output")

		result, err := collect(cmd, root, configPath)
		if err != nil {
			return err
		}

		return emitReport(cmd, report.Build(root, result.Files, result.Findings, nil), output)
	},
}

func init() {
	scanCmd.Flags().StringP("config", "c", "", "Path to config YAML (vibe.yaml)")
	scanCmd.Flags().StringP("output", "o", "", "Write report to this file path")

	rootCmd.AddCommand(scanCmd)
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

// collect loads the config for root and runs the scan.
func collect(cmd *cobra.Command, root, configPath string) (*scanner.Result, error) {
	path, err := config.ResolvePath(root, configPath)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return scanner.Collect(cmd.Context(), root, cfg)
}

// emitReport prints the report, or writes it to output when set.
func emitReport(cmd *cobra.Command, text, output string) error {
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}

	if err := os.WriteFile(output, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Fprintf(cmd.OutOrStdout(), "%s Report written to %s\n", green("✓"), output)
	return nil
}

// runFormatters applies the default formatters for the languages found in files.
func runFormatters(cmd *cobra.Command, root string, files []string) []refactors.ToolResult {
	languages := scanner.DetectLanguages(files)
	return refactors.Run(cmd.Context(), root, languages, refactors.DefaultFormatters())
}

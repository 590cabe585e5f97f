package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Exit codes
const (
	exitIssuesFound = 1
	exitError       = 2
)

// errIssuesFound is returned by check when the report lists findings.
var errIssuesFound = errors.New("issues detected")

var rootCmd = &cobra.Command{
	Use:   "vibe-sweeper",
	Short: "vibe-sweeper – clean up AI-ish / vibe-coded repositories.",
	Long: `vibe-sweeper scans a source tree for signs of vibe-coded output:

- Phrasing typical of machine-generated text ("as an AI language model", ...)
- Abnormally long runs of consecutive comment lines

and prints a Markdown report. Rules come from built-in defaults, overridden
by vibe.yaml in the scanned directory or the file given with --config.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupGlobals(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
}

// setupGlobals configures logging and color from flags and VIBE_SWEEPER_* env vars.
func setupGlobals(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix("VIBE_SWEEPER")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(v.GetString("log-level"))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", v.GetString("log-level"), err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	if v.GetBool("no-color") {
		color.NoColor = true
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, errIssuesFound) {
			os.Exit(exitIssuesFound)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitError)
	}
}

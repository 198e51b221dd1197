// Package cli implements the sqlfront command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"sqlfront/internal/config"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	rootCmd := newRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "sqlfront",
		Short:         "SQL front-end: parse, check, and format SQL",
		Long:          "sqlfront parses a compact SQL dialect into a typed AST and reports the first lexical or syntax error with its source position.",
		Version:       fmt.Sprintf("%s (%s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			})))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(newParseCmd(cfg))
	rootCmd.AddCommand(newCheckCmd(cfg))
	rootCmd.AddCommand(newFmtCmd(cfg))
	rootCmd.AddCommand(newTablesCmd(cfg))
	rootCmd.AddCommand(newCommandsCmd())

	return rootCmd
}

package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"sqlfront/internal/config"
	"sqlfront/internal/sqlparse"
)

// statementSummary is the per-statement record of the yaml output.
type statementSummary struct {
	Kind   sqlparse.StatementKind `yaml:"kind"`
	SQL    string                 `yaml:"sql"`
	Tables []string               `yaml:"tables,omitempty"`
}

func newParseCmd(cfg *config.Config) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse SQL and print its AST",
		Long:  "Parse SQL from a file or stdin and print the resulting AST. A lexical or syntax error is reported with its line and column; nothing is printed for partially valid input.",
		Example: `  # Print the AST of a file
  sqlfront parse query.sql

  # Parse from stdin, YAML statement summaries
  echo 'SELECT * FROM t' | sqlfront parse --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sql, name, err := readInput(cmd, args, cfg)
			if err != nil {
				return err
			}

			stmts, err := sqlparse.Parse(sql)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			if err := requireStatements(stmts, name); err != nil {
				return err
			}
			slog.Debug("parsed input", "source", name, "statements", len(stmts))

			switch format {
			case "tree":
				for _, stmt := range stmts {
					fmt.Fprint(cmd.OutOrStdout(), sqlparse.Dump(stmt))
				}
				return nil
			case "sql":
				fmt.Fprintln(cmd.OutOrStdout(), sqlparse.FormatStatements(stmts))
				return nil
			case "yaml":
				summaries := make([]statementSummary, 0, len(stmts))
				for _, stmt := range stmts {
					summaries = append(summaries, statementSummary{
						Kind:   sqlparse.Classify(stmt),
						SQL:    sqlparse.Format(stmt),
						Tables: sqlparse.CollectTableNames(stmt),
					})
				}
				out, err := yaml.Marshal(summaries)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), string(out))
				return nil
			default:
				return fmt.Errorf("unknown format %q: want tree, sql, or yaml", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "tree", "Output format: tree, sql, yaml")
	return cmd
}

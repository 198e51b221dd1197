package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sqlfront/internal/config"
	"sqlfront/internal/sqlparse"
)

func newFmtCmd(cfg *config.Config) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Reformat SQL in a canonical style",
		Long:  "Parse SQL and print it back in a canonical form: uppercase keywords, one statement per line, normalized spacing. The output parses to the same AST as the input.",
		Example: `  sqlfront fmt query.sql

  # Rewrite the file in place
  sqlfront fmt --write query.sql`,
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

			out := sqlparse.FormatStatements(stmts) + "\n"
			if write {
				if len(args) == 0 || args[0] == "-" {
					return fmt.Errorf("--write requires a file argument")
				}
				return os.WriteFile(args[0], []byte(out), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Rewrite the file instead of printing")
	return cmd
}

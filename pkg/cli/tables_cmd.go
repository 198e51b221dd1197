package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"sqlfront/internal/config"
	"sqlfront/internal/sqlparse"
)

func newTablesCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tables [file]",
		Short: "List the tables referenced by SQL",
		Long:  "Parse SQL and print every referenced table name once, in first-seen order, including tables inside subqueries.",
		Example: `  sqlfront tables query.sql
  echo 'SELECT * FROM a JOIN b ON a.x = b.x' | sqlfront tables`,
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

			seen := make(map[string]struct{})
			for _, stmt := range stmts {
				for _, table := range sqlparse.CollectTableNames(stmt) {
					if _, dup := seen[table]; dup {
						continue
					}
					seen[table] = struct{}{}
					fmt.Fprintln(cmd.OutOrStdout(), table)
				}
			}
			return nil
		},
	}
	return cmd
}

package cli

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"sqlfront/internal/config"
	"sqlfront/internal/sqlparse"
)

// checkResult is the outcome of checking one file.
type checkResult struct {
	path       string
	statements int
	err        error
}

func newCheckCmd(cfg *config.Config) *cobra.Command {
	var expectErrors bool

	cmd := &cobra.Command{
		Use:   "check <path>...",
		Short: "Check that SQL files parse",
		Long:  "Parse every .sql file under the given paths, in parallel, and report each failure with its position. With --expect-errors the polarity flips: files that parse cleanly are the failures.",
		Example: `  # Check a directory tree of queries
  sqlfront check queries/

  # A corpus of intentionally invalid queries must all fail to parse
  sqlfront check testdata/invalid --expect-errors`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := collectSQLFiles(args)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no .sql files found under %s", strings.Join(args, ", "))
			}

			results := make([]checkResult, len(files))
			var g errgroup.Group
			g.SetLimit(cfg.CheckConcurrency)
			for i, path := range files {
				i, path := i, path
				g.Go(func() error {
					results[i] = checkFile(path, cfg.MaxInputBytes)
					return nil
				})
			}
			// Workers never return errors; failures land in results.
			_ = g.Wait()

			failed := 0
			for _, res := range results {
				if expectErrors {
					if res.err == nil {
						failed++
						fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: expected a parse error, got %d statements\n",
							res.path, res.statements)
					} else {
						slog.Debug("rejected as expected", "file", res.path, "error", res.err)
					}
					continue
				}
				if res.err != nil {
					failed++
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", res.path, res.err)
				} else {
					slog.Debug("parsed", "file", res.path, "statements", res.statements)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed", failed, len(files))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK %d files\n", len(files))
			return nil
		},
	}

	cmd.Flags().BoolVar(&expectErrors, "expect-errors", false, "Require every file to fail parsing")
	return cmd
}

// collectSQLFiles expands the arguments into a sorted list of .sql files.
// Directories are walked recursively; explicit file arguments are taken
// as-is regardless of extension.
func collectSQLFiles(paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".sql") {
				files = append(files, p)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}

func checkFile(path string, maxBytes int64) checkResult {
	data, err := readFileLimited(path, maxBytes)
	if err != nil {
		return checkResult{path: path, err: err}
	}
	stmts, err := sqlparse.Parse(string(data))
	if err != nil {
		return checkResult{path: path, err: err}
	}
	return checkResult{path: path, statements: len(stmts)}
}

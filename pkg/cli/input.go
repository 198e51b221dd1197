package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sqlfront/internal/config"
	"sqlfront/internal/sqlparse"
)

// readInput returns the SQL text for a command: from the named file, or
// from stdin when the argument is absent or "-". Input larger than the
// configured limit is rejected rather than truncated.
func readInput(cmd *cobra.Command, args []string, cfg *config.Config) (sql string, name string, err error) {
	if len(args) > 0 && args[0] != "-" {
		data, err := readFileLimited(args[0], cfg.MaxInputBytes)
		if err != nil {
			return "", "", err
		}
		return string(data), args[0], nil
	}

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "", "", fmt.Errorf("no input: pass a file argument or pipe SQL on stdin")
	}
	data, err := readAllLimited(cmd.InOrStdin(), cfg.MaxInputBytes)
	if err != nil {
		return "", "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), "<stdin>", nil
}

func readFileLimited(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := readAllLimited(f, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return data, nil
}

// readAllLimited reads r to EOF, failing once more than limit bytes appear.
// A limit of 0 disables the check.
func readAllLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("input exceeds %d bytes", limit)
	}
	return data, nil
}

// requireStatements rejects input that parsed to zero statements, such as
// blank text or comment-only files.
func requireStatements(stmts []sqlparse.Stmt, name string) error {
	if len(stmts) == 0 {
		return fmt.Errorf("%s: no SQL statements found", name)
	}
	return nil
}

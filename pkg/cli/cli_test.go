package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sqlfront/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxInputBytes:    config.DefaultMaxInputBytes,
		CheckConcurrency: 2,
	}
}

// runCLI executes the root command with the given stdin and args and
// returns whatever was written to stdout.
func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	rootCmd := newRootCmd(testConfig())
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// writeSQLFile writes content to name under a temp dir and returns the path.
func writeSQLFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// === parse ===

func TestParseCmd_Tree(t *testing.T) {
	out, err := runCLI(t, "SELECT a FROM t WHERE x = 1", "parse")
	require.NoError(t, err)
	assert.Contains(t, out, "Select star=false")
	assert.Contains(t, out, "Table t")
	assert.Contains(t, out, "Binary =")
}

func TestParseCmd_SQL(t *testing.T) {
	out, err := runCLI(t, "select a from t", "parse", "--format", "sql")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t;\n", out)
}

func TestParseCmd_YAML(t *testing.T) {
	out, err := runCLI(t, "select * from a join b on a.x=b.x; delete from c", "parse", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "kind: select")
	assert.Contains(t, out, "kind: delete")
	assert.Contains(t, out, "- a")
	assert.Contains(t, out, "- b")
	assert.Contains(t, out, "- c")
}

func TestParseCmd_File(t *testing.T) {
	path := writeSQLFile(t, t.TempDir(), "q.sql", "SELECT 1")
	out, err := runCLI(t, "", "parse", "--format", "sql", path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\n", out)
}

func TestParseCmd_SyntaxErrorHasPosition(t *testing.T) {
	_, err := runCLI(t, "SELECT * FROM t LIMIT 1 WHERE x=1", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 1, column 25")
	assert.Contains(t, err.Error(), "out of order")
}

func TestParseCmd_EmptyInputRejected(t *testing.T) {
	_, err := runCLI(t, "-- nothing here\n", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no SQL statements")
}

func TestParseCmd_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "SELECT 1", "parse", "--format", "xml")
	require.Error(t, err)
}

// === fmt ===

func TestFmtCmd_Stdout(t *testing.T) {
	out, err := runCLI(t, "select a,b from t where x=1", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a, b FROM t WHERE x = 1;\n", out)
}

func TestFmtCmd_Write(t *testing.T) {
	path := writeSQLFile(t, t.TempDir(), "q.sql", "select 1;select 2")
	_, err := runCLI(t, "", "fmt", "--write", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "SELECT 1;\nSELECT 2;\n", string(data))
}

func TestFmtCmd_WriteRequiresFile(t *testing.T) {
	_, err := runCLI(t, "select 1", "fmt", "--write")
	require.Error(t, err)
}

// === tables ===

func TestTablesCmd(t *testing.T) {
	sql := "SELECT * FROM a JOIN b ON a.x = b.x; INSERT INTO c SELECT * FROM a"
	out, err := runCLI(t, sql, "tables")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", out)
}

// === check ===

func TestCheckCmd_AllValid(t *testing.T) {
	dir := t.TempDir()
	writeSQLFile(t, dir, "a.sql", "SELECT 1")
	writeSQLFile(t, dir, "sub/b.sql", "DELETE FROM t WHERE x = 1")
	writeSQLFile(t, dir, "ignored.txt", "not sql at all $$$")

	out, err := runCLI(t, "", "check", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK 2 files")
}

func TestCheckCmd_ReportsFailures(t *testing.T) {
	dir := t.TempDir()
	writeSQLFile(t, dir, "good.sql", "SELECT 1")
	writeSQLFile(t, dir, "bad.sql", "SELECT * FROM")

	out, err := runCLI(t, "", "check", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, "bad.sql")
	assert.NotContains(t, out, "good.sql")
}

func TestCheckCmd_ExpectErrors(t *testing.T) {
	dir := t.TempDir()
	writeSQLFile(t, dir, "bad1.sql", "SELECT * FORM t")
	writeSQLFile(t, dir, "bad2.sql", "DELETE t")

	out, err := runCLI(t, "", "check", "--expect-errors", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "OK 2 files")
}

func TestCheckCmd_ExpectErrorsFlagsValidFiles(t *testing.T) {
	dir := t.TempDir()
	writeSQLFile(t, dir, "valid.sql", "SELECT 1")

	out, err := runCLI(t, "", "check", "--expect-errors", dir)
	require.Error(t, err)
	assert.Contains(t, out, "expected a parse error")
}

func TestCheckCmd_NoFiles(t *testing.T) {
	_, err := runCLI(t, "", "check", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no .sql files")
}

// === commands ===

func TestCommandsCmd(t *testing.T) {
	out, err := runCLI(t, "", "commands")
	require.NoError(t, err)
	assert.Contains(t, out, "path: sqlfront parse")
	assert.Contains(t, out, "path: sqlfront check")
	assert.Contains(t, out, "name: expect-errors")
}

func TestCommandsCmd_Filter(t *testing.T) {
	out, err := runCLI(t, "", "commands", "--filter", "fmt")
	require.NoError(t, err)
	assert.Contains(t, out, "sqlfront fmt")
	assert.NotContains(t, out, "sqlfront parse")
}

// === input limits ===

func TestInputLimitEnforced(t *testing.T) {
	rootCmd := newRootCmd(&config.Config{MaxInputBytes: 8, CheckConcurrency: 1})
	var out bytes.Buffer
	rootCmd.SetIn(strings.NewReader("SELECT 1 FROM long_table_name"))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"parse"})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds 8 bytes")
}

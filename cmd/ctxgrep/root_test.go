package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/praetorian-inc/ctxgrep/pkg/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with fresh flag state and returns stdout
// and stderr.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunGrep_Context(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "a\nb\nMATCH\nc\nd")

	out, _, err := execute(t, "", "-B", "1", "-A", "1", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "b\nMATCH\nc\n", out)
}

func TestRunGrep_OverlappingGroups(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "x\nMATCH\ny\nMATCH\nz")

	out, _, err := execute(t, "", "-C", "1", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "x\nMATCH\ny\n--\ny\nMATCH\nz\n", out)

	out, _, err = execute(t, "", "-C", "1", "--no-group-separator", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "x\nMATCH\ny\ny\nMATCH\nz\n", out)

	out, _, err = execute(t, "", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "MATCH\nMATCH\n", out)
}

func TestRunGrep_ContextPrecedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "1\n2\n3\nMATCH\n5\n6\n7")

	out, _, err := execute(t, "", "-C", "2", "-B", "1", "-n", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "3:3\n4:MATCH\n5:5\n6:6\n", out)
}

func TestRunGrep_MissingFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "MATCH")
	missing := filepath.Join(dir, "missing.txt")

	out, errOut, err := execute(t, "", "--color", "never", "MATCH", missing, path)
	require.NoError(t, err, "a missing input is not fatal")
	assert.Equal(t, "MATCH\n", out)
	assert.Equal(t, missing+": file not found\n", errOut)
}

func TestRunGrep_InvalidPattern(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "MATCH")

	out, _, err := execute(t, "", "(", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
	assert.Empty(t, out)
}

func TestRunGrep_InvalidContext(t *testing.T) {
	_, _, err := execute(t, "", "-A", "-1", "MATCH")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestRunGrep_MissingPattern(t *testing.T) {
	_, _, err := execute(t, "")
	assert.Error(t, err)
}

func TestRunGrep_Stdin(t *testing.T) {
	out, _, err := execute(t, "x\nmatch\ny\n", "-i", "-n", "MATCH")
	require.NoError(t, err)
	assert.Equal(t, "2:match\n", out)
}

func TestRunGrep_NoIgnoreCaseWins(t *testing.T) {
	out, _, err := execute(t, "match\n", "-i", "--no-ignore-case", "MATCH")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRunGrep_MaxCount(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "MATCH 1\nMATCH 2\nMATCH 3")

	out, _, err := execute(t, "", "-m", "2", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "MATCH 1\nMATCH 2\n", out)
}

func TestRunGrep_ConfigFileAndFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "a.txt", "x\nMATCH\ny\nMATCH\nz")
	cfgPath := writeFile(t, dir, "ctxgrep.yaml", "context: 1\ngroup_separator: \"==\"\n")

	out, _, err := execute(t, "", "--config", cfgPath, "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "x\nMATCH\ny\n==\ny\nMATCH\nz\n", out)

	out, _, err = execute(t, "", "--config", cfgPath, "--group-separator", "##", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "x\nMATCH\ny\n##\ny\nMATCH\nz\n", out, "flags override the config file")
}

func TestRunGrep_Environment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "x\nMATCH\ny")
	t.Setenv("CTXGREP_LINE_NUMBER", "true")

	out, _, err := execute(t, "", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "2:MATCH\n", out)
}

func TestRunGrep_Jobs(t *testing.T) {
	dir := t.TempDir()
	var files []string
	for _, name := range []string{"a", "b", "c", "d"} {
		files = append(files, writeFile(t, dir, name+".txt", "MATCH "+name+"\nother"))
	}

	args := append([]string{"-j", "4", "-A", "1", "MATCH"}, files...)
	out, _, err := execute(t, "", args...)
	require.NoError(t, err)
	assert.Equal(t, "MATCH a\nother\nMATCH b\nother\nMATCH c\nother\nMATCH d\nother\n", out)
}

func TestRunGrep_VerboseLogsToStderr(t *testing.T) {
	path := writeFile(t, t.TempDir(), "a.txt", "MATCH")

	out, errOut, err := execute(t, "", "-v", "MATCH", path)
	require.NoError(t, err)
	assert.Equal(t, "MATCH\n", out)
	assert.Contains(t, errOut, "run complete")
}

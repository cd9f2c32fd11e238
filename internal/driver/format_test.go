package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"thriftfmt/internal/format"
	"thriftfmt/internal/observ"
)

const (
	messy     = "struct A { 1: i32 a }\n"
	formatted = "struct A {\n    1: required i32 a,\n}\n"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func baseOptions() FormatOptions {
	return FormatOptions{Options: format.DefaultOptions(), NoCache: true, Jobs: 2}
}

func TestFormatPathsCheck(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.thrift"), messy)
	writeFile(t, filepath.Join(dir, "b.thrift"), formatted)
	writeFile(t, filepath.Join(dir, "bad.thrift"), "struct {\n")
	writeFile(t, filepath.Join(dir, "gen", "c.thrift"), messy)
	writeFile(t, filepath.Join(dir, "notes.txt"), "not thrift")

	opts := baseOptions()
	opts.Check = true
	opts.Excludes = []string{"gen/**"}
	results, err := FormatPaths(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.Equal(t, filepath.Join(dir, "a.thrift"), results[0].Path)
	require.True(t, results[0].Changed)
	require.NoError(t, results[0].Err)

	require.Equal(t, filepath.Join(dir, "b.thrift"), results[1].Path)
	require.False(t, results[1].Changed)

	require.Equal(t, filepath.Join(dir, "bad.thrift"), results[2].Path)
	var perr *ParseError
	require.ErrorAs(t, results[2].Err, &perr)
	require.True(t, errors.Is(results[2].Err, format.ErrSyntax))
	require.True(t, perr.Bag.HasErrors())

	require.True(t, Failed(results))
	require.True(t, AnyChanged(results))
	// check mode never writes
	require.Equal(t, messy, readFile(t, filepath.Join(dir, "a.thrift")))
}

func TestFormatPathsWritesAndCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.thrift")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.NoCache = false
	opts.CacheDir = t.TempDir()

	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Changed)
	require.False(t, results[0].Cached)
	require.Equal(t, formatted, readFile(t, path))

	results, err = FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.True(t, results[0].Cached)
	require.False(t, results[0].Changed)

	// другие опции — другой ключ
	opts.Options.IndentWidth = 2
	results, err = FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.False(t, results[0].Cached)
	require.True(t, results[0].Changed)
	require.Equal(t, "struct A {\n  1: required i32 a,\n}\n", readFile(t, path))
}

func TestFormatPathsStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.thrift")
	writeFile(t, path, messy)

	opts := baseOptions()
	opts.Stdout = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.Equal(t, formatted, string(results[0].Formatted))
	require.Equal(t, messy, readFile(t, path))
}

func TestFormatPathsDiff(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.thrift")
	writeFile(t, path, messy)

	for _, mode := range []DiffMode{DiffUnified, DiffPatch} {
		opts := baseOptions()
		opts.Diff = mode
		results, err := FormatPaths(context.Background(), []string{path}, opts)
		require.NoError(t, err)
		require.True(t, results[0].Changed)
		require.Contains(t, results[0].Diff, "+    1: required i32 a,")
		require.Contains(t, results[0].Diff, "-struct A { 1: i32 a }")
		require.Equal(t, messy, readFile(t, path), "diff mode must not write")
	}
}

func TestFormatPathsCRLFIsChanged(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.thrift")
	writeFile(t, path, strings.ReplaceAll(formatted, "\n", "\r\n"))

	opts := baseOptions()
	opts.Check = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.True(t, results[0].Changed)
}

func TestFormatPathsVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.thrift")
	writeFile(t, path, "// head\n\nstruct A { 1: i32 a }\n")

	opts := baseOptions()
	opts.Check = true
	opts.Verify = true
	results, err := FormatPaths(context.Background(), []string{path}, opts)
	require.NoError(t, err)
	require.NoError(t, results[0].Err)
}

func TestFormatPathsErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := FormatPaths(context.Background(), []string{dir}, baseOptions())
	require.ErrorIs(t, err, ErrNoSourceFiles)

	_, err = FormatPaths(context.Background(), []string{filepath.Join(dir, "missing.thrift")}, baseOptions())
	require.ErrorIs(t, err, os.ErrNotExist)

	opts := baseOptions()
	opts.Excludes = []string{"gen/["}
	_, err = FormatPaths(context.Background(), []string{dir}, opts)
	require.Error(t, err)

	opts = baseOptions()
	opts.Options.IndentWidth = -1
	_, err = FormatPaths(context.Background(), []string{dir}, opts)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = FormatPaths(ctx, []string{dir}, baseOptions())
	require.ErrorIs(t, err, context.Canceled)
}

func TestFormatPathsProgressAndTimings(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.thrift", "b.thrift", "c.thrift"} {
		writeFile(t, filepath.Join(dir, name), messy)
	}

	var (
		mu     sync.Mutex
		queued int
		done   []string
		empty  int
	)
	opts := baseOptions()
	opts.Check = true
	opts.Timer = observ.NewTimer()
	opts.Observer = func(p Progress) {
		mu.Lock()
		defer mu.Unlock()
		switch p.Status {
		case FilesQueued:
			queued = p.Total
		case FileDone:
			if p.Result == nil {
				empty++
			}
			done = append(done, p.Path)
		}
	}
	results, err := FormatPaths(context.Background(), []string{dir}, opts)
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, 3, queued)
	require.Len(t, done, 3)
	require.Zero(t, empty)

	counts := map[string]int{}
	for _, p := range opts.Timer.Report().Phases {
		counts[p.Name] = p.Count
	}
	require.Equal(t, map[string]int{"lex": 3, "parse": 3, "patch": 3, "render": 3}, counts)
}

func TestExcluded(t *testing.T) {
	root := filepath.Join("proto", "idl")
	require.True(t, excluded(root, filepath.Join(root, "gen", "x.thrift"), []string{"gen/**"}))
	require.True(t, excluded(root, filepath.Join(root, "a", "b_test.thrift"), []string{"**/*_test.thrift"}))
	require.True(t, excluded(root, filepath.Join(root, "gen"), []string{"./gen"}))
	require.False(t, excluded(root, filepath.Join(root, "src", "x.thrift"), []string{"gen/**"}))
	require.False(t, excluded(root, filepath.Join(root, "x.thrift"), nil))
}

func TestFormatSource(t *testing.T) {
	res, err := FormatSource(context.Background(), "<stdin>", []byte(messy), baseOptions())
	require.NoError(t, err)
	require.NoError(t, res.Err)
	require.True(t, res.Changed)
	require.Equal(t, formatted, string(res.Formatted))

	res, err = FormatSource(context.Background(), "<stdin>", []byte("enum {"), baseOptions())
	require.NoError(t, err)
	var perr *ParseError
	require.ErrorAs(t, res.Err, &perr)
	require.Equal(t, "<stdin>", perr.Path)
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"thriftfmt/internal/version"
)

const (
	messy     = "struct A { 1: i32 a }\n"
	formatted = "struct A {\n    1: required i32 a,\n}\n"
)

type cliResult struct {
	code           int
	stdout, stderr string
}

func execCLI(t *testing.T, stdin string, args ...string) cliResult {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return cliResult{code: code, stdout: out.String(), stderr: errOut.String()}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestFmtStdout(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), messy)
	res := execCLI(t, "", "fmt", "--ui", "off", "--stdout", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, formatted, res.stdout)
	require.Equal(t, messy, readFile(t, path))
}

func TestFmtWritesFiles(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), messy)
	res := execCLI(t, "", "fmt", "--ui", "off", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "reformatted "+path+"\n", res.stdout)
	require.Equal(t, formatted, readFile(t, path))

	res = execCLI(t, "", "fmt", "--ui", "off", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Empty(t, res.stdout)
}

func TestFmtCheck(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, filepath.Join(dir, "a.thrift"), messy)
	writeFile(t, filepath.Join(dir, "b.thrift"), formatted)

	res := execCLI(t, "", "fmt", "--ui", "off", "--check", dir)
	require.Equal(t, 1, res.code)
	require.Equal(t, a+"\n", res.stdout)
	require.Contains(t, res.stderr, "2 files: 1 would reformat, 1 unchanged")
	require.Equal(t, messy, readFile(t, a))

	res = execCLI(t, "", "fmt", "--ui", "off", "--check", "--quiet", filepath.Join(dir, "b.thrift"))
	require.Equal(t, 0, res.code)
	require.Empty(t, res.stdout)
}

func TestFmtDiff(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), messy)
	res := execCLI(t, "", "fmt", "--ui", "off", "--diff", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "+    1: required i32 a,")
	require.Equal(t, messy, readFile(t, path))

	res = execCLI(t, "", "fmt", "--ui", "off", "--diff", "--check", path)
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stdout, "-struct A { 1: i32 a }")
}

func TestFmtStdin(t *testing.T) {
	res := execCLI(t, messy, "fmt")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, formatted, res.stdout)

	res = execCLI(t, messy, "fmt", "--check", "-")
	require.Equal(t, 1, res.code)

	res = execCLI(t, formatted, "fmt", "--check", "-")
	require.Equal(t, 0, res.code, res.stderr)

	res = execCLI(t, messy, "fmt", "--align", "none", "--no-patch-required", "--indent", "2", "-")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "struct A {\n  1: i32 a,\n}\n", res.stdout)
}

func TestFmtConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".thriftfmt.toml"), "[format]\nindent = 2\n\n[files]\nexclude = [\"gen/**\"]\n")
	path := writeFile(t, filepath.Join(dir, "a.thrift"), messy)
	writeFile(t, filepath.Join(dir, "gen", "b.thrift"), "struct {")

	res := execCLI(t, "", "fmt", "--ui", "off", "--stdout", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "struct A {\n  1: required i32 a,\n}\n", res.stdout)

	res = execCLI(t, "", "fmt", "--ui", "off", "--stdout", "--indent", "8", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, "struct A {\n        1: required i32 a,\n}\n", res.stdout)

	// gen/ исключён конфигом, иначе битый файл дал бы код 1
	res = execCLI(t, "", "fmt", "--ui", "off", "--check", dir)
	require.Equal(t, 1, res.code)
	require.Equal(t, path+"\n", res.stdout)
	require.NotContains(t, res.stderr, "SYN")
}

func TestFmtBadConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, filepath.Join(dir, "custom.toml"), "[format]\nindnet = 2\n")
	path := writeFile(t, filepath.Join(dir, "a.thrift"), messy)

	res := execCLI(t, "", "fmt", "--ui", "off", "--config", cfg, path)
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "unknown keys: format.indnet")
}

func TestFmtSyntaxError(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "bad.thrift"), "struct {\n")
	res := execCLI(t, "", "fmt", "--ui", "off", path)
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "SYN")
	require.Contains(t, res.stderr, "bad.thrift:")
	require.Equal(t, "struct {\n", readFile(t, path))
}

func TestFmtJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.thrift"), messy)
	writeFile(t, filepath.Join(dir, "bad.thrift"), "enum {")

	res := execCLI(t, "", "fmt", "--ui", "off", "--check", "--format", "json", "--timings", dir)
	require.Equal(t, 1, res.code)

	var payload fmtJSONPayload
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &payload), res.stdout)
	require.Len(t, payload.Results, 2)
	require.True(t, payload.Results[0].Changed)
	require.True(t, payload.Results[0].Check)
	require.NotEmpty(t, payload.Results[1].Error)
	require.NotEmpty(t, payload.Results[1].Diagnostics)
	require.NotNil(t, payload.Timings)
}

func TestFmtFlagErrors(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), messy)
	for _, args := range [][]string{
		{"fmt", "--stdout", "--check", path},
		{"fmt", "--format", "xml", path},
		{"fmt", "--align", "diagonal", path},
		{"fmt", "--indent", "-1", path},
		{"fmt", "--ui", "maybe", path},
		{"--color", "rainbow", "fmt", path},
	} {
		res := execCLI(t, "", args...)
		require.Equal(t, 1, res.code, "args %v", args)
		require.Contains(t, res.stderr, "thriftfmt: ", "args %v", args)
	}
}

func TestTokenizeJSON(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), "// c\ntypedef i32 T\n")
	res := execCLI(t, "", "tokenize", "--format", "json", path)
	require.Equal(t, 0, res.code, res.stderr)

	var toks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &toks))
	require.Equal(t, "hidden", toks[0]["channel"])
	require.Equal(t, "// c", toks[0]["text"])
	require.Equal(t, "EOF", toks[len(toks)-1]["kind"])
}

func TestParseSexpr(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "a.thrift"), messy)

	res := execCLI(t, "", "parse", "--format", "sexpr", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.True(t, strings.HasPrefix(res.stdout, "(Document "), res.stdout)
	require.NotContains(t, res.stdout, "+required")

	res = execCLI(t, "", "parse", "--format", "sexpr", "--patched", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stdout, "+required")

	res = execCLI(t, "", "parse", "--format", "tree", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.True(t, strings.HasPrefix(res.stdout, "Document\n"), res.stdout)

	bad := writeFile(t, filepath.Join(t.TempDir(), "bad.thrift"), "service {")
	res = execCLI(t, "", "parse", bad)
	require.Equal(t, 1, res.code)
	require.Empty(t, res.stdout)
	require.Contains(t, res.stderr, "SYN")
}

func TestVersionJSON(t *testing.T) {
	res := execCLI(t, "", "version", "--format", "json")
	require.Equal(t, 0, res.code, res.stderr)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	require.Equal(t, version.Version, info.Version)
	require.NotEmpty(t, info.GoVersion)

	res = execCLI(t, "", "version")
	require.Equal(t, 0, res.code)
	require.Contains(t, res.stdout, "thriftfmt "+version.Version)
}

func TestProfilingFlags(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "a.thrift"), messy)
	mem := filepath.Join(dir, "mem.pprof")
	res := execCLI(t, "", "--memprofile", mem, "fmt", "--ui", "off", "--stdout", path)
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, formatted, res.stdout)

	info, err := os.Stat(mem)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	res = execCLI(t, "", "--cpuprofile", filepath.Join(dir, "missing", "cpu.pprof"), "version")
	require.Equal(t, 1, res.code)
	require.Contains(t, res.stderr, "cpu profile")
}

func TestCacheDirAndClean(t *testing.T) {
	dir := t.TempDir()
	cacheDir := filepath.Join(dir, "cache")
	path := writeFile(t, filepath.Join(dir, "a.thrift"), formatted)

	res := execCLI(t, "", "--cache-dir", cacheDir, "fmt", "--ui", "off", "--check", path)
	require.Equal(t, 0, res.code, res.stderr)
	entries, err := filepath.Glob(filepath.Join(cacheDir, "fmt", "*", "*.mp"))
	require.NoError(t, err)
	require.Len(t, entries, 1)

	res = execCLI(t, "", "--cache-dir", cacheDir, "cache", "dir")
	require.Equal(t, 0, res.code, res.stderr)
	require.Equal(t, cacheDir+"\n", res.stdout)

	res = execCLI(t, "", "--cache-dir", cacheDir, "cache", "clean")
	require.Equal(t, 0, res.code, res.stderr)
	require.Contains(t, res.stderr, "cleared")
	_, err = os.Stat(filepath.Join(cacheDir, "fmt"))
	require.True(t, os.IsNotExist(err))
}

package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"thriftfmt/internal/format"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, ConfigName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadOverlaysOnlyWrittenKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
[format]
indent = 2
align = "part"

[files]
exclude = ["gen/**", "**/*_test.thrift"]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	opts := cfg.Apply(format.DefaultOptions())
	require.Equal(t, 2, opts.IndentWidth)
	require.Equal(t, format.AlignPart, opts.Align())
	require.True(t, opts.KeepComments, "absent keys keep defaults")
	require.True(t, opts.PatchRequired)
	require.Equal(t, []string{"gen/**", "**/*_test.thrift"}, cfg.Excludes())
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[format]\nindnet = 2\n")
	_, err := Load(path)
	require.ErrorIs(t, err, ErrConfigInvalid)
	require.ErrorContains(t, err, "format.indnet")
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, body := range map[string]string{
		"negative indent": "[format]\nindent = -1\n",
		"align":           "[format]\nalign = \"diagonal\"\n",
		"glob":            "[files]\nexclude = [\"gen/[\"]\n",
		"syntax":          "[format\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, t.TempDir(), body))
			require.ErrorIs(t, err, ErrConfigInvalid)
		})
	}
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "[format]\nkeep_comments = false\n")
	nested := filepath.Join(root, "idl", "shared")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	file := filepath.Join(nested, "a.thrift")
	require.NoError(t, os.WriteFile(file, []byte(""), 0o600))

	cfg, ok, err := Discover(file)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, cfg.Apply(format.DefaultOptions()).KeepComments)

	gotRoot, ok, err := FindProjectRoot(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, root, gotRoot)
}

func TestCombineIsOrderSensitive(t *testing.T) {
	a, b := StringDigest("a"), StringDigest("b")
	require.NotEqual(t, Combine(a, b), Combine(b, a))
	require.Equal(t, Combine(a, b), Combine(a, b))
}

func TestNilConfig(t *testing.T) {
	var cfg *Config
	require.Equal(t, format.DefaultOptions(), cfg.Apply(format.DefaultOptions()))
	require.Nil(t, cfg.Excludes())
}

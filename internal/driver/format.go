package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/format"
	"thriftfmt/internal/observ"
	"thriftfmt/internal/project"
	"thriftfmt/internal/source"
	"thriftfmt/internal/trace"
)

// SourceExt is the extension of files picked up when walking directories.
const SourceExt = ".thrift"

// ErrNoSourceFiles is returned when the inputs contain no Thrift files.
var ErrNoSourceFiles = errors.New("format: no source files found")

// FormatOptions configures a batch formatting run.
type FormatOptions struct {
	Options        format.Options
	Excludes       []string // doublestar-шаблоны по slash-путям, только для обхода каталогов
	Jobs           int      // <= 0: GOMAXPROCS
	Check          bool
	Stdout         bool
	Diff           DiffMode
	Verify         bool
	NoCache        bool
	CacheDir       string // "" — каталог пользователя (XDG_CACHE_HOME)
	MaxDiagnostics int
	Timer          *observ.Timer
	Observer       ProgressObserver
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool // файл уже был отформатирован, разбор пропущен
	Err       error
	Formatted []byte
	Diff      string
}

// ParseError reports a file that could not be formatted because it does not
// parse. The bag holds the lexer and parser diagnostics.
type ParseError struct {
	Path    string
	Bag     *diag.Bag
	FileSet *source.FileSet
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %d syntax error(s)", e.Path, e.Bag.Len())
}

func (e *ParseError) Unwrap() error { return format.ErrSyntax }

// FormatPaths formats provided files or directories (recursively collecting
// .thrift files). Every file gets its own result; a failing file never stops
// the batch. When opts.Check is true, files are not modified and Changed
// reports whether formatting would update them. With opts.Stdout or a diff
// mode the formatted content is returned without touching the disk.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := opts.Options.Validate(); err != nil {
		return nil, err
	}
	for _, pattern := range opts.Excludes {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("format: bad exclude pattern %q", pattern)
		}
	}

	files, err := collectSourceFiles(ctx, paths, opts.Excludes)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoSourceFiles
	}

	r, err := newRunner(ctx, opts)
	if err != nil {
		return nil, err
	}
	return r.run(ctx, files)
}

func collectSourceFiles(ctx context.Context, paths []string, excludes []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			// явно указанный файл форматируем независимо от расширения и excludes
			addFile(p)
			continue
		}
		root := p
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if path != root && excluded(root, path, excludes) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && filepath.Ext(path) == SourceExt {
				addFile(path)
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

// excluded matches the path relative to the walk root and the path as seen by
// the user against every pattern.
func excluded(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	full := filepath.ToSlash(path)
	rel := full
	if r, err := filepath.Rel(root, path); err == nil {
		rel = filepath.ToSlash(r)
	}
	for _, pattern := range patterns {
		pattern = strings.TrimPrefix(pattern, "./")
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, full); ok {
			return true
		}
	}
	return false
}

// Failed reports whether any result carries an error.
func Failed(results []FormatResult) bool {
	for _, r := range results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// AnyChanged reports whether any file was (or would be) rewritten.
func AnyChanged(results []FormatResult) bool {
	for _, r := range results {
		if r.Changed {
			return true
		}
	}
	return false
}

// FormatSource formats an in-memory document (stdin) through the same
// pipeline as files. Nothing is written and the cache is not used; the
// formatted text is always returned in Formatted.
func FormatSource(ctx context.Context, name string, src []byte, opts FormatOptions) (FormatResult, error) {
	if err := opts.Options.Validate(); err != nil {
		return FormatResult{}, err
	}
	opts.NoCache = true
	opts.Stdout = true
	r, err := newRunner(ctx, opts)
	if err != nil {
		return FormatResult{}, err
	}
	res := FormatResult{Path: name}
	span := trace.Begin(r.tracer, trace.ScopeFile, name, r.parent)
	out, err := r.formatBytes(span.ID(), name, src)
	if err != nil {
		res.Err = err
	} else {
		r.finish(&res, project.Digest{}, src, out)
	}
	span.End(resultDetail(&res))
	return res, nil
}

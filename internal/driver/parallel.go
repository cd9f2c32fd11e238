package driver

import (
	"bytes"
	"context"
	"os"
	"runtime"
	"strconv"
	"time"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/format"
	"thriftfmt/internal/lexer"
	"thriftfmt/internal/parser"
	"thriftfmt/internal/project"
	"thriftfmt/internal/source"
	"thriftfmt/internal/token"
	"thriftfmt/internal/trace"
)

const defaultMaxDiagnostics = 256

// runner держит всё, что общее для файлов одного запуска.
type runner struct {
	opts    FormatOptions
	cache   *DiskCache
	optsKey project.Digest
	maxDiag int
	tracer  trace.Tracer
	parent  uint64
}

func newRunner(ctx context.Context, opts FormatOptions) (*runner, error) {
	r := &runner{
		opts:    opts,
		optsKey: optionsDigest(opts.Options),
		maxDiag: opts.MaxDiagnostics,
		tracer:  trace.FromContext(ctx),
		parent:  trace.CurrentSpan(ctx).SpanID,
	}
	if r.maxDiag <= 0 {
		r.maxDiag = defaultMaxDiagnostics
	}
	if !opts.NoCache {
		var err error
		if r.cache, err = OpenCache(opts.CacheDir); err != nil {
			// без кэша работаем так же, только медленнее
			trace.Point(r.tracer, trace.ScopeDriver, "cache", "disabled: "+err.Error(), r.parent)
			r.cache = nil
		}
	}
	return r, nil
}

// run formats files in parallel. Results are indexed by position so the
// output order matches the sorted input order.
func (r *runner) run(ctx context.Context, files []string) ([]FormatResult, error) {
	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	span := trace.Begin(r.tracer, trace.ScopeDriver, "format", r.parent)
	r.parent = span.ID()
	r.notify(Progress{Status: FilesQueued, Total: len(files)})

	results := make([]FormatResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r.notify(Progress{Status: FileStarted, Path: path, Total: len(files)})
			results[i] = r.formatFile(path)
			r.notify(Progress{Status: FileDone, Path: path, Total: len(files), Result: &results[i]})
			return nil
		})
	}
	err := g.Wait()
	span.WithExtra("files", strconv.Itoa(len(files))).End("")
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *runner) notify(p Progress) {
	if r.opts.Observer != nil {
		r.opts.Observer(p)
	}
}

// phase runs fn as a named pipeline phase: one trace span and one timer slot.
func (r *runner) phase(parent uint64, name string, fn func() error) error {
	sp := trace.Begin(r.tracer, trace.ScopePhase, name, parent)
	start := time.Now()
	err := fn()
	r.opts.Timer.Add(name, time.Since(start))
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	sp.End(detail)
	return err
}

func (r *runner) formatFile(path string) (res FormatResult) {
	res.Path = path
	span := trace.Begin(r.tracer, trace.ScopeFile, path, r.parent)
	defer func() { span.End(resultDetail(&res)) }()

	// #nosec G304 -- path comes from the command line or a directory walk
	raw, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	key := cacheKey(raw, r.optsKey)
	if r.knownFormatted(key) {
		res.Cached = true
		if r.opts.Stdout {
			res.Formatted = raw
		}
		return res
	}

	out, err := r.formatBytes(span.ID(), path, raw)
	if err != nil {
		res.Err = err
		return res
	}
	r.finish(&res, key, raw, out)
	formatted := res.Formatted
	if !r.opts.Stdout {
		res.Formatted = nil
	}
	if !res.Changed || r.opts.Stdout || r.opts.Check || r.opts.Diff != DiffNone {
		return res
	}

	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, formatted, mode.Perm()); err != nil {
		res.Err = err
		return res
	}
	r.remember(cacheKey(formatted, r.optsKey), path)
	return res
}

// finish fills the comparison part of res once out is known.
func (r *runner) finish(res *FormatResult, key project.Digest, raw []byte, out string) {
	formatted := []byte(out)
	res.Changed = !bytes.Equal(raw, formatted)
	res.Formatted = formatted
	if res.Changed && r.opts.Diff != DiffNone {
		res.Diff = makeDiff(r.opts.Diff, res.Path, string(raw), out)
	}
	if !res.Changed {
		r.remember(key, res.Path)
	}
}

// formatBytes runs lex, parse, patch and render (plus verify) over one
// document.
func (r *runner) formatBytes(parent uint64, path string, raw []byte) (string, error) {
	content, flags, err := source.Normalize(raw)
	if err != nil {
		return "", err
	}
	fileSet := source.NewFileSet()
	sf := fileSet.Get(fileSet.Add(path, content, flags))

	bag := diag.NewBag(r.maxDiag)
	// лексер и парсер могут пожаловаться на один и тот же токен
	rep := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	maxErrors, convErr := safecast.Conv[uint](bag.Cap())
	if convErr != nil {
		maxErrors = 0
	}

	var toks []token.Token
	_ = r.phase(parent, "lex", func() error {
		toks = lexer.Tokenize(sf, lexer.Options{Reporter: rep})
		return nil
	})
	var parsed parser.Result
	_ = r.phase(parent, "parse", func() error {
		parsed = parser.ParseTokens(toks, parser.Options{Reporter: rep, MaxErrors: maxErrors})
		return nil
	})
	if bag.HasErrors() || !parsed.OK() {
		bag.Sort()
		return "", &ParseError{Path: path, Bag: bag, FileSet: fileSet}
	}

	if err := r.phase(parent, "patch", func() error {
		return format.Patch(parsed.Tree, r.opts.Options)
	}); err != nil {
		return "", err
	}
	var out string
	if err := r.phase(parent, "render", func() (err error) {
		out, err = format.Render(parsed.Tree, r.opts.Options)
		return err
	}); err != nil {
		return "", err
	}
	if r.opts.Verify {
		if err := r.phase(parent, "verify", func() error {
			return format.CheckRoundTrip(sf, r.opts.Options, r.maxDiag)
		}); err != nil {
			return "", err
		}
	}
	return out, nil
}

func resultDetail(res *FormatResult) string {
	switch {
	case res.Err != nil:
		return res.Err.Error()
	case res.Cached:
		return "cached"
	case res.Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

func (r *runner) knownFormatted(key project.Digest) bool {
	if r.cache == nil || r.opts.Verify {
		return false
	}
	var entry CacheEntry
	ok, err := r.cache.Get(key, &entry)
	if err != nil {
		trace.Point(r.tracer, trace.ScopeCache, "cache", "read: "+err.Error(), r.parent)
		return false
	}
	hit := ok && entry.Schema == diskCacheSchemaVersion
	if hit {
		trace.Point(r.tracer, trace.ScopeCache, "cache", "hit "+entry.Path, r.parent)
	}
	return hit
}

func (r *runner) remember(key project.Digest, path string) {
	if r.cache == nil {
		return
	}
	entry := &CacheEntry{Schema: diskCacheSchemaVersion, Path: path, Options: r.opts.Options.Fingerprint()}
	if err := r.cache.Put(key, entry); err != nil {
		trace.Point(r.tracer, trace.ScopeCache, "cache", "write: "+err.Error(), r.parent)
	}
}

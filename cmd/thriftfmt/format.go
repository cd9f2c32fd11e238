package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"thriftfmt/internal/diagfmt"
	"thriftfmt/internal/driver"
	"thriftfmt/internal/observ"
	"thriftfmt/internal/ui"
)

func newFmtCmd() *cobra.Command {
	fmtCmd := &cobra.Command{
		Use:   "fmt [flags] <path> [path...]",
		Short: "Format Thrift IDL files",
		Long: `Format rewrites .thrift files in place. Directories are walked recursively.
Use '-' (or no arguments) to read from stdin and write to stdout.`,
		RunE: runFmt,
	}
	f := fmtCmd.Flags()
	f.Bool("check", false, "check if files are properly formatted")
	f.String("format", "text", "output format (text|json)")
	f.Bool("stdout", false, "print formatted code to stdout instead of rewriting files")
	f.Bool("diff", false, "print a diff instead of rewriting files")
	f.Bool("verify", false, "re-parse and re-format the output to check it is stable")
	f.Bool("no-cache", false, "ignore the on-disk cache of formatted files")
	f.Int("jobs", 0, "max parallel workers (0=auto)")
	f.StringSlice("exclude", nil, "doublestar globs of paths to skip inside directories")
	f.String("ui", "auto", "progress view (auto|on|off)")
	addFormatFlags(fmtCmd)
	return fmtCmd
}

type fmtFlags struct {
	check, stdout, diff, verify, noCache bool
	output                               string
	jobs                                 int
	ui                                   uiMode
	quiet, timings                       bool
	maxDiagnostics                       int
	cacheDir                             string
}

func readFmtFlags(cmd *cobra.Command) (fmtFlags, error) {
	var ff fmtFlags
	var err error
	f := cmd.Flags()
	for name, dst := range map[string]*bool{
		"check": &ff.check, "stdout": &ff.stdout, "diff": &ff.diff,
		"verify": &ff.verify, "no-cache": &ff.noCache,
	} {
		if *dst, err = f.GetBool(name); err != nil {
			return ff, err
		}
	}
	if ff.output, err = f.GetString("format"); err != nil {
		return ff, err
	}
	if ff.jobs, err = f.GetInt("jobs"); err != nil {
		return ff, err
	}
	uiFlag, err := f.GetString("ui")
	if err != nil {
		return ff, err
	}
	if ff.ui, err = readUIMode(uiFlag); err != nil {
		return ff, err
	}
	pf := cmd.Root().PersistentFlags()
	if ff.quiet, err = pf.GetBool("quiet"); err != nil {
		return ff, err
	}
	if ff.timings, err = pf.GetBool("timings"); err != nil {
		return ff, err
	}
	if ff.maxDiagnostics, err = pf.GetInt("max-diagnostics"); err != nil {
		return ff, err
	}
	if ff.cacheDir, err = pf.GetString("cache-dir"); err != nil {
		return ff, err
	}

	switch {
	case ff.output != "text" && ff.output != "json":
		return ff, fmt.Errorf("fmt: unsupported output format %q", ff.output)
	case ff.stdout && ff.check:
		return ff, errors.New("fmt: --stdout cannot be used with --check")
	case ff.stdout && ff.diff:
		return ff, errors.New("fmt: --stdout cannot be used with --diff")
	case ff.stdout && ff.output != "text":
		return ff, errors.New("fmt: --stdout is only supported with text output")
	}
	return ff, nil
}

func runFmt(cmd *cobra.Command, args []string) error {
	ff, err := readFmtFlags(cmd)
	if err != nil {
		return err
	}
	opts, excludes, root, err := resolveFormatOptions(cmd, args)
	if err != nil {
		return err
	}

	var timer *observ.Timer
	if ff.timings {
		timer = observ.NewTimer()
	}
	diffMode := driver.DiffNone
	if ff.diff {
		diffMode = driver.DiffPatch
		if ff.check {
			diffMode = driver.DiffUnified
		}
	}
	fopts := driver.FormatOptions{
		Options:        opts,
		Excludes:       excludes,
		Jobs:           ff.jobs,
		Check:          ff.check,
		Stdout:         ff.stdout,
		Diff:           diffMode,
		Verify:         ff.verify,
		NoCache:        ff.noCache,
		CacheDir:       ff.cacheDir,
		MaxDiagnostics: ff.maxDiagnostics,
		Timer:          timer,
	}

	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		return runFmtStdin(cmd, ff, fopts)
	}

	var (
		results []driver.FormatResult
		runErr  error
	)
	phase := timer.Begin("format")
	if !ff.stdout && !ff.quiet && ff.output == "text" && shouldUseTUI(ff.ui, cmd.ErrOrStderr()) {
		err = ui.RunBatch("thriftfmt fmt", cmd.ErrOrStderr(), func(observe driver.ProgressObserver) {
			fopts.Observer = observe
			results, runErr = driver.FormatPaths(cmd.Context(), args, fopts)
		})
		if err != nil {
			return err
		}
	} else {
		results, runErr = driver.FormatPaths(cmd.Context(), args, fopts)
	}
	timer.End(phase, fmt.Sprintf("%d files", len(results)))
	if runErr != nil {
		return runErr
	}

	out := cmd.OutOrStdout()
	switch ff.output {
	case "json":
		if err := renderFmtJSON(out, results, ff, timer); err != nil {
			return err
		}
	default:
		renderFmtText(cmd, results, ff, root)
		if ff.timings {
			fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
		}
	}

	if driver.Failed(results) {
		return errReported
	}
	if ff.check && driver.AnyChanged(results) {
		return errReported
	}
	return nil
}

func runFmtStdin(cmd *cobra.Command, ff fmtFlags, fopts driver.FormatOptions) error {
	src, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return err
	}
	res, err := driver.FormatSource(cmd.Context(), "<stdin>", src, fopts)
	if err != nil {
		return err
	}
	if res.Err != nil {
		reportFileError(cmd, res.Path, res.Err, "")
		return errReported
	}
	switch {
	case ff.check:
		if res.Changed && ff.diff {
			fmt.Fprint(cmd.OutOrStdout(), res.Diff)
		}
		if res.Changed {
			return errReported
		}
	case ff.diff:
		fmt.Fprint(cmd.OutOrStdout(), res.Diff)
	default:
		writeOut(cmd.OutOrStdout(), res.Formatted)
	}
	return nil
}

func renderFmtText(cmd *cobra.Command, results []driver.FormatResult, ff fmtFlags, root string) {
	out := cmd.OutOrStdout()
	var changed, failed, unchanged int
	for _, res := range results {
		if res.Err != nil {
			failed++
			reportFileError(cmd, res.Path, res.Err, root)
			continue
		}
		if ff.stdout {
			writeOut(out, res.Formatted)
			continue
		}
		if !res.Changed {
			unchanged++
			continue
		}
		changed++
		switch {
		case ff.diff:
			fmt.Fprint(out, res.Diff)
		case ff.check:
			if !ff.quiet {
				fmt.Fprintln(out, res.Path)
			}
		case !ff.quiet:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		}
	}
	if ff.quiet || ff.stdout || len(results) < 2 {
		return
	}
	verb := "reformatted"
	if ff.check || ff.diff {
		verb = "would reformat"
	}
	parts := []string{fmt.Sprintf("%d %s", changed, verb), fmt.Sprintf("%d unchanged", unchanged)}
	if failed > 0 {
		parts = append(parts, color.New(color.FgRed, color.Bold).Sprintf("%d failed", failed))
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", color.New(color.Bold).Sprintf("%d files", len(results)), strings.Join(parts, ", "))
}

type fmtJSONResult struct {
	Path        string                   `json:"path"`
	Changed     bool                     `json:"changed"`
	Cached      bool                     `json:"cached,omitempty"`
	Check       bool                     `json:"check"`
	Error       string                   `json:"error,omitempty"`
	Diff        string                   `json:"diff,omitempty"`
	Diagnostics []diagfmt.DiagnosticJSON `json:"diagnostics,omitempty"`
}

type fmtJSONPayload struct {
	Results []fmtJSONResult `json:"results"`
	Timings *observ.Report  `json:"timings,omitempty"`
}

func renderFmtJSON(w io.Writer, results []driver.FormatResult, ff fmtFlags, timer *observ.Timer) error {
	payload := fmtJSONPayload{Results: make([]fmtJSONResult, 0, len(results))}
	for _, res := range results {
		jr := fmtJSONResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, Check: ff.check, Diff: res.Diff}
		if res.Err != nil {
			jr.Error = res.Err.Error()
			var perr *driver.ParseError
			if errors.As(res.Err, &perr) {
				jr.Diagnostics = diagfmt.BuildDiagnosticsOutput(perr.Bag, perr.FileSet, diagfmt.JSONOpts{
					IncludePositions: true,
					IncludeNotes:     true,
				}).Diagnostics
			}
		}
		payload.Results = append(payload.Results, jr)
	}
	if timer != nil {
		report := timer.Report()
		payload.Timings = &report
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

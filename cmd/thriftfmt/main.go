package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"thriftfmt/internal/version"
)

// errReported — ошибка уже напечатана (диагностики, список файлов); main
// только выставляет код выхода.
var errReported = errors.New("reported")

// app holds per-run state shared by the commands.
type app struct {
	cleanups []func()
}

func (a *app) onExit(fn func()) {
	if fn != nil {
		a.cleanups = append(a.cleanups, fn)
	}
}

// cleanup runs the registered hooks in reverse order.
func (a *app) cleanup() {
	for i := len(a.cleanups) - 1; i >= 0; i-- {
		a.cleanups[i]()
	}
	a.cleanups = nil
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := &app{}
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	a.cleanup()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(stderr, "thriftfmt: %v\n", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "thriftfmt",
		Short:         "Canonical formatter for Thrift IDL",
		Long:          `thriftfmt rewrites Thrift IDL files into one canonical layout, keeping comments`,
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			on, err := colorEnabled(cmd, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			color.NoColor = !on
			stopProf, err := setupProfiling(cmd)
			if err != nil {
				return err
			}
			a.onExit(stopProf)
			stopTrace, err := setupTracing(cmd)
			if err != nil {
				return err
			}
			a.onExit(stopTrace)
			return nil
		},
	}

	// Добавляем команды
	rootCmd.AddCommand(newFmtCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCacheCmd())

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("quiet", false, "suppress non-essential output")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to show")
	pf.String("cache-dir", "", "cache directory (default: $XDG_CACHE_HOME/thriftfmt)")
	pf.String("trace", "", "write trace events to file ('-' for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("trace-mode", "stream", "trace storage (stream|ring|both)")
	pf.Int("trace-ring-size", 4096, "ring buffer capacity for ring mode")
	pf.Duration("trace-heartbeat", 0, "emit heartbeat events at this interval (0 = off)")
	pf.String("cpuprofile", "", "write CPU profile to file")
	pf.String("memprofile", "", "write heap profile to file on exit")
	pf.String("runtime-trace", "", "write Go runtime trace to file")

	return rootCmd
}

// isTerminal проверяет, является ли writer терминалом
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// colorEnabled resolves --color for output going to w.
func colorEnabled(cmd *cobra.Command, w io.Writer) (bool, error) {
	mode, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch mode {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "auto", "":
		return isTerminal(w), nil
	default:
		return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", mode)
	}
}

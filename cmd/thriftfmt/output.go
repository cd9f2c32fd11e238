package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"thriftfmt/internal/diag"
	"thriftfmt/internal/diagfmt"
	"thriftfmt/internal/driver"
	"thriftfmt/internal/source"
)

// printDiagnostics renders a bag to stderr honouring --color.
func printDiagnostics(cmd *cobra.Command, bag *diag.Bag, fs *source.FileSet, baseDir string) error {
	useColor, err := colorEnabled(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	diagfmt.Pretty(cmd.ErrOrStderr(), bag, fs, diagfmt.PrettyOpts{
		Color:     useColor,
		Context:   1,
		PathMode:  diagfmt.PathModeAuto,
		BaseDir:   baseDir,
		ShowNotes: true,
	})
	return nil
}

// reportFileError prints a per-file failure: diagnostics for syntax errors,
// one line for anything else.
func reportFileError(cmd *cobra.Command, path string, err error, baseDir string) {
	var perr *driver.ParseError
	if errors.As(err, &perr) {
		if printErr := printDiagnostics(cmd, perr.Bag, perr.FileSet, baseDir); printErr == nil {
			return
		}
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "fmt: %s: %v\n", path, err)
}

func writeOut(w io.Writer, data []byte) {
	if _, err := w.Write(data); err != nil {
		panic(err)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"thriftfmt/internal/prof"
)

// setupProfiling reads the persistent profiling flags and starts the
// requested profilers. The returned cleanup is nil when nothing is enabled.
func setupProfiling(cmd *cobra.Command) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	var cfg prof.Config
	var err error
	if cfg.CPUProfile, err = pf.GetString("cpuprofile"); err != nil {
		return nil, err
	}
	if cfg.MemProfile, err = pf.GetString("memprofile"); err != nil {
		return nil, err
	}
	if cfg.RuntimeTrace, err = pf.GetString("runtime-trace"); err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return nil, nil
	}

	session, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	errOut := cmd.ErrOrStderr()
	return func() {
		if err := session.Stop(); err != nil {
			fmt.Fprintf(errOut, "thriftfmt: %v\n", err)
		}
	}, nil
}

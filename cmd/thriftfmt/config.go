package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thriftfmt/internal/format"
	"thriftfmt/internal/project"
)

// addFormatFlags registers the flags that override format.Options.
func addFormatFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("config", "", "path to "+project.ConfigName+" (default: discovered from the first input)")
	f.Int("indent", 4, "indent width in spaces")
	f.Bool("no-comments", false, "drop comments from the output")
	f.Bool("no-patch-required", false, "do not add 'required' to fields without requiredness")
	f.Bool("no-patch-separator", false, "do not normalize list separators to ','")
	f.String("align", "assign", "alignment of fields and enum values (none|assign|part)")
}

// resolveFormatOptions builds options as defaults < config file < flags the
// user actually set. It also returns the exclusion globs and the project root
// ("" when there is no config).
func resolveFormatOptions(cmd *cobra.Command, paths []string) (opts format.Options, excludes []string, root string, err error) {
	opts = format.DefaultOptions()
	flags := cmd.Flags()

	cfgPath, err := flags.GetString("config")
	if err != nil {
		return opts, nil, "", err
	}
	var cfg *project.Config
	switch {
	case cfgPath != "":
		cfg, err = project.Load(cfgPath)
	default:
		start := "."
		if len(paths) > 0 && paths[0] != "-" {
			start = paths[0]
		}
		if _, statErr := os.Stat(start); statErr == nil {
			cfg, _, err = project.Discover(start)
		}
	}
	if err != nil {
		return opts, nil, "", err
	}
	if cfg != nil {
		opts = cfg.Apply(opts)
		excludes = cfg.Excludes()
		root, _, _ = project.FindProjectRoot(cfg.Path)
	}

	if flags.Changed("indent") {
		if opts.IndentWidth, err = flags.GetInt("indent"); err != nil {
			return opts, nil, "", err
		}
	}
	for name, dst := range map[string]*bool{
		"no-comments":        &opts.KeepComments,
		"no-patch-required":  &opts.PatchRequired,
		"no-patch-separator": &opts.PatchSeparator,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetBool(name)
		if err != nil {
			return opts, nil, "", err
		}
		*dst = !v
	}
	if flags.Changed("align") {
		s, err := flags.GetString("align")
		if err != nil {
			return opts, nil, "", err
		}
		mode, err := format.ParseAlignMode(s)
		if err != nil {
			return opts, nil, "", err
		}
		opts = opts.WithAlign(mode)
	}
	if flags.Lookup("exclude") != nil && flags.Changed("exclude") {
		extra, err := flags.GetStringSlice("exclude")
		if err != nil {
			return opts, nil, "", err
		}
		excludes = append(excludes, extra...)
	}

	if err := opts.Validate(); err != nil {
		return opts, nil, "", fmt.Errorf("invalid options: %w", err)
	}
	return opts, excludes, root, nil
}

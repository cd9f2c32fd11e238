package project

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar/v4"

	"thriftfmt/internal/format"
)

// ErrConfigInvalid wraps every problem found in a configuration file.
var ErrConfigInvalid = errors.New("invalid configuration")

// Config is the decoded .thriftfmt.toml. Pointer fields stay nil when the key
// is absent so only keys written in the file override defaults.
type Config struct {
	Path   string        `toml:"-"`
	Format FormatSection `toml:"format"`
	Files  FilesSection  `toml:"files"`
}

type FormatSection struct {
	Indent         *int    `toml:"indent"`
	KeepComments   *bool   `toml:"keep_comments"`
	PatchRequired  *bool   `toml:"patch_required"`
	PatchSeparator *bool   `toml:"patch_separator"`
	Align          *string `toml:"align"`
}

type FilesSection struct {
	Exclude []string `toml:"exclude"`
}

// Load decodes and validates a config file. Unknown keys are errors.
func Load(path string) (*Config, error) {
	cfg := &Config{Path: path}
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrConfigInvalid, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		slices.Sort(keys)
		return nil, fmt.Errorf("%s: %w: unknown keys: %s", path, ErrConfigInvalid, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", path, ErrConfigInvalid, err)
	}
	return cfg, nil
}

// Discover finds the config for startPath and loads it. ok is false when no
// config file exists up to the filesystem root.
func Discover(startPath string) (cfg *Config, ok bool, err error) {
	path, ok, err := FindConfig(startPath)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err = Load(path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

func (c *Config) validate() error {
	if c.Format.Indent != nil && *c.Format.Indent < 0 {
		return fmt.Errorf("format.indent must be >= 0, got %d", *c.Format.Indent)
	}
	if c.Format.Align != nil {
		if _, err := format.ParseAlignMode(*c.Format.Align); err != nil {
			return fmt.Errorf("format.align: %w", err)
		}
	}
	for _, pat := range c.Files.Exclude {
		if !doublestar.ValidatePattern(pat) {
			return fmt.Errorf("files.exclude: bad glob %q", pat)
		}
	}
	return nil
}

// Apply overlays the keys present in the file onto base.
func (c *Config) Apply(base format.Options) format.Options {
	if c == nil {
		return base
	}
	f := c.Format
	if f.Indent != nil {
		base.IndentWidth = *f.Indent
	}
	if f.KeepComments != nil {
		base.KeepComments = *f.KeepComments
	}
	if f.PatchRequired != nil {
		base.PatchRequired = *f.PatchRequired
	}
	if f.PatchSeparator != nil {
		base.PatchSeparator = *f.PatchSeparator
	}
	if f.Align != nil {
		mode, err := format.ParseAlignMode(*f.Align)
		if err == nil {
			base = base.WithAlign(mode)
		}
	}
	return base
}

// Excludes returns the exclusion globs of the file.
func (c *Config) Excludes() []string {
	if c == nil {
		return nil
	}
	return slices.Clone(c.Files.Exclude)
}

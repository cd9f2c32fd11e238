package format

import (
	"fmt"
	"strings"
)

// AlignMode selects how sibling fields are column-aligned.
type AlignMode uint8

const (
	AlignNone AlignMode = iota
	// AlignAssign lines up '=' of fields and enum values.
	AlignAssign
	// AlignPart lines up every sub-part of a field (id, requiredness, type, ...).
	AlignPart
)

func (m AlignMode) String() string {
	switch m {
	case AlignAssign:
		return "assign"
	case AlignPart:
		return "part"
	default:
		return "none"
	}
}

// ParseAlignMode parses none|assign|part.
func ParseAlignMode(s string) (AlignMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return AlignNone, nil
	case "assign":
		return AlignAssign, nil
	case "part":
		return AlignPart, nil
	}
	return AlignNone, fmt.Errorf("unknown align mode %q (want none, assign or part)", s)
}

type Options struct {
	IndentWidth    int
	KeepComments   bool
	PatchRequired  bool
	PatchSeparator bool
	AlignByAssign  bool
	AlignByPart    bool
}

// DefaultOptions returns the canonical configuration.
func DefaultOptions() Options {
	return Options{
		IndentWidth:    4,
		KeepComments:   true,
		PatchRequired:  true,
		PatchSeparator: true,
		AlignByAssign:  true,
		AlignByPart:    false,
	}
}

// Align resolves the two alignment flags; part alignment wins.
func (o Options) Align() AlignMode {
	switch {
	case o.AlignByPart:
		return AlignPart
	case o.AlignByAssign:
		return AlignAssign
	default:
		return AlignNone
	}
}

// WithAlign returns a copy with both alignment flags set from mode.
func (o Options) WithAlign(mode AlignMode) Options {
	o.AlignByAssign = mode == AlignAssign
	o.AlignByPart = mode == AlignPart
	return o
}

func (o Options) Validate() error {
	if o.IndentWidth < 0 {
		return fmt.Errorf("format: indent width must be >= 0, got %d", o.IndentWidth)
	}
	return nil
}

// Fingerprint is a stable string identifying the options, used as a cache key.
func (o Options) Fingerprint() string {
	return fmt.Sprintf("i%d/c%t/r%t/s%t/a%s", o.IndentWidth, o.KeepComments, o.PatchRequired, o.PatchSeparator, o.Align())
}

// pure is the configuration of isolated renders: no comments, no alignment.
func (o Options) pure() Options {
	o.KeepComments = false
	o.AlignByAssign = false
	o.AlignByPart = false
	return o
}

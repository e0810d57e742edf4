// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for Grid. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper (internal).
package sparse

// DuplicatePolicy selects what AddEntry does when the target cell already
// holds an entry.
type DuplicatePolicy int

const (
	// KeepAll appends unconditionally; duplicates coexist and the earliest
	// one in storage order is the visible one.
	KeepAll DuplicatePolicy = iota

	// Overwrite updates the value of the first matching entry in place and
	// keeps its storage position; a cell never holds more than one entry.
	Overwrite
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDuplicatePolicy keeps every inserted entry.
	DefaultDuplicatePolicy = KeepAll

	// DefaultSeparator separates cells on a rendered line.
	DefaultSeparator = " "
)

const panicSeparatorEmpty = "sparse: WithSeparator: separator must be non-empty"

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	duplicates DuplicatePolicy // DefaultDuplicatePolicy
	separator  string          // DefaultSeparator
}

// WithOverwrite makes AddEntry update an existing entry at the same
// coordinate instead of appending a second one.
func WithOverwrite() Option {
	return func(o *Options) { o.duplicates = Overwrite }
}

// WithSeparator sets the string written between cells by String and WriteTo.
// Panics if sep is empty: rows would no longer be splittable into cells.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// DuplicatePolicy reports the configured duplicate policy.
func (o Options) DuplicatePolicy() DuplicatePolicy { return o.duplicates }

// Separator reports the configured cell separator.
func (o Options) Separator() string { return o.separator }

// gatherOptions resolves user setters on top of the defaults.
// Setters apply in order; last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		duplicates: DefaultDuplicatePolicy,
		separator:  DefaultSeparator,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}

// SPDX-License-Identifier: MIT

// Package sparse: domain types. Errors and options live in errors.go and
// options.go.
package sparse

import (
	"fmt"
	"io"
)

// Entry is one explicitly stored cell of a Grid.
// Entries are plain values; a Grid hands out copies, never references.
type Entry struct {
	Row   int // 0 <= Row < Grid.Rows()
	Col   int // 0 <= Col < Grid.Cols()
	Value int // stored value (may be 0 if the caller stored one explicitly)
}

// Grid is a rows×cols integer grid backed by an ordered list of entries.
//
// Storage order is insertion order. It only matters when duplicates share a
// coordinate: the first one in storage order is the visible one.
type Grid struct {
	rows, cols int     // current dimensions; cols shrinks via RemoveColumn
	entries    []Entry // stored cells, insertion order
	opts       Options // resolved configuration
}

// Compile-time assertions for fmt.Stringer and io.WriterTo conformance.
var (
	_ fmt.Stringer = (*Grid)(nil)
	_ io.WriterTo  = (*Grid)(nil)
)

// SPDX-License-Identifier: MIT

// Package sparse: Grid constructor, accessors and mutations.
package sparse

import (
	"fmt"
)

// ---------- error context tags ----------

const (
	ctxAddEntry     = "AddEntry"
	ctxAt           = "At"
	ctxRemoveColumn = "RemoveColumn"
)

// gridErrorf wraps an error with a uniform Grid context and callsite indices.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// New creates an empty rows×cols Grid.
//
// Zero dimensions are legal; negative ones return ErrBadShape.
// Options resolve on top of DefaultDuplicatePolicy and DefaultSeparator.
//
// Complexity: O(1).
func New(rows, cols int, opts ...Option) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("sparse.New(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Grid{
		rows: rows,
		cols: cols,
		opts: gatherOptions(opts...),
	}, nil
}

// Rows returns the number of rows in the grid.
// Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the current number of columns in the grid.
// Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of stored entries, duplicates included.
// Complexity: O(1).
func (g *Grid) Len() int { return len(g.entries) }

// Options returns the resolved configuration of the grid.
func (g *Grid) Options() Options { return g.opts }

// inBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// find returns the storage index of the first entry at (row, col), or -1.
func (g *Grid) find(row, col int) int {
	for i := range g.entries {
		if g.entries[i].Row == row && g.entries[i].Col == col {
			return i
		}
	}

	return -1
}

// AddEntry stores value at (row, col).
//
// Under KeepAll (default) the entry is appended even if the cell already has
// one; the older entry stays visible. Under Overwrite the first matching
// entry is updated in place.
//
// Errors:
//   - ErrOutOfRange if (row, col) is outside the grid; nothing is stored.
//
// Complexity: O(1) amortized under KeepAll, O(n) under Overwrite.
func (g *Grid) AddEntry(row, col, value int) error {
	if !g.inBounds(row, col) {
		return gridErrorf(ctxAddEntry, row, col, ErrOutOfRange)
	}
	if g.opts.duplicates == Overwrite {
		if i := g.find(row, col); i >= 0 {
			g.entries[i].Value = value
			return nil
		}
	}
	g.entries = append(g.entries, Entry{Row: row, Col: col, Value: value})

	return nil
}

// At returns the value of cell (row, col): the value of the first entry at
// that coordinate in storage order, or 0 if there is none.
//
// Errors:
//   - ErrOutOfRange if (row, col) is outside the grid.
//
// Complexity: O(n).
func (g *Grid) At(row, col int) (int, error) {
	if !g.inBounds(row, col) {
		return 0, gridErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	if i := g.find(row, col); i >= 0 {
		return g.entries[i].Value, nil
	}

	return 0, nil
}

// RemoveColumn deletes column col and shifts every column to its right one
// place left, then shrinks Cols() by one.
//
// Implementation:
//   - Stage 1: validate 0 <= col < Cols(); else ErrOutOfRange, grid unchanged.
//   - Stage 2: single pass over the old entries into a fresh slice:
//     Col == col is dropped, Col > col becomes Col-1, Col < col is copied.
//     Decisions use pre-shift columns only, so nothing cascades.
//   - Stage 3: swap in the new slice and decrement cols.
//
// Storage order of the surviving entries is preserved, so duplicate
// resolution is unaffected by the shift.
//
// Complexity: O(n) time, O(n) extra space.
func (g *Grid) RemoveColumn(col int) error {
	if col < 0 || col >= g.cols {
		return gridErrorf(ctxRemoveColumn, 0, col, ErrOutOfRange)
	}
	kept := make([]Entry, 0, len(g.entries))
	for _, e := range g.entries {
		switch {
		case e.Col == col:
			continue
		case e.Col > col:
			e.Col--
		}
		kept = append(kept, e)
	}
	g.entries = kept
	g.cols--

	return nil
}

// Entries returns a copy of the stored entries in storage order.
// Complexity: O(n).
func (g *Grid) Entries() []Entry {
	out := make([]Entry, len(g.entries))
	copy(out, g.entries)

	return out
}

// Clone returns an independent deep copy of the grid, options included.
// Complexity: O(n).
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:    g.rows,
		cols:    g.cols,
		entries: g.Entries(),
		opts:    g.opts,
	}
}

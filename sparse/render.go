// SPDX-License-Identifier: MIT

// Package sparse: dense rendering of a Grid (text and matrix.Dense).
package sparse

import (
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/sparsegrid/matrix"
)

const _fmtRowEnd = "\n"

// resolve materializes the grid into a row-major slice of rows*cols values.
// Entries are visited in storage order and a cell is written only once, so
// the first entry at a coordinate wins, exactly as in At.
// Complexity: O(n + rows*cols).
func (g *Grid) resolve() []int {
	vals := make([]int, g.rows*g.cols)
	set := make([]bool, len(vals))
	var idx int
	for _, e := range g.entries {
		idx = e.Row*g.cols + e.Col
		if set[idx] {
			continue
		}
		vals[idx] = e.Value
		set[idx] = true
	}

	return vals
}

// writeRow appends row i of vals to b: cols values joined by the separator,
// terminated by a newline.
func (g *Grid) writeRow(b *strings.Builder, vals []int, i int) {
	base := i * g.cols
	for j := 0; j < g.cols; j++ {
		if j > 0 {
			b.WriteString(g.opts.separator)
		}
		b.WriteString(strconv.Itoa(vals[base+j]))
	}
	b.WriteString(_fmtRowEnd)
}

// String renders the full dense grid: Rows() lines, each holding Cols()
// integers joined by the separator (default " ") and ending in "\n".
// Cells without an entry print 0. A grid with no rows renders as "".
//
// Example (4×5 with four entries):
//
//	0 0 0 0 0
//	0 5 0 0 4
//	1 0 0 0 0
//	0 -9 0 0 0
//
// Complexity: O(n + rows*cols).
func (g *Grid) String() string {
	vals := g.resolve()
	var b strings.Builder
	for i := 0; i < g.rows; i++ {
		g.writeRow(&b, vals, i)
	}

	return b.String()
}

// WriteTo streams the same text as String to w, one row per Write call.
// It returns the number of bytes written and the first write error.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	vals := g.resolve()
	var (
		b     strings.Builder
		total int64
	)
	for i := 0; i < g.rows; i++ {
		b.Reset()
		g.writeRow(&b, vals, i)
		n, err := io.WriteString(w, b.String())
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// ToDense materializes the grid as a Rows()×Cols() matrix.Dense, resolving
// duplicate coordinates the same way as At.
// Complexity: O(n + rows*cols).
func (g *Grid) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(g.rows, g.cols)
	if err != nil {
		return nil, err
	}
	vals := g.resolve()
	var i, j int
	for i = 0; i < g.rows; i++ {
		for j = 0; j < g.cols; j++ {
			if v := vals[i*g.cols+j]; v != 0 {
				if err = d.Set(i, j, v); err != nil {
					return nil, err
				}
			}
		}
	}

	return d, nil
}

// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a flat row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep determinism: fixed loop orders, no map iteration.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); RemoveColumn: O(r*c).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt           = "At"           // method tag used in error wrappers
	ctxSet          = "Set"          // method tag used in error wrappers
	ctxRemoveColumn = "RemoveColumn" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtSep    = " "
	_fmtRowEnd = "\n"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Keep tags in constants for grep-ability and consistency.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major integer matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int   // row and column counts
	data []int // contiguous row-major storage (len == r*c)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled buffer.
//
// Zero-area shapes (0×N, N×0) are legal: they mirror a sparse grid whose
// last column was removed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{
		r:    rows,
		c:    cols,
		data: make([]int, rows*cols), // make() zero-fills deterministically
	}, nil
}

// Rows returns the number of rows in the matrix.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns a wrapped ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]int, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// RemoveColumn returns a new r×(c-1) matrix equal to m with column col cut
// out; columns to the right of col move one place left. m is not modified.
//
// Errors:
//   - ErrOutOfRange when col is not in [0, Cols()).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) RemoveColumn(col int) (*Dense, error) {
	if col < 0 || col >= m.c {
		return nil, denseErrorf(ctxRemoveColumn, 0, col, ErrOutOfRange)
	}
	nc := m.c - 1
	res := &Dense{r: m.r, c: nc, data: make([]int, m.r*nc)}

	var i, j, dst int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			res.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return res, nil
}

// String renders the matrix as r lines of c space-separated integers,
// each line terminated by a newline.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(strconv.Itoa(m.data[base+j]))
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// SPDX-License-Identifier: MIT

// Package matrix provides a small row-major dense integer matrix.
//
// What:
//
//   - Dense stores r×c int values in one flat slice (offset = i*c + j).
//   - At/Set are bounds-checked and return ErrOutOfRange instead of panicking.
//   - RemoveColumn materializes a copy with one column cut out.
//   - String renders rows as space-separated values, one line per row.
//
// Why:
//
//	Dense is the fully materialized form of a sparse.Grid (see Grid.ToDense)
//	and the straightforward reference against which sparse column removal
//	is checked: both types render with the same text layout, so their
//	String outputs compare byte-for-byte.
//
// Complexity:
//
//   - NewDense, Clone, RemoveColumn, String: O(r*c).
//   - Rows, Cols, At, Set: O(1).
//
// Errors:
//
//   - ErrBadShape: negative dimensions.
//   - ErrOutOfRange: row or column index outside the matrix.
package matrix

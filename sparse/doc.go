// SPDX-License-Identifier: MIT

// Package sparse provides Grid, a fixed-size 2-D integer array in which
// almost every cell holds the default value 0 and only a few explicitly
// stored entries hold something else.
//
// What:
//
//   - A Grid has Rows()×Cols() cells and an ordered list of Entry values
//     (row, column, value). Cells without an entry read as 0.
//   - AddEntry appends an entry; At looks a cell up; RemoveColumn deletes a
//     column and renumbers everything to its right; String renders the dense
//     grid.
//
// Duplicate entries:
//
//	Under the default policy (KeepAll) AddEntry never deduplicates, so two
//	entries may share a coordinate. At, String, WriteTo and ToDense all
//	resolve such a cell to the FIRST matching entry in storage order, i.e.
//	the earliest insertion wins. WithOverwrite() switches AddEntry to update
//	the first matching entry in place instead of appending.
//
// Column removal:
//
//	RemoveColumn(col) rebuilds the entry list in one pass: entries in col
//	are dropped, entries right of col move one column left, entries left of
//	col are kept as is. Every decision is made against the column an entry
//	had before the call, and storage order is preserved.
//
// Errors:
//
//   - ErrBadShape: New called with a negative dimension.
//   - ErrOutOfRange: AddEntry, At or RemoveColumn called with a coordinate
//     outside the grid. The grid is left unchanged.
//
// Concurrency:
//
//	A Grid carries no locks. Callers that share one across goroutines must
//	serialize access themselves.
//
// Complexity:
//
//   - AddEntry: O(1) amortized (O(n) with WithOverwrite).
//   - At: O(n), n = stored entries.
//   - RemoveColumn: O(n).
//   - String / WriteTo / ToDense: O(n + rows*cols).
package sparse

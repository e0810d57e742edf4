// SPDX-License-Identifier: MIT
// Package sparse: sentinel errors. Methods wrap them with call-site context;
// match with errors.Is.

package sparse

import "errors"

var (
	// ErrBadShape is returned by New when rows or cols is negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the grid.
	ErrOutOfRange = errors.New("sparse: index out of range")
)

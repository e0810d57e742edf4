// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Methods wrap these with call-site context via fmt.Errorf("...: %w", ErrX);
// callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when a requested shape has a negative dimension.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/RemoveColumn) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)

// SPDX-License-Identifier: MIT
package sparse_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsegrid/sparse"
)

const referenceRender = "0 0 0 0 0\n" +
	"0 5 0 0 4\n" +
	"1 0 0 0 0\n" +
	"0 -9 0 0 0\n"

// TestString_ReferenceScenario checks the rendering of the 4×5 reference grid.
func TestString_ReferenceScenario(t *testing.T) {
	g := mustGrid(t, 4, 5, referenceEntries)
	require.Equal(t, referenceRender, g.String())
	// no mutation, same result
	require.Equal(t, referenceRender, g.String())
	require.Equal(t, 4, g.Len())
}

// TestString_Shape verifies Rows() lines of Cols() values for several shapes.
func TestString_Shape(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"Reference", 4, 5},
		{"Wide", 1, 12},
		{"Tall", 9, 1},
		{"NoCols", 3, 0},
		{"NoRows", 0, 3},
		{"Large", 30, 30},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustGrid(t, tc.rows, tc.cols, nil)
			if tc.rows > 0 && tc.cols > 0 {
				require.NoError(t, g.AddEntry(tc.rows-1, tc.cols-1, -3))
			}
			lines := strings.Split(g.String(), "\n")
			// trailing newline after the last row leaves one empty tail element
			require.Len(t, lines, tc.rows+1)
			require.Empty(t, lines[tc.rows])
			for _, line := range lines[:tc.rows] {
				require.Len(t, strings.Fields(line), tc.cols)
				require.False(t, strings.HasSuffix(line, " "), "no trailing separator")
			}
		})
	}
}

// TestString_Separator checks WithSeparator.
func TestString_Separator(t *testing.T) {
	g := mustGrid(t, 2, 3, [][3]int{{0, 0, 1}, {1, 2, -2}}, sparse.WithSeparator("\t"))
	require.Equal(t, "1\t0\t0\n0\t0\t-2\n", g.String())
}

// TestWithSeparator_PanicsOnEmpty ensures the nonsensical empty separator is rejected.
func TestWithSeparator_PanicsOnEmpty(t *testing.T) {
	require.Panics(t, func() { sparse.WithSeparator("") })
}

// TestOptions_Defaults checks the resolved defaults and option overrides.
func TestOptions_Defaults(t *testing.T) {
	g := mustGrid(t, 1, 1, nil)
	assert.Equal(t, sparse.KeepAll, g.Options().DuplicatePolicy())
	assert.Equal(t, sparse.DefaultSeparator, g.Options().Separator())

	g = mustGrid(t, 1, 1, nil, sparse.WithOverwrite(), sparse.WithSeparator(";"), sparse.WithSeparator(","))
	assert.Equal(t, sparse.Overwrite, g.Options().DuplicatePolicy())
	assert.Equal(t, ",", g.Options().Separator(), "last writer wins")
}

// TestWriteTo matches String byte-for-byte and reports the byte count.
func TestWriteTo(t *testing.T) {
	g := mustGrid(t, 4, 5, referenceEntries)
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(len(referenceRender)), n)
	require.Equal(t, referenceRender, buf.String())
}

var errSinkFull = errors.New("sink full")

// limitWriter accepts a fixed number of Write calls and then fails.
type limitWriter struct {
	calls int
	buf   bytes.Buffer
}

func (w *limitWriter) Write(p []byte) (int, error) {
	if w.calls == 0 {
		return 0, errSinkFull
	}
	w.calls--

	return w.buf.Write(p)
}

// TestWriteTo_Error stops at the first failing write and counts what got through.
func TestWriteTo_Error(t *testing.T) {
	g := mustGrid(t, 4, 5, referenceEntries)
	w := &limitWriter{calls: 2}
	n, err := g.WriteTo(w)
	require.ErrorIs(t, err, errSinkFull)
	require.Equal(t, "0 0 0 0 0\n0 5 0 0 4\n", w.buf.String())
	require.Equal(t, int64(w.buf.Len()), n)
}

// TestToDense matches the sparse rendering and resolves duplicates like At.
func TestToDense(t *testing.T) {
	g := mustGrid(t, 4, 5, append(append([][3]int{}, referenceEntries...), [3]int{1, 4, 99}))
	d, err := g.ToDense()
	require.NoError(t, err)
	require.Equal(t, g.Rows(), d.Rows())
	require.Equal(t, g.Cols(), d.Cols())
	require.Equal(t, referenceRender, d.String())

	v, err := d.At(1, 4)
	require.NoError(t, err)
	require.Equal(t, 4, v)
}

// TestToDense_ZeroArea converts a grid without columns.
func TestToDense_ZeroArea(t *testing.T) {
	g := mustGrid(t, 2, 0, nil)
	d, err := g.ToDense()
	require.NoError(t, err)
	require.Equal(t, 2, d.Rows())
	require.Equal(t, 0, d.Cols())
}

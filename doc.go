// Package sparsegrid is a small in-memory library for sparse 2-D integer
// grids: fixed-size arrays in which almost every cell is 0 and only a few
// cells are stored explicitly.
//
// Under the hood, everything is organized under two subpackages:
//
//	sparse/  Grid: entry insertion, point lookup, column removal with
//	         renumbering, dense rendering
//	matrix/  Dense: row-major int matrix, the materialized form of a Grid
//
// Quick example:
//
//	g, _ := sparse.New(4, 5)
//	_ = g.AddEntry(1, 4, 4)
//	_ = g.AddEntry(3, 1, -9)
//	_ = g.RemoveColumn(1) // (3,1) vanishes, (1,4) moves to (1,3)
//	fmt.Print(g)
//
// A runnable reference program lives in examples/.
//
//	go get github.com/katalvlaran/sparsegrid
package sparsegrid

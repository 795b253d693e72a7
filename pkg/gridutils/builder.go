package gridutils

import "github.com/riverfr0zen/sketches-sub000/pkg/core"

// GridBuilder fixes the dimensions and canvas size of a grid. Attach a cell
// generator with WithCellData before building.
type GridBuilder[T any] struct {
	rows, cols int
	canvas     Vec2
}

// NewBuilder begins constructing a rows x cols grid over canvas. No validation
// is done; pass rows > 0 and cols > 0 if cells are wanted.
func NewBuilder[T any](rows, cols int, canvas Vec2) GridBuilder[T] {
	return GridBuilder[T]{rows: rows, cols: cols, canvas: canvas}
}

// WithCellData stores fn for the build step. fn is not called here.
func (b GridBuilder[T]) WithCellData(fn GenerateFunc[T]) GridBuilderWithData[T] {
	return GridBuilderWithData[T]{GridBuilder: b, generate: fn}
}

// GridBuilderWithData is a GridBuilder with a cell generator attached.
type GridBuilderWithData[T any] struct {
	GridBuilder[T]
	generate GenerateFunc[T]
}

// Build allocates the grid and calls the generator exactly once per cell in
// row-major order, threading rng through every call. A grid with no cells is
// returned as-is without calling the generator.
func (b GridBuilderWithData[T]) Build(rng *core.RNG) *Grid[T] {
	g := newGrid[T](b.rows, b.cols, b.canvas)
	g.fill(rng, b.generate)
	return g
}

package gridutils

import (
	"iter"
	"math"

	"github.com/riverfr0zen/sketches-sub000/pkg/core"
)

// GenerateFunc produces the data for one cell. bounds is the cell-local
// rectangle (X=0, Y=0, Width=cell width, Height=cell height) and is identical
// for every cell. rng is shared across all calls of a build or regeneration.
type GenerateFunc[T any] func(row, col int, bounds Rect, rng *core.RNG) T

// Grid partitions a fixed canvas into rows x cols uniform cells and stores one
// value of type T per cell in row-major order.
//
// A Grid with zero (or negative) rows or cols is a valid empty grid. Cell sizes
// are derived once at construction by plain division, so such a grid reports
// infinite or NaN cell sizes.
type Grid[T any] struct {
	rows, cols int
	canvas     Vec2
	cellWidth  float64
	cellHeight float64
	cells      []T
}

func newGrid[T any](rows, cols int, canvas Vec2) *Grid[T] {
	return &Grid[T]{
		rows:       rows,
		cols:       cols,
		canvas:     canvas,
		cellWidth:  canvas.X / float64(cols),
		cellHeight: canvas.Y / float64(rows),
		cells:      make([]T, cellCount(rows, cols)),
	}
}

func cellCount(rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return 0
	}
	return rows * cols
}

// New builds a grid in one call. It is equivalent to
// NewBuilder[T](rows, cols, canvas).WithCellData(fn).Build(rng).
func New[T any](rows, cols int, canvas Vec2, rng *core.RNG, fn GenerateFunc[T]) *Grid[T] {
	return NewBuilder[T](rows, cols, canvas).WithCellData(fn).Build(rng)
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// CellWidth returns canvas width / cols.
func (g *Grid[T]) CellWidth() float64 { return g.cellWidth }

// CellHeight returns canvas height / rows.
func (g *Grid[T]) CellHeight() float64 { return g.cellHeight }

// TotalCells returns the number of stored cells, rows*cols for a non-empty grid.
func (g *Grid[T]) TotalCells() int { return len(g.cells) }

// CanvasSize returns the size of the partitioned canvas in pixels.
func (g *Grid[T]) CanvasSize() Vec2 { return g.canvas }

// Data exposes the flat row-major backing slice.
func (g *Grid[T]) Data() []T { return g.cells }

// Index returns the row-major slice index for (row, col).
func (g *Grid[T]) Index(row, col int) int { return row*g.cols + col }

// Coordinate converts a row-major index back to (row, col).
func (g *Grid[T]) Coordinate(idx int) (row, col int) {
	if g.cols <= 0 {
		return 0, 0
	}
	return idx / g.cols, idx % g.cols
}

// InBounds reports whether (row, col) addresses a stored cell.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid[T]) Wrap(row, col int) (int, int) {
	if g.rows <= 0 || g.cols <= 0 {
		return row, col
	}
	row = (row%g.rows + g.rows) % g.rows
	col = (col%g.cols + g.cols) % g.cols
	return row, col
}

// NormToPixels maps a canvas-normalized position to absolute pixels. Values
// outside [0, 1] extrapolate off the canvas.
func (g *Grid[T]) NormToPixels(norm Vec2) Vec2 { return norm.Mul(g.canvas) }

// PixelsToNorm maps absolute pixels to a canvas-normalized position.
func (g *Grid[T]) PixelsToNorm(px Vec2) Vec2 { return px.Div(g.canvas) }

// CellAt returns the cell containing the absolute pixel position p. Positions
// on the right or bottom canvas edge, or outside the canvas, report false.
func (g *Grid[T]) CellAt(p Vec2) (row, col int, ok bool) {
	if len(g.cells) == 0 {
		return 0, 0, false
	}
	fc := math.Floor(p.X / g.cellWidth)
	fr := math.Floor(p.Y / g.cellHeight)
	if math.IsNaN(fc) || math.IsNaN(fr) || fc < 0 || fr < 0 || fc >= float64(g.cols) || fr >= float64(g.rows) {
		return 0, 0, false
	}
	return int(fr), int(fc), true
}

func (g *Grid[T]) cell(row, col int) Cell {
	return Cell{
		Row:    row,
		Col:    col,
		Bounds: g.cellBounds(),
		Offset: Vec2{X: float64(col) * g.cellWidth, Y: float64(row) * g.cellHeight},
		canvas: g.canvas,
	}
}

func (g *Grid[T]) cellBounds() Rect {
	return Rect{Width: g.cellWidth, Height: g.cellHeight}
}

// Cells returns a row-major sequence of read-only cell views. Each view holds a
// copy of the cell's value. The sequence can be ranged over repeatedly.
func (g *Grid[T]) Cells() iter.Seq[CellContext[T]] {
	return func(yield func(CellContext[T]) bool) {
		for i := range g.cells {
			row, col := g.Coordinate(i)
			if !yield(CellContext[T]{Cell: g.cell(row, col), Data: g.cells[i]}) {
				return
			}
		}
	}
}

// CellsMut returns a row-major sequence of writable cell views. Only one view
// is handed out per loop step; its Data pointer should not be retained past it.
func (g *Grid[T]) CellsMut() iter.Seq[CellContextMut[T]] {
	return func(yield func(CellContextMut[T]) bool) {
		for i := range g.cells {
			row, col := g.Coordinate(i)
			if !yield(CellContextMut[T]{Cell: g.cell(row, col), Data: &g.cells[i]}) {
				return
			}
		}
	}
}

// Get returns a read-only view of (row, col). ok is false when the position is
// outside the grid.
func (g *Grid[T]) Get(row, col int) (CellContext[T], bool) {
	if !g.InBounds(row, col) {
		return CellContext[T]{}, false
	}
	return CellContext[T]{Cell: g.cell(row, col), Data: g.cells[g.Index(row, col)]}, true
}

// GetMut returns a writable view of (row, col). ok is false when the position
// is outside the grid.
func (g *Grid[T]) GetMut(row, col int) (CellContextMut[T], bool) {
	if !g.InBounds(row, col) {
		return CellContextMut[T]{}, false
	}
	return CellContextMut[T]{Cell: g.cell(row, col), Data: &g.cells[g.Index(row, col)]}, true
}

// Set overwrites the value at (row, col) and reports whether it was in range.
func (g *Grid[T]) Set(row, col int, v T) bool {
	if !g.InBounds(row, col) {
		return false
	}
	g.cells[g.Index(row, col)] = v
	return true
}

// RegenerateCells overwrites every cell with fn(row, col, bounds, rng), in
// row-major order, without changing dimensions or canvas size. A nil fn resets
// every cell to the zero value.
func (g *Grid[T]) RegenerateCells(rng *core.RNG, fn GenerateFunc[T]) {
	g.fill(rng, fn)
}

func (g *Grid[T]) fill(rng *core.RNG, fn GenerateFunc[T]) {
	bounds := g.cellBounds()
	var zero T
	for i := range g.cells {
		if fn == nil {
			g.cells[i] = zero
			continue
		}
		row, col := g.Coordinate(i)
		g.cells[i] = fn(row, col, bounds, rng)
	}
}

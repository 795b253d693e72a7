package gridutils

// Cell is the geometry of one grid cell together with its coordinate
// transforms. Offset is always (col*cellWidth, row*cellHeight), whether the
// cell came from iteration or from Get.
type Cell struct {
	Row, Col int
	// Bounds is the cell-local rectangle: X=0, Y=0, Width/Height = cell size.
	Bounds Rect
	// Offset is the absolute pixel position of the cell's top-left corner.
	Offset Vec2

	canvas Vec2
}

// CellContext is a read-only view of one cell. Data is a copy of the cell's
// value at the time the view was made.
type CellContext[T any] struct {
	Cell
	Data T
}

// CellContextMut is a writable view of one cell. Writes through Data land in
// the grid's storage.
type CellContextMut[T any] struct {
	Cell
	Data *T
}

// CanvasSize returns the size of the canvas the cell belongs to.
func (c Cell) CanvasSize() Vec2 { return c.canvas }

// Rect returns the cell's rectangle in absolute pixels.
func (c Cell) Rect() Rect { return c.Bounds.Translate(c.Offset) }

// Contains reports whether the absolute pixel position p lies in the cell.
func (c Cell) Contains(p Vec2) bool { return c.Rect().Contains(p) }

// Norm maps a cell-local normalized position to absolute pixels.
func (c Cell) Norm(local Vec2) Vec2 {
	return c.Offset.Add(local.Mul(c.Bounds.Size()))
}

// ToNorm maps absolute pixels to a cell-local normalized position.
func (c Cell) ToNorm(abs Vec2) Vec2 {
	return abs.Sub(c.Offset).Div(c.Bounds.Size())
}

// NormAbs maps a cell-local normalized position to a canvas-normalized one.
func (c Cell) NormAbs(local Vec2) Vec2 {
	return c.Norm(local).Div(c.canvas)
}

// FromNormAbs maps a canvas-normalized position to a cell-local normalized one.
func (c Cell) FromNormAbs(canvasNorm Vec2) Vec2 {
	return c.ToNorm(canvasNorm.Mul(c.canvas))
}

// Abs maps cell-local pixels to absolute pixels.
func (c Cell) Abs(local Vec2) Vec2 { return c.Offset.Add(local) }

// ToLocal maps absolute pixels to cell-local pixels.
func (c Cell) ToLocal(abs Vec2) Vec2 { return abs.Sub(c.Offset) }

// CenterNorm returns the cell-local normalized center, always (0.5, 0.5).
func (c Cell) CenterNorm() Vec2 { return Vec2{X: 0.5, Y: 0.5} }

// Center returns the cell center in absolute pixels.
func (c Cell) Center() Vec2 {
	return c.Offset.Add(c.Bounds.Size().Scale(0.5))
}

// CenterNormAbs returns the cell center in canvas-normalized coordinates.
func (c Cell) CenterNormAbs() Vec2 { return c.NormAbs(c.CenterNorm()) }

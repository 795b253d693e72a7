package gridutils

import "image/color"

// LinePainter is the drawing surface DrawOverlay emits to. Coordinates are
// absolute pixels.
type LinePainter interface {
	StrokeLine(from, to Vec2, width float64, col color.Color)
}

// OverlayStyle controls DrawOverlay.
type OverlayStyle struct {
	Color color.Color
	Width float64
	// SkipBorder omits the lines along the canvas edges.
	SkipBorder bool
}

// DefaultOverlayStyle is a thin translucent white line.
func DefaultOverlayStyle() OverlayStyle {
	return OverlayStyle{Color: color.RGBA{R: 255, G: 255, B: 255, A: 96}, Width: 1}
}

// DrawOverlay draws the cell boundaries as cols+1 vertical and rows+1
// horizontal lines. Empty grids draw nothing.
func (g *Grid[T]) DrawOverlay(p LinePainter, style OverlayStyle) {
	if p == nil || len(g.cells) == 0 {
		return
	}
	if style.Color == nil {
		style.Color = DefaultOverlayStyle().Color
	}
	if style.Width <= 0 {
		style.Width = 1
	}
	first, last := 0, 0
	if style.SkipBorder {
		first, last = 1, 1
	}
	for col := first; col <= g.cols-last; col++ {
		x := float64(col) * g.cellWidth
		p.StrokeLine(Vec2{X: x}, Vec2{X: x, Y: g.canvas.Y}, style.Width, style.Color)
	}
	for row := first; row <= g.rows-last; row++ {
		y := float64(row) * g.cellHeight
		p.StrokeLine(Vec2{Y: y}, Vec2{X: g.canvas.X, Y: y}, style.Width, style.Color)
	}
}

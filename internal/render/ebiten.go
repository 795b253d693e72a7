//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// EbitenCanvas draws onto an ebiten image, typically the window's screen.
type EbitenCanvas struct {
	dst       *ebiten.Image
	antialias bool
}

// NewEbitenCanvas wraps dst. Anti-aliasing is on by default.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{dst: dst, antialias: true}
}

// SetTarget switches the destination image, e.g. each frame's screen.
func (c *EbitenCanvas) SetTarget(dst *ebiten.Image) { c.dst = dst }

// SetAntialias toggles anti-aliased vector drawing.
func (c *EbitenCanvas) SetAntialias(on bool) { c.antialias = on }

func (c *EbitenCanvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

func (c *EbitenCanvas) FillRect(r gridutils.Rect, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), col, c.antialias)
}

func (c *EbitenCanvas) StrokeRect(r gridutils.Rect, width float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), float32(width), col, c.antialias)
}

func (c *EbitenCanvas) StrokeLine(from, to gridutils.Vec2, width float64, col color.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), col, c.antialias)
}

func (c *EbitenCanvas) FillCircle(center gridutils.Vec2, radius float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), col, c.antialias)
}

func (c *EbitenCanvas) StrokeCircle(center gridutils.Vec2, radius, width float64, col color.Color) {
	vector.StrokeCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), float32(width), col, c.antialias)
}

func (c *EbitenCanvas) StrokePolyline(points []gridutils.Vec2, width float64, col color.Color) {
	for i := 1; i < len(points); i++ {
		c.StrokeLine(points[i-1], points[i], width, col)
	}
}

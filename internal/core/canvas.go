package core

import (
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// Canvas is the drawing sink sketches render into. All coordinates are
// absolute pixels on the sketch canvas.
type Canvas interface {
	gridutils.LinePainter

	Clear(col color.Color)
	FillRect(r gridutils.Rect, col color.Color)
	StrokeRect(r gridutils.Rect, width float64, col color.Color)
	FillCircle(center gridutils.Vec2, radius float64, col color.Color)
	StrokeCircle(center gridutils.Vec2, radius, width float64, col color.Color)
	StrokePolyline(points []gridutils.Vec2, width float64, col color.Color)
}

package render

import (
	"image/color"
	"slices"

	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// OpKind names a recorded drawing call.
type OpKind string

const (
	OpClear          OpKind = "clear"
	OpFillRect       OpKind = "fill_rect"
	OpStrokeRect     OpKind = "stroke_rect"
	OpStrokeLine     OpKind = "stroke_line"
	OpFillCircle     OpKind = "fill_circle"
	OpStrokeCircle   OpKind = "stroke_circle"
	OpStrokePolyline OpKind = "stroke_polyline"
)

// Op is one recorded drawing call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   OpKind
	Rect   gridutils.Rect
	From   gridutils.Vec2
	To     gridutils.Vec2
	Radius float64
	Width  float64
	Points []gridutils.Vec2
	Color  color.NRGBA
}

// Recorder is a Canvas that keeps every call instead of drawing it.
type Recorder struct {
	Ops []Op
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Clear(col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpClear, Color: nrgba(col)})
}

func (r *Recorder) FillRect(rect gridutils.Rect, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillRect, Rect: rect, Color: nrgba(col)})
}

func (r *Recorder) StrokeRect(rect gridutils.Rect, width float64, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeRect, Rect: rect, Width: width, Color: nrgba(col)})
}

func (r *Recorder) StrokeLine(from, to gridutils.Vec2, width float64, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeLine, From: from, To: to, Width: width, Color: nrgba(col)})
}

func (r *Recorder) FillCircle(center gridutils.Vec2, radius float64, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, From: center, Radius: radius, Color: nrgba(col)})
}

func (r *Recorder) StrokeCircle(center gridutils.Vec2, radius, width float64, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, From: center, Radius: radius, Width: width, Color: nrgba(col)})
}

func (r *Recorder) StrokePolyline(points []gridutils.Vec2, width float64, col color.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokePolyline, Points: slices.Clone(points), Width: width, Color: nrgba(col)})
}

// Count returns how many calls of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Counts tallies the recorded calls per kind.
func (r *Recorder) Counts() map[OpKind]int {
	out := make(map[OpKind]int)
	for _, op := range r.Ops {
		out[op.Kind]++
	}
	return out
}

// Reset drops all recorded calls.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

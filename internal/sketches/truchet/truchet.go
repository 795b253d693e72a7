// Package truchet draws Truchet tiles: each cell holds two quarter-circle
// strips joining the midpoints of its edges, so neighbouring cells form
// continuous curves. Strips are cubic bezier curves laid out in cell-normalized
// space and mapped to pixels per cell.
package truchet

import (
	"image/color"
	"math"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/palette"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// kappa places cubic control points so the curve approximates a quarter
// circle.
const kappa = 0.5522847498

// Config holds parameters for the truchet sketch. Flip is the interval in
// seconds between single-tile flips; zero freezes the pattern.
type Config struct {
	Width    int
	Height   int
	Rows     int
	Cols     int
	Palette  string
	Segments int
	Stroke   float64
	Flip     float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:    800,
		Height:   800,
		Rows:     10,
		Cols:     10,
		Palette:  "ember",
		Segments: 16,
		Stroke:   0.18,
		Flip:     0.25,
	}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntOption(cfg, "width", c.Width, 1)
	c.Height = core.IntOption(cfg, "height", c.Height, 1)
	c.Rows = core.IntOption(cfg, "rows", c.Rows, 1)
	c.Cols = core.IntOption(cfg, "cols", c.Cols, 1)
	c.Palette = core.StringOption(cfg, "palette", c.Palette, palette.Valid)
	c.Segments = core.IntOption(cfg, "segments", c.Segments, 2)
	c.Stroke = core.FloatOption(cfg, "stroke", c.Stroke, 0.01, 0.5)
	c.Flip = core.FloatOption(cfg, "flip", c.Flip, 0, 3600)
	return c
}

type tile struct {
	flipped bool
	color   color.RGBA
}

// Truchet is the sketch state.
type Truchet struct {
	cfg     Config
	rng     *pcore.RNG
	pal     palette.Palette
	bg      color.RGBA
	grid    *gridutils.Grid[tile]
	strips  [2][2][]gridutils.Vec2
	elapsed float64
	flips   int
}

// New creates a truchet sketch seeded with 0.
func New(cfg Config) *Truchet {
	t := &Truchet{cfg: cfg}
	t.strips[0] = [2][]gridutils.Vec2{
		Arc(gridutils.Vec2{X: 0, Y: 0}, 0.5, 0, cfg.Segments),
		Arc(gridutils.Vec2{X: 1, Y: 1}, 0.5, 2, cfg.Segments),
	}
	t.strips[1] = [2][]gridutils.Vec2{
		Arc(gridutils.Vec2{X: 1, Y: 0}, 0.5, 1, cfg.Segments),
		Arc(gridutils.Vec2{X: 0, Y: 1}, 0.5, 3, cfg.Segments),
	}
	t.Reset(0)
	return t
}

// Name returns the sketch identifier.
func (t *Truchet) Name() string { return "truchet" }

// Size returns the canvas size.
func (t *Truchet) Size() core.Size { return core.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Flips returns how many tiles were flipped since Reset.
func (t *Truchet) Flips() int { return t.flips }

// Reset chooses a palette and an orientation for every tile.
func (t *Truchet) Reset(seed int64) {
	t.rng = pcore.NewRNG(seed)
	pal, err := palette.Resolve(t.cfg.Palette, t.rng, 4)
	if err != nil || len(pal) == 0 {
		pal = palette.Generate(t.rng, 4)
	}
	t.pal = pal
	t.bg = pal.Darkest()
	canvas := gridutils.Vec2{X: float64(t.cfg.Width), Y: float64(t.cfg.Height)}
	t.grid = gridutils.NewBuilder[tile](t.cfg.Rows, t.cfg.Cols, canvas).
		WithCellData(t.newTile).
		Build(t.rng)
	t.elapsed = 0
	t.flips = 0
}

func (t *Truchet) newTile(_, _ int, _ gridutils.Rect, rng *pcore.RNG) tile {
	col := t.pal.Pick(rng)
	for i := 0; i < 3 && col == t.bg && len(t.pal) > 1; i++ {
		col = t.pal.Pick(rng)
	}
	return tile{flipped: rng.Bool(), color: col}
}

// Update flips one random tile every Flip seconds.
func (t *Truchet) Update(dt float64) {
	if t.cfg.Flip <= 0 || t.grid.TotalCells() == 0 {
		return
	}
	t.elapsed += dt
	for t.elapsed >= t.cfg.Flip {
		t.elapsed -= t.cfg.Flip
		row := t.rng.IntN(t.grid.Rows())
		col := t.rng.IntN(t.grid.Cols())
		if cell, ok := t.grid.GetMut(row, col); ok {
			cell.Data.flipped = !cell.Data.flipped
			t.flips++
		}
	}
}

// Draw strokes both strips of every tile.
func (t *Truchet) Draw(c core.Canvas) {
	c.Clear(t.bg)
	pts := make([]gridutils.Vec2, 0, t.cfg.Segments+1)
	for cell := range t.grid.Cells() {
		width := math.Min(cell.Bounds.Width, cell.Bounds.Height) * t.cfg.Stroke
		orient := 0
		if cell.Data.flipped {
			orient = 1
		}
		for _, strip := range t.strips[orient] {
			pts = pts[:0]
			for _, p := range strip {
				pts = append(pts, cell.Norm(p))
			}
			c.StrokePolyline(pts, width, cell.Data.color)
		}
	}
}

// DrawGridOverlay outlines the tiles.
func (t *Truchet) DrawGridOverlay(c core.Canvas) {
	t.grid.DrawOverlay(c, gridutils.DefaultOverlayStyle())
}

// Parameters exposes the sketch tunables.
func (t *Truchet) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("rows", "Rows", t.cfg.Rows),
			core.IntParam("cols", "Columns", t.cfg.Cols),
			core.FloatParam("flip", "Flip interval (s)", t.cfg.Flip),
		}},
		{Name: "Strips", Params: []core.Parameter{
			core.StringParam("palette", "Palette", t.cfg.Palette),
			core.IntParam("segments", "Segments", t.cfg.Segments),
			core.FloatParam("stroke", "Stroke (cell fraction)", t.cfg.Stroke),
			core.IntParam("flips", "Flips", t.flips),
		}},
	}}
}

// Arc returns n+1 points on a quarter circle of radius r around corner,
// approximated by a cubic bezier. quadrant selects which quarter faces into
// the unit cell: 0 for the top-left corner, 1 top-right, 2 bottom-right and
// 3 bottom-left, all in cell-normalized coordinates with y pointing down.
func Arc(corner gridutils.Vec2, r float64, quadrant, n int) []gridutils.Vec2 {
	// Direction of the two edges leaving the corner into the cell.
	var ax, ay gridutils.Vec2
	switch quadrant & 3 {
	case 0:
		ax, ay = gridutils.Vec2{X: 1}, gridutils.Vec2{Y: 1}
	case 1:
		ax, ay = gridutils.Vec2{X: -1}, gridutils.Vec2{Y: 1}
	case 2:
		ax, ay = gridutils.Vec2{X: -1}, gridutils.Vec2{Y: -1}
	default:
		ax, ay = gridutils.Vec2{X: 1}, gridutils.Vec2{Y: -1}
	}
	p0 := corner.Add(ax.Scale(r))
	p3 := corner.Add(ay.Scale(r))
	p1 := p0.Add(ay.Scale(r * kappa))
	p2 := p3.Add(ax.Scale(r * kappa))
	if n < 1 {
		n = 1
	}
	out := make([]gridutils.Vec2, n+1)
	for i := range out {
		out[i] = cubic(p0, p1, p2, p3, float64(i)/float64(n))
	}
	return out
}

func cubic(p0, p1, p2, p3 gridutils.Vec2, t float64) gridutils.Vec2 {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return p0.Scale(a).Add(p1.Scale(b)).Add(p2.Scale(c)).Add(p3.Scale(d))
}

func init() {
	core.Register("truchet", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

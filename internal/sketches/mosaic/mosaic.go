// Package mosaic draws a grid of palette-coloured shapes. Each cell picks its
// shape and colours once when the grid is built; with a regen interval the
// whole grid is periodically regenerated in place.
package mosaic

import (
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/palette"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// Config holds parameters for the mosaic sketch. Regen is the interval in
// seconds between grid regenerations; zero disables it.
type Config struct {
	Width   int
	Height  int
	Rows    int
	Cols    int
	Palette string
	Regen   float64
	Outline bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 800, Height: 600, Rows: 6, Cols: 8, Palette: "dusk", Regen: 2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntOption(cfg, "width", c.Width, 1)
	c.Height = core.IntOption(cfg, "height", c.Height, 1)
	c.Rows = core.IntOption(cfg, "rows", c.Rows, 1)
	c.Cols = core.IntOption(cfg, "cols", c.Cols, 1)
	c.Palette = core.StringOption(cfg, "palette", c.Palette, palette.Valid)
	c.Regen = core.FloatOption(cfg, "regen", c.Regen, 0, 3600)
	c.Outline = core.BoolOption(cfg, "outline", c.Outline)
	return c
}

type shape uint8

const (
	shapeSquare shape = iota
	shapeCircle
	shapeDiagonal
	shapeBars
	shapeCount
)

// tile is one cell's look. inset is the margin as a fraction of the cell.
type tile struct {
	shape  shape
	fill   color.RGBA
	accent color.RGBA
	inset  float64
	flip   bool
}

// Mosaic is the sketch state.
type Mosaic struct {
	cfg     Config
	rng     *pcore.RNG
	pal     palette.Palette
	bg      color.RGBA
	grid    *gridutils.Grid[tile]
	elapsed float64
	regens  int
}

// New creates a mosaic sketch seeded with 0.
func New(cfg Config) *Mosaic {
	m := &Mosaic{cfg: cfg}
	m.Reset(0)
	return m
}

// Name returns the sketch identifier.
func (m *Mosaic) Name() string { return "mosaic" }

// Size returns the canvas size.
func (m *Mosaic) Size() core.Size { return core.Size{W: m.cfg.Width, H: m.cfg.Height} }

// Regenerations returns how many times the grid was regenerated since Reset.
func (m *Mosaic) Regenerations() int { return m.regens }

// Reset picks a palette and builds a fresh grid from seed.
func (m *Mosaic) Reset(seed int64) {
	m.rng = pcore.NewRNG(seed)
	pal, err := palette.Resolve(m.cfg.Palette, m.rng, 5)
	if err != nil || len(pal) == 0 {
		pal = palette.Generate(m.rng, 5)
	}
	m.pal = pal
	m.bg = pal.Darkest()
	canvas := gridutils.Vec2{X: float64(m.cfg.Width), Y: float64(m.cfg.Height)}
	m.grid = gridutils.NewBuilder[tile](m.cfg.Rows, m.cfg.Cols, canvas).
		WithCellData(m.newTile).
		Build(m.rng)
	m.elapsed = 0
	m.regens = 0
}

func (m *Mosaic) newTile(_, _ int, _ gridutils.Rect, rng *pcore.RNG) tile {
	t := tile{
		shape: shape(rng.IntN(int(shapeCount))),
		fill:  m.pal.Pick(rng),
		inset: rng.Range(0.04, 0.18),
		flip:  rng.Bool(),
	}
	t.accent = m.pal.Pick(rng)
	for i := 0; i < 3 && t.accent == t.fill && len(m.pal) > 1; i++ {
		t.accent = m.pal.Pick(rng)
	}
	return t
}

// Update advances the regeneration timer by dt seconds.
func (m *Mosaic) Update(dt float64) {
	if m.cfg.Regen <= 0 {
		return
	}
	m.elapsed += dt
	for m.elapsed >= m.cfg.Regen {
		m.elapsed -= m.cfg.Regen
		m.grid.RegenerateCells(m.rng, m.newTile)
		m.regens++
	}
}

// Draw renders every tile.
func (m *Mosaic) Draw(c core.Canvas) {
	c.Clear(m.bg)
	for cell := range m.grid.Cells() {
		t := cell.Data
		lo, hi := t.inset, 1-t.inset
		inner := gridutils.Rect{
			X:      cell.Norm(gridutils.Vec2{X: lo}).X,
			Y:      cell.Norm(gridutils.Vec2{Y: lo}).Y,
			Width:  cell.Bounds.Width * (hi - lo),
			Height: cell.Bounds.Height * (hi - lo),
		}
		switch t.shape {
		case shapeSquare:
			c.FillRect(inner, t.fill)
			c.FillRect(inner.Inset(min(inner.Width, inner.Height)*0.25), t.accent)
		case shapeCircle:
			r := min(inner.Width, inner.Height) / 2
			c.FillCircle(cell.Center(), r, t.fill)
			c.StrokeCircle(cell.Center(), r*0.6, r*0.15, t.accent)
		case shapeDiagonal:
			from, to := gridutils.Vec2{X: lo, Y: lo}, gridutils.Vec2{X: hi, Y: hi}
			if t.flip {
				from, to = gridutils.Vec2{X: hi, Y: lo}, gridutils.Vec2{X: lo, Y: hi}
			}
			w := min(cell.Bounds.Width, cell.Bounds.Height) * 0.12
			c.StrokeLine(cell.Norm(from), cell.Norm(to), w, t.fill)
			c.FillCircle(cell.Center(), w, t.accent)
		case shapeBars:
			const bars = 4
			for i := 0; i < bars; i++ {
				f := lo + (hi-lo)*(float64(i)+0.5)/bars
				from, to := gridutils.Vec2{X: f, Y: lo}, gridutils.Vec2{X: f, Y: hi}
				if t.flip {
					from, to = gridutils.Vec2{X: lo, Y: f}, gridutils.Vec2{X: hi, Y: f}
				}
				col := t.fill
				if i%2 == 1 {
					col = t.accent
				}
				c.StrokeLine(cell.Norm(from), cell.Norm(to), cell.Bounds.Width*(hi-lo)/(bars*2), col)
			}
		}
		if m.cfg.Outline {
			c.StrokeRect(inner, 1, t.accent)
		}
	}
}

// DrawGridOverlay outlines the cells.
func (m *Mosaic) DrawGridOverlay(c core.Canvas) {
	m.grid.DrawOverlay(c, gridutils.DefaultOverlayStyle())
}

// Parameters exposes the sketch tunables.
func (m *Mosaic) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("rows", "Rows", m.cfg.Rows),
			core.IntParam("cols", "Columns", m.cfg.Cols),
			core.FloatParam("regen", "Regen interval (s)", m.cfg.Regen),
		}},
		{Name: "Look", Params: []core.Parameter{
			core.StringParam("palette", "Palette", m.cfg.Palette),
			core.BoolParam("outline", "Outline", m.cfg.Outline),
		}},
	}}
}

func init() {
	core.Register("mosaic", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

// Package pulse draws a grid of breathing circles. Every cell owns a tween
// with its own duration and easing; when a tween finishes it plays back in
// the opposite direction.
package pulse

import (
	"image/color"
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/palette"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

type easing struct {
	name string
	fn   ease.TweenFunc
}

var easings = []easing{
	{"linear", ease.Linear},
	{"in-out-sine", ease.InOutSine},
	{"in-out-quad", ease.InOutQuad},
	{"in-out-cubic", ease.InOutCubic},
	{"out-bounce", ease.OutBounce},
	{"out-elastic", ease.OutElastic},
	{"in-out-back", ease.InOutBack},
}

// Config holds parameters for the pulse sketch. MinRadius and MaxRadius are
// fractions of half the smaller cell side.
type Config struct {
	Width     int
	Height    int
	Rows      int
	Cols      int
	Palette   string
	MinRadius float64
	MaxRadius float64
	MinPeriod float64
	MaxPeriod float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:     720,
		Height:    720,
		Rows:      9,
		Cols:      9,
		Palette:   "sea",
		MinRadius: 0.2,
		MaxRadius: 0.95,
		MinPeriod: 0.6,
		MaxPeriod: 2.4,
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
	c.MinRadius = core.FloatOption(cfg, "min_radius", c.MinRadius, 0, 1)
	c.MaxRadius = core.FloatOption(cfg, "max_radius", c.MaxRadius, 0, 1)
	c.MinPeriod = core.FloatOption(cfg, "min_period", c.MinPeriod, 0.01, 60)
	c.MaxPeriod = core.FloatOption(cfg, "max_period", c.MaxPeriod, 0.01, 60)
	if c.MaxRadius < c.MinRadius {
		c.MinRadius, c.MaxRadius = c.MaxRadius, c.MinRadius
	}
	if c.MaxPeriod < c.MinPeriod {
		c.MinPeriod, c.MaxPeriod = c.MaxPeriod, c.MinPeriod
	}
	return c
}

// blob is one cell's animation. scale is the current radius as a fraction of
// the cell's maximum.
type blob struct {
	tween    *gween.Tween
	easing   int
	duration float32
	growing  bool
	scale    float32
	fill     color.RGBA
	ring     color.RGBA
}

// Pulse is the sketch state.
type Pulse struct {
	cfg    Config
	pal    palette.Palette
	bg     color.RGBA
	grid   *gridutils.Grid[blob]
	cycles int
}

// New creates a pulse sketch seeded with 0.
func New(cfg Config) *Pulse {
	p := &Pulse{cfg: cfg}
	p.Reset(0)
	return p
}

// Name returns the sketch identifier.
func (p *Pulse) Name() string { return "pulse" }

// Size returns the canvas size.
func (p *Pulse) Size() core.Size { return core.Size{W: p.cfg.Width, H: p.cfg.Height} }

// Cycles returns how many tweens completed since Reset.
func (p *Pulse) Cycles() int { return p.cycles }

// Reset rebuilds every cell's tween from seed.
func (p *Pulse) Reset(seed int64) {
	rng := pcore.NewRNG(seed)
	pal, err := palette.Resolve(p.cfg.Palette, rng, 6)
	if err != nil || len(pal) == 0 {
		pal = palette.Generate(rng, 6)
	}
	p.pal = pal
	p.bg = pal.Darkest()
	canvas := gridutils.Vec2{X: float64(p.cfg.Width), Y: float64(p.cfg.Height)}
	p.grid = gridutils.NewBuilder[blob](p.cfg.Rows, p.cfg.Cols, canvas).
		WithCellData(p.newBlob).
		Build(rng)
	p.cycles = 0
}

func (p *Pulse) newBlob(_, _ int, _ gridutils.Rect, rng *pcore.RNG) blob {
	b := blob{
		easing:   rng.IntN(len(easings)),
		duration: float32(rng.Range(p.cfg.MinPeriod, p.cfg.MaxPeriod)),
		growing:  rng.Bool(),
		fill:     p.pal.Pick(rng),
		ring:     p.pal.Pick(rng),
	}
	b.tween = p.tweenFor(b)
	// Start each cell at a random point of its cycle.
	b.scale, _ = b.tween.Update(float32(rng.Range(0, float64(b.duration))))
	return b
}

func (p *Pulse) tweenFor(b blob) *gween.Tween {
	lo, hi := float32(p.cfg.MinRadius), float32(p.cfg.MaxRadius)
	if !b.growing {
		lo, hi = hi, lo
	}
	return gween.New(lo, hi, b.duration, easings[b.easing].fn)
}

// Update advances every tween by dt seconds.
func (p *Pulse) Update(dt float64) {
	for cell := range p.grid.CellsMut() {
		b := cell.Data
		v, done := b.tween.Update(float32(dt))
		// Back and elastic easings undershoot the start value.
		b.scale = max(v, 0)
		if done {
			b.growing = !b.growing
			b.tween = p.tweenFor(*b)
			p.cycles++
		}
	}
}

// Draw renders one circle per cell.
func (p *Pulse) Draw(c core.Canvas) {
	c.Clear(p.bg)
	for cell := range p.grid.Cells() {
		maxR := math.Min(cell.Bounds.Width, cell.Bounds.Height) / 2
		r := maxR * float64(cell.Data.scale)
		c.FillCircle(cell.Center(), r, cell.Data.fill)
		c.StrokeCircle(cell.Center(), maxR*float64(p.cfg.MaxRadius), 1, cell.Data.ring)
	}
}

// DrawGridOverlay outlines the cells.
func (p *Pulse) DrawGridOverlay(c core.Canvas) {
	p.grid.DrawOverlay(c, gridutils.DefaultOverlayStyle())
}

// Parameters exposes the sketch tunables and the easing mix.
func (p *Pulse) Parameters() core.ParameterSnapshot {
	counts := make([]int, len(easings))
	for _, b := range p.grid.Data() {
		counts[b.easing]++
	}
	mix := make([]core.Parameter, 0, len(easings))
	for i, e := range easings {
		if counts[i] > 0 {
			mix = append(mix, core.IntParam(e.name, e.name, counts[i]))
		}
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("rows", "Rows", p.cfg.Rows),
			core.IntParam("cols", "Columns", p.cfg.Cols),
			core.StringParam("palette", "Palette", p.cfg.Palette),
		}},
		{Name: "Motion", Params: []core.Parameter{
			core.FloatParam("min_radius", "Min radius", p.cfg.MinRadius),
			core.FloatParam("max_radius", "Max radius", p.cfg.MaxRadius),
			core.FloatParam("min_period", "Min period (s)", p.cfg.MinPeriod),
			core.FloatParam("max_period", "Max period (s)", p.cfg.MaxPeriod),
		}},
		{Name: "Easings", Params: mix, Summary: "cells per easing"},
	}}
}

func init() {
	core.Register("pulse", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

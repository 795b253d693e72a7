// Package life runs Conway's Game of Life on a toroidal grid.
package life

import (
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// Config holds parameters for the life sketch.
type Config struct {
	Width   int
	Height  int
	Rows    int
	Cols    int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 768, Height: 512, Rows: 64, Cols: 96, Density: 0.5}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntOption(cfg, "width", c.Width, 1)
	c.Height = core.IntOption(cfg, "height", c.Height, 1)
	c.Rows = core.IntOption(cfg, "rows", c.Rows, 1)
	c.Cols = core.IntOption(cfg, "cols", c.Cols, 1)
	c.Density = core.FloatOption(cfg, "density", c.Density, 0, 1)
	return c
}

var (
	aliveColor = color.RGBA{R: 236, G: 236, B: 228, A: 255}
	deadColor  = color.RGBA{R: 18, G: 18, B: 24, A: 255}
)

// Life implements Conway's Game of Life with toroidal wrapping. Two grids are
// swapped every generation.
type Life struct {
	cfg  Config
	cur  *gridutils.Grid[bool]
	nxt  *gridutils.Grid[bool]
	gens int
}

// New returns a Life sketch with an empty board.
func New(cfg Config) *Life {
	canvas := gridutils.Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)}
	return &Life{
		cfg: cfg,
		cur: gridutils.New[bool](cfg.Rows, cfg.Cols, canvas, nil, nil),
		nxt: gridutils.New[bool](cfg.Rows, cfg.Cols, canvas, nil, nil),
	}
}

// Name returns the sketch identifier.
func (l *Life) Name() string { return "life" }

// Size returns the canvas size.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Grid exposes the current generation.
func (l *Life) Grid() *gridutils.Grid[bool] { return l.cur }

// Generation returns the number of steps since Reset.
func (l *Life) Generation() int { return l.gens }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	density := l.cfg.Density
	l.cur.RegenerateCells(pcore.NewRNG(seed), func(_, _ int, _ gridutils.Rect, rng *pcore.RNG) bool {
		return rng.Chance(density)
	})
	l.gens = 0
}

// Update advances one generation per tick.
func (l *Life) Update(float64) { l.Step() }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	for cell := range l.nxt.CellsMut() {
		neighbors := 0
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				r, c := l.cur.Wrap(cell.Row+dy, cell.Col+dx)
				if n, _ := l.cur.Get(r, c); n.Data {
					neighbors++
				}
			}
		}
		self, _ := l.cur.Get(cell.Row, cell.Col)
		*cell.Data = neighbors == 3 || (self.Data && neighbors == 2)
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.gens++
}

// Alive counts live cells.
func (l *Life) Alive() int {
	n := 0
	for _, v := range l.cur.Data() {
		if v {
			n++
		}
	}
	return n
}

// Draw fills live cells.
func (l *Life) Draw(c core.Canvas) {
	c.Clear(deadColor)
	for cell := range l.cur.Cells() {
		if cell.Data {
			c.FillRect(cell.Rect(), aliveColor)
		}
	}
}

// DrawGridOverlay outlines the cells.
func (l *Life) DrawGridOverlay(c core.Canvas) {
	l.cur.DrawOverlay(c, gridutils.DefaultOverlayStyle())
}

// Parameters exposes the sketch tunables and live counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{
			core.IntParam("rows", "Rows", l.cfg.Rows),
			core.IntParam("cols", "Columns", l.cfg.Cols),
			core.FloatParam("density", "Initial density", l.cfg.Density),
		}},
		{Name: "State", Params: []core.Parameter{
			core.IntParam("generation", "Generation", l.gens),
			core.IntParam("alive", "Alive", l.Alive()),
		}},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

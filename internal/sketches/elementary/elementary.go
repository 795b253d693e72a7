// Package elementary draws a one-dimensional Wolfram automaton. The top grid
// row is the newest generation; older generations scroll downwards.
package elementary

import (
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

var cellPalette = []color.RGBA{
	{R: 250, G: 248, B: 240, A: 255},
	{R: 24, G: 24, B: 32, A: 255},
}

// Config holds parameters for the elementary cellular automaton. With Random
// set the first generation is seeded randomly instead of a single centre cell.
type Config struct {
	Width  int
	Height int
	Rows   int
	Cols   int
	Rule   uint8
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 768, Height: 512, Rows: 128, Cols: 192, Rule: 110}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntOption(cfg, "width", c.Width, 1)
	c.Height = core.IntOption(cfg, "height", c.Height, 1)
	c.Rows = core.IntOption(cfg, "rows", c.Rows, 1)
	c.Cols = core.IntOption(cfg, "cols", c.Cols, 1)
	if rule := core.IntOption(cfg, "rule", int(c.Rule), 0); rule <= 255 {
		c.Rule = uint8(rule)
	} else {
		core.Logger().Warn("ignoring option", "key", "rule", "value", cfg["rule"])
	}
	c.Random = core.BoolOption(cfg, "random", c.Random)
	return c
}

// Elementary implements a one-dimensional Wolfram code projected vertically.
type Elementary struct {
	cfg  Config
	grid *gridutils.Grid[uint8]
	tmp  []uint8
	gens int
}

// New creates an automaton with the given configuration.
func New(cfg Config) *Elementary {
	canvas := gridutils.Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)}
	return &Elementary{
		cfg:  cfg,
		grid: gridutils.New[uint8](cfg.Rows, cfg.Cols, canvas, nil, nil),
		tmp:  make([]uint8, max(cfg.Cols, 0)),
	}
}

// Name returns the sketch identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the canvas size.
func (e *Elementary) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// CellGrid exposes the generation history.
func (e *Elementary) CellGrid() *gridutils.Grid[uint8] { return e.grid }

// CellPalette maps cell values to colours.
func (e *Elementary) CellPalette() []color.RGBA { return cellPalette }

// Reset clears the history and seeds the top row.
func (e *Elementary) Reset(seed int64) {
	e.grid.RegenerateCells(nil, nil)
	if e.cfg.Random && e.grid.Rows() > 0 {
		pcore.FillBinary(pcore.NewRNG(seed), e.grid.Data()[:e.grid.Cols()])
	} else {
		e.grid.Set(0, e.grid.Cols()/2, 1)
	}
	e.gens = 0
}

// Update advances one generation per tick.
func (e *Elementary) Update(float64) { e.Step() }

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	cols := e.grid.Cols()
	if cols <= 0 || e.grid.Rows() <= 0 {
		return
	}
	for col := 0; col < cols; col++ {
		v, _ := e.grid.Get(0, col)
		e.tmp[col] = v.Data
	}
	for row := e.grid.Rows() - 1; row > 0; row-- {
		for col := 0; col < cols; col++ {
			above, _ := e.grid.Get(row-1, col)
			dst, _ := e.grid.GetMut(row, col)
			*dst.Data = above.Data
		}
	}
	for col := 0; col < cols; col++ {
		left := e.tmp[(col-1+cols)%cols]
		center := e.tmp[col]
		right := e.tmp[(col+1)%cols]
		idx := (left << 2) | (center << 1) | right
		e.grid.Set(0, col, (e.cfg.Rule>>idx)&1)
	}
	e.gens++
}

// Generation returns the number of steps since Reset.
func (e *Elementary) Generation() int { return e.gens }

// Draw fills active cells.
func (e *Elementary) Draw(c core.Canvas) {
	c.Clear(cellPalette[0])
	for cell := range e.grid.Cells() {
		if cell.Data != 0 {
			c.FillRect(cell.Rect(), cellPalette[1])
		}
	}
}

// DrawGridOverlay outlines the cells.
func (e *Elementary) DrawGridOverlay(c core.Canvas) {
	e.grid.DrawOverlay(c, gridutils.OverlayStyle{Color: color.RGBA{R: 120, G: 120, B: 140, A: 90}, Width: 1})
}

// Parameters exposes the rule and grid size.
func (e *Elementary) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Automaton", Params: []core.Parameter{
			core.IntParam("rule", "Rule", int(e.cfg.Rule)),
			core.BoolParam("random", "Random start", e.cfg.Random),
			core.IntParam("generation", "Generation", e.gens),
		}},
		{Name: "Grid", Params: []core.Parameter{
			core.IntParam("rows", "History rows", e.cfg.Rows),
			core.IntParam("cols", "Columns", e.cfg.Cols),
		}},
	}}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

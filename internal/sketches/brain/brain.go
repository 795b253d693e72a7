// Package brain implements Brian's Brain, a three-state automaton where firing
// cells always spend one generation dying before they rest.
package brain

import (
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

const (
	stateDead  = 0
	stateOn    = 1
	stateDying = 2
)

var cellPalette = []color.RGBA{
	stateDead:  {R: 8, G: 8, B: 16, A: 255},
	stateOn:    {R: 250, G: 250, B: 255, A: 255},
	stateDying: {R: 60, G: 110, B: 220, A: 255},
}

// Config holds parameters for the brain sketch. Odds is the 1-in-N chance of a
// cell starting in the firing state.
type Config struct {
	Width  int
	Height int
	Rows   int
	Cols   int
	Odds   int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 768, Height: 768, Rows: 128, Cols: 128, Odds: 8}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	c.Width = core.IntOption(cfg, "width", c.Width, 1)
	c.Height = core.IntOption(cfg, "height", c.Height, 1)
	c.Rows = core.IntOption(cfg, "rows", c.Rows, 1)
	c.Cols = core.IntOption(cfg, "cols", c.Cols, 1)
	c.Odds = core.IntOption(cfg, "odds", c.Odds, 1)
	return c
}

// Brain implements Brian's Brain cellular automaton.
type Brain struct {
	cfg Config
	cur *gridutils.Grid[uint8]
	nxt *gridutils.Grid[uint8]
}

// New creates a Brain sketch with every cell dead.
func New(cfg Config) *Brain {
	canvas := gridutils.Vec2{X: float64(cfg.Width), Y: float64(cfg.Height)}
	return &Brain{
		cfg: cfg,
		cur: gridutils.New[uint8](cfg.Rows, cfg.Cols, canvas, nil, nil),
		nxt: gridutils.New[uint8](cfg.Rows, cfg.Cols, canvas, nil, nil),
	}
}

// Name identifies the sketch.
func (b *Brain) Name() string { return "brain" }

// Size returns the canvas size.
func (b *Brain) Size() core.Size { return core.Size{W: b.cfg.Width, H: b.cfg.Height} }

// CellGrid exposes the current state grid.
func (b *Brain) CellGrid() *gridutils.Grid[uint8] { return b.cur }

// CellPalette maps states to colours.
func (b *Brain) CellPalette() []color.RGBA { return cellPalette }

// Reset randomizes cells into dead or firing states.
func (b *Brain) Reset(seed int64) {
	odds := b.cfg.Odds
	b.cur.RegenerateCells(pcore.NewRNG(seed), func(_, _ int, _ gridutils.Rect, rng *pcore.RNG) uint8 {
		if rng.IntN(odds) == 0 {
			return stateOn
		}
		return stateDead
	})
}

// Update advances one generation per tick.
func (b *Brain) Update(float64) { b.Step() }

// Step advances the automaton by one generation.
func (b *Brain) Step() {
	for cell := range b.nxt.CellsMut() {
		self, _ := b.cur.Get(cell.Row, cell.Col)
		switch self.Data {
		case stateOn:
			*cell.Data = stateDying
		case stateDying:
			*cell.Data = stateDead
		default:
			if b.firingNeighbors(cell.Row, cell.Col) == 2 {
				*cell.Data = stateOn
			} else {
				*cell.Data = stateDead
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

func (b *Brain) firingNeighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			r, c := b.cur.Wrap(row+dy, col+dx)
			if v, _ := b.cur.Get(r, c); v.Data == stateOn {
				n++
			}
		}
	}
	return n
}

// Counts returns the number of firing and dying cells.
func (b *Brain) Counts() (on, dying int) {
	for _, v := range b.cur.Data() {
		switch v {
		case stateOn:
			on++
		case stateDying:
			dying++
		}
	}
	return on, dying
}

// Draw fills every non-dead cell with its state colour.
func (b *Brain) Draw(c core.Canvas) {
	c.Clear(cellPalette[stateDead])
	for cell := range b.cur.Cells() {
		if cell.Data != stateDead {
			c.FillRect(cell.Rect(), cellPalette[cell.Data])
		}
	}
}

// DrawGridOverlay outlines the cells.
func (b *Brain) DrawGridOverlay(c core.Canvas) {
	b.cur.DrawOverlay(c, gridutils.OverlayStyle{Color: color.RGBA{R: 80, G: 80, B: 120, A: 80}, Width: 1})
}

// Parameters exposes the sketch tunables and live counters.
func (b *Brain) Parameters() core.ParameterSnapshot {
	on, dying := b.Counts()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{
			core.IntParam("rows", "Rows", b.cfg.Rows),
			core.IntParam("cols", "Columns", b.cfg.Cols),
			core.IntParam("odds", "Firing odds (1 in N)", b.cfg.Odds),
		}},
		{Name: "State", Params: []core.Parameter{
			core.IntParam("on", "Firing", on),
			core.IntParam("dying", "Dying", dying),
		}},
	}}
}

func init() {
	core.Register("brain", func(cfg map[string]string) core.Sketch {
		return New(FromMap(cfg))
	})
}

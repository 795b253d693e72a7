package gridutils_test

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfr0zen/sketches-sub000/pkg/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

const tolerance = 1e-3

func square300() gridutils.Vec2 { return gridutils.Vec2{X: 300, Y: 300} }

// indexGrid builds a grid whose cells hold row*cols+col.
func indexGrid(rows, cols int, canvas gridutils.Vec2) *gridutils.Grid[int] {
	return gridutils.NewBuilder[int](rows, cols, canvas).
		WithCellData(func(row, col int, _ gridutils.Rect, _ *core.RNG) int {
			return row*cols + col
		}).
		Build(core.NewRNG(1))
}

func assertVec(t *testing.T, want, got gridutils.Vec2, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, tolerance, msgAndArgs...)
}

//----------------------------------------------------------------------------//
// Dimensions
//----------------------------------------------------------------------------//

func TestGridDimensions(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		canvas     gridutils.Vec2
		cellW      float64
		cellH      float64
	}{
		{"Square", 3, 3, square300(), 100, 100},
		{"NonSquareCanvas", 2, 4, gridutils.Vec2{X: 800, Y: 400}, 200, 200},
		{"Uneven", 3, 7, gridutils.Vec2{X: 700, Y: 100}, 100, 100.0 / 3},
		{"SingleCell", 1, 1, gridutils.Vec2{X: 64, Y: 48}, 64, 48},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := indexGrid(tc.rows, tc.cols, tc.canvas)
			assert.Equal(t, tc.rows, g.Rows())
			assert.Equal(t, tc.cols, g.Cols())
			assert.Equal(t, tc.rows*tc.cols, g.TotalCells())
			assert.Equal(t, tc.canvas, g.CanvasSize())
			assert.InDelta(t, tc.cellW, g.CellWidth(), 1e-9)
			assert.InDelta(t, tc.cellH, g.CellHeight(), 1e-9)
			assert.Len(t, g.Data(), tc.rows*tc.cols)
		})
	}
}

func TestEmptyGrid(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 4},
		{"ZeroCols", 4, 0},
		{"Both", 0, 0},
		{"Negative", -2, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			g := gridutils.NewBuilder[int](tc.rows, tc.cols, square300()).
				WithCellData(func(int, int, gridutils.Rect, *core.RNG) int {
					calls++
					return 1
				}).
				Build(core.NewRNG(1))

			require.NotNil(t, g)
			assert.Zero(t, g.TotalCells())
			assert.Zero(t, calls, "generator must not run for an empty grid")
			for range g.Cells() {
				t.Fatal("empty grid yielded a cell")
			}
			_, ok := g.Get(0, 0)
			assert.False(t, ok)
			_, _, ok = g.CellAt(gridutils.Vec2{X: 1, Y: 1})
			assert.False(t, ok)
		})
	}
}

func TestEmptyGridPropagatesDivision(t *testing.T) {
	g := indexGrid(0, 0, square300())
	assert.True(t, math.IsInf(g.CellWidth(), 1))
	assert.True(t, math.IsInf(g.CellHeight(), 1))

	g = indexGrid(0, 0, gridutils.Vec2{})
	assert.True(t, math.IsNaN(g.CellWidth()))
}

//----------------------------------------------------------------------------//
// Builder
//----------------------------------------------------------------------------//

func TestBuildCallsGeneratorOncePerCellInRowMajorOrder(t *testing.T) {
	type call struct {
		row, col int
		bounds   gridutils.Rect
	}
	var calls []call
	rng := core.NewRNG(5)
	gridutils.NewBuilder[struct{}](2, 3, gridutils.Vec2{X: 300, Y: 100}).
		WithCellData(func(row, col int, bounds gridutils.Rect, r *core.RNG) struct{} {
			require.Same(t, rng, r, "the caller's rng must be threaded through")
			calls = append(calls, call{row, col, bounds})
			return struct{}{}
		}).
		Build(rng)

	want := []call{{0, 0, gridutils.Rect{}}, {0, 1, gridutils.Rect{}}, {0, 2, gridutils.Rect{}},
		{1, 0, gridutils.Rect{}}, {1, 1, gridutils.Rect{}}, {1, 2, gridutils.Rect{}}}
	for i := range want {
		want[i].bounds = gridutils.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	}
	assert.Equal(t, want, calls)
}

func TestWithCellDataDefersGeneration(t *testing.T) {
	calls := 0
	b := gridutils.NewBuilder[int](2, 2, square300()).
		WithCellData(func(int, int, gridutils.Rect, *core.RNG) int {
			calls++
			return 0
		})
	assert.Zero(t, calls)
	b.Build(core.NewRNG(1))
	assert.Equal(t, 4, calls)
}

func TestBuildDeterministicForSeed(t *testing.T) {
	gen := func(_, _ int, bounds gridutils.Rect, rng *core.RNG) float64 {
		return rng.Range(0, bounds.Width)
	}
	a := gridutils.New(4, 5, square300(), core.NewRNG(99), gen)
	b := gridutils.New(4, 5, square300(), core.NewRNG(99), gen)
	c := gridutils.New(4, 5, square300(), core.NewRNG(100), gen)

	assert.Equal(t, a.Data(), b.Data())
	assert.NotEqual(t, a.Data(), c.Data())
}

func TestBuildNilGeneratorYieldsZeroValues(t *testing.T) {
	g := gridutils.NewBuilder[string](2, 2, square300()).WithCellData(nil).Build(core.NewRNG(1))
	assert.Equal(t, []string{"", "", "", ""}, g.Data())
}

//----------------------------------------------------------------------------//
// Iteration and access
//----------------------------------------------------------------------------//

func TestCellsRowMajorOrder(t *testing.T) {
	g := indexGrid(3, 3, square300())

	var values []int
	var positions [][2]int
	for cell := range g.Cells() {
		values = append(values, cell.Data)
		positions = append(positions, [2]int{cell.Row, cell.Col})
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, values)
	assert.Equal(t, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}, {2, 0}, {2, 1}, {2, 2}}, positions)
}

func TestCellsIsRestartable(t *testing.T) {
	g := indexGrid(2, 3, square300())
	count := func() int {
		n := 0
		for range g.Cells() {
			n++
		}
		return n
	}
	assert.Equal(t, 6, count())
	assert.Equal(t, 6, count())
	assert.Equal(t, 6, g.TotalCells())
}

func TestCellsStopsOnBreak(t *testing.T) {
	g := indexGrid(3, 3, square300())
	seen := 0
	for cell := range g.Cells() {
		seen++
		if cell.Data == 4 {
			break
		}
	}
	assert.Equal(t, 5, seen)

	seen = 0
	for range g.CellsMut() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestGetScenario(t *testing.T) {
	g := indexGrid(3, 3, square300())

	cell, ok := g.Get(1, 1)
	require.True(t, ok)
	assert.Equal(t, 4, cell.Data)
	assert.Equal(t, 1, cell.Row)
	assert.Equal(t, 1, cell.Col)
	assert.Equal(t, gridutils.Vec2{X: 100, Y: 100}, cell.Offset)
	assert.Equal(t, gridutils.Rect{X: 0, Y: 0, Width: 100, Height: 100}, cell.Bounds)
	assertVec(t, gridutils.Vec2{X: 150, Y: 150}, cell.Norm(gridutils.Vec2{X: 0.5, Y: 0.5}))
}

func TestGetOutOfBounds(t *testing.T) {
	g := indexGrid(3, 4, square300())
	for _, rc := range [][2]int{{3, 0}, {0, 4}, {-1, 0}, {0, -1}, {3, 4}} {
		_, ok := g.Get(rc[0], rc[1])
		assert.False(t, ok, "Get(%d,%d)", rc[0], rc[1])
		_, ok = g.GetMut(rc[0], rc[1])
		assert.False(t, ok, "GetMut(%d,%d)", rc[0], rc[1])
		assert.False(t, g.Set(rc[0], rc[1], 1), "Set(%d,%d)", rc[0], rc[1])
	}
}

func TestOffsetsAgreeBetweenIterationAndGet(t *testing.T) {
	g := indexGrid(4, 6, gridutils.Vec2{X: 613, Y: 287})
	for cell := range g.Cells() {
		got, ok := g.Get(cell.Row, cell.Col)
		require.True(t, ok)
		assert.Equal(t, cell.Cell, got.Cell)
		assert.Equal(t, cell.Data, got.Data)
		assert.Equal(t, gridutils.Vec2{X: float64(cell.Col) * g.CellWidth(), Y: float64(cell.Row) * g.CellHeight()}, cell.Offset)

		mut, ok := g.GetMut(cell.Row, cell.Col)
		require.True(t, ok)
		assert.Equal(t, cell.Cell, mut.Cell)
	}
	for cell := range g.CellsMut() {
		got, _ := g.Get(cell.Row, cell.Col)
		assert.Equal(t, got.Cell, cell.Cell)
	}
}

func TestCellsMutPersists(t *testing.T) {
	g := indexGrid(3, 3, square300())
	for cell := range g.CellsMut() {
		*cell.Data += 100
	}
	i := 0
	for cell := range g.Cells() {
		assert.Equal(t, 100+i, cell.Data)
		i++
	}
}

func TestGetMutAndSetWrite(t *testing.T) {
	g := indexGrid(2, 2, square300())

	cell, ok := g.GetMut(1, 0)
	require.True(t, ok)
	*cell.Data = 42
	got, _ := g.Get(1, 0)
	assert.Equal(t, 42, got.Data)

	require.True(t, g.Set(0, 1, -7))
	got, _ = g.Get(0, 1)
	assert.Equal(t, -7, got.Data)
}

func TestCellContextIsSnapshot(t *testing.T) {
	g := indexGrid(2, 2, square300())
	snap, _ := g.Get(0, 0)
	g.Set(0, 0, 9)
	assert.Equal(t, 0, snap.Data)
}

//----------------------------------------------------------------------------//
// Regeneration
//----------------------------------------------------------------------------//

func TestRegenerateCellsReplacesDataWithoutResizing(t *testing.T) {
	canvas := gridutils.Vec2{X: 400, Y: 200}
	g := indexGrid(2, 4, canvas)
	gen := func(row, col int, bounds gridutils.Rect, rng *core.RNG) int {
		return row*1000 + col*10 + int(rng.Range(0, bounds.Width))
	}

	g.RegenerateCells(core.NewRNG(8), gen)

	assert.Equal(t, 8, g.TotalCells())
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, canvas, g.CanvasSize())

	// Replaying the same rng in row-major order must give identical values.
	replay := core.NewRNG(8)
	bounds := gridutils.Rect{Width: 100, Height: 100}
	for cell := range g.Cells() {
		assert.Equal(t, gen(cell.Row, cell.Col, bounds, replay), cell.Data)
	}
}

func TestRegenerateCellsNilResets(t *testing.T) {
	g := indexGrid(2, 2, square300())
	g.RegenerateCells(core.NewRNG(1), nil)
	assert.Equal(t, []int{0, 0, 0, 0}, g.Data())
}

//----------------------------------------------------------------------------//
// Canvas helpers
//----------------------------------------------------------------------------//

func TestCanvasRoundTrip(t *testing.T) {
	g := indexGrid(3, 3, square300())
	p := gridutils.Vec2{X: 123.456, Y: 234.567}
	assertVec(t, p, g.NormToPixels(g.PixelsToNorm(p)))
	assertVec(t, gridutils.Vec2{X: 0.5, Y: 0.25}, g.PixelsToNorm(g.NormToPixels(gridutils.Vec2{X: 0.5, Y: 0.25})))
}

func TestNormToPixelsExtrapolates(t *testing.T) {
	g := indexGrid(2, 4, gridutils.Vec2{X: 800, Y: 400})
	assertVec(t, gridutils.Vec2{X: -400, Y: 600}, g.NormToPixels(gridutils.Vec2{X: -0.5, Y: 1.5}))
}

func TestCellAt(t *testing.T) {
	g := indexGrid(3, 3, square300())
	cases := []struct {
		p        gridutils.Vec2
		row, col int
		ok       bool
	}{
		{gridutils.Vec2{X: 0, Y: 0}, 0, 0, true},
		{gridutils.Vec2{X: 150, Y: 250}, 2, 1, true},
		{gridutils.Vec2{X: 299.9, Y: 100}, 1, 2, true},
		{gridutils.Vec2{X: 300, Y: 10}, 0, 0, false},
		{gridutils.Vec2{X: -0.1, Y: 10}, 0, 0, false},
		{gridutils.Vec2{X: math.NaN(), Y: 10}, 0, 0, false},
	}
	for _, tc := range cases {
		row, col, ok := g.CellAt(tc.p)
		assert.Equal(t, tc.ok, ok, "CellAt(%v)", tc.p)
		if tc.ok {
			assert.Equal(t, [2]int{tc.row, tc.col}, [2]int{row, col}, "CellAt(%v)", tc.p)
		}
	}
}

func TestIndexCoordinateWrap(t *testing.T) {
	g := indexGrid(3, 4, square300())
	for i := 0; i < g.TotalCells(); i++ {
		row, col := g.Coordinate(i)
		assert.Equal(t, i, g.Index(row, col))
		assert.True(t, g.InBounds(row, col))
	}

	row, col := g.Wrap(-1, 4)
	assert.Equal(t, [2]int{2, 0}, [2]int{row, col})
	row, col = g.Wrap(7, -5)
	assert.Equal(t, [2]int{1, 3}, [2]int{row, col})
}

//----------------------------------------------------------------------------//
// Overlay
//----------------------------------------------------------------------------//

type line struct {
	from, to gridutils.Vec2
	width    float64
}

type linePainter struct{ lines []line }

func (p *linePainter) StrokeLine(from, to gridutils.Vec2, width float64, _ color.Color) {
	p.lines = append(p.lines, line{from, to, width})
}

func TestDrawOverlay(t *testing.T) {
	g := indexGrid(2, 3, gridutils.Vec2{X: 300, Y: 200})

	p := &linePainter{}
	g.DrawOverlay(p, gridutils.DefaultOverlayStyle())
	require.Len(t, p.lines, 4+3)
	assert.Equal(t, line{gridutils.Vec2{X: 0}, gridutils.Vec2{X: 0, Y: 200}, 1}, p.lines[0])
	assert.Equal(t, line{gridutils.Vec2{X: 300}, gridutils.Vec2{X: 300, Y: 200}, 1}, p.lines[3])
	assert.Equal(t, line{gridutils.Vec2{Y: 100}, gridutils.Vec2{X: 300, Y: 100}, 1}, p.lines[5])

	p = &linePainter{}
	g.DrawOverlay(p, gridutils.OverlayStyle{SkipBorder: true})
	assert.Len(t, p.lines, 2+1)

	p = &linePainter{}
	indexGrid(0, 3, square300()).DrawOverlay(p, gridutils.DefaultOverlayStyle())
	assert.Empty(t, p.lines)
}

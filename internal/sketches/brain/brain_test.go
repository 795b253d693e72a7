package brain

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/riverfr0zen/sketches-sub000/internal/render"
)

func small() *Brain {
	return New(Config{Width: 50, Height: 50, Rows: 5, Cols: 5, Odds: 8})
}

func state(b *Brain, row, col int) uint8 {
	v, _ := b.CellGrid().Get(row, col)
	return v.Data
}

func TestStateCycle(t *testing.T) {
	b := small()
	b.CellGrid().Set(2, 2, stateOn)

	b.Step()
	if got := state(b, 2, 2); got != stateDying {
		t.Fatalf("firing cell became %d, want dying", got)
	}
	b.Step()
	if got := state(b, 2, 2); got != stateDead {
		t.Fatalf("dying cell became %d, want dead", got)
	}
}

func TestBirthNeedsExactlyTwo(t *testing.T) {
	b := small()
	g := b.CellGrid()
	g.Set(1, 1, stateOn)
	g.Set(1, 3, stateOn)

	b.Step()
	if got := state(b, 1, 2); got != stateOn {
		t.Fatalf("cell between two firing cells = %d, want on", got)
	}

	b = small()
	g = b.CellGrid()
	g.Set(1, 1, stateOn)
	g.Set(1, 3, stateOn)
	g.Set(0, 2, stateOn)
	b.Step()
	if got := state(b, 1, 2); got != stateDead {
		t.Fatalf("cell with three firing neighbours = %d, want dead", got)
	}
}

func TestDyingNeighboursDoNotCount(t *testing.T) {
	b := small()
	g := b.CellGrid()
	g.Set(1, 1, stateOn)
	g.Set(1, 3, stateDying)
	b.Step()
	if got := state(b, 1, 2); got != stateDead {
		t.Fatalf("cell = %d, want dead", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	a, c := New(DefaultConfig()), New(DefaultConfig())
	a.Reset(3)
	c.Reset(3)
	for i := 0; i < 4; i++ {
		a.Update(0)
		c.Update(0)
	}
	if !bytes.Equal(a.CellGrid().Data(), c.CellGrid().Data()) {
		t.Fatal("same seed diverged")
	}
	on, _ := a.Counts()
	if on == 0 {
		t.Fatal("expected activity after a few generations")
	}
}

func TestCellImage(t *testing.T) {
	b := small()
	b.CellGrid().Set(0, 1, stateOn)

	var buf bytes.Buffer
	if err := render.WriteCellPNG(b, &buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	r, g, bl, _ := img.At(1, 0).RGBA()
	want := cellPalette[stateOn]
	if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(bl>>8) != want.B {
		t.Fatalf("pixel (1,0) = %d,%d,%d", r>>8, g>>8, bl>>8)
	}
}

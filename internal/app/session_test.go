package app

import (
	"testing"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/render"
	"github.com/riverfr0zen/sketches-sub000/internal/ui"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

type countingSketch struct {
	seeds   []int64
	updates int
	lastDT  float64
}

func (c *countingSketch) Name() string    { return "counting" }
func (c *countingSketch) Size() core.Size { return core.Size{W: 20, H: 20} }

func (c *countingSketch) Reset(seed int64) {
	c.seeds = append(c.seeds, seed)
	c.updates = 0
}

func (c *countingSketch) Update(dt float64) {
	c.updates++
	c.lastDT = dt
}

func (c *countingSketch) Draw(cv core.Canvas) {
	cv.FillRect(gridutils.Rect{Width: 20, Height: 20}, nil)
}

func (c *countingSketch) DrawGridOverlay(cv core.Canvas) {
	cv.StrokeLine(gridutils.Vec2{X: 10}, gridutils.Vec2{X: 10, Y: 20}, 1, nil)
}

func (c *countingSketch) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "State", Params: []core.Parameter{core.IntParam("updates", "Updates", c.updates)}},
	}}
}

func TestSessionResetsOnCreate(t *testing.T) {
	sk := &countingSketch{}
	s := NewSession(sk, 42, 30, nil)
	if len(sk.seeds) != 1 || sk.seeds[0] != 42 || s.Seed() != 42 {
		t.Fatalf("seeds = %v, want [42]", sk.seeds)
	}
	s.Advance()
	if sk.lastDT < 0.0333 || sk.lastDT > 0.0334 {
		t.Fatalf("dt = %v, want 1/30", sk.lastDT)
	}
}

func TestSessionPauseAndStep(t *testing.T) {
	sk := &countingSketch{}
	s := NewSession(sk, 1, 60, nil)

	s.Advance()
	s.Apply(ActionPause)
	if !s.Paused() {
		t.Fatal("expected paused")
	}
	if s.Advance() || s.Advance() {
		t.Fatal("paused session advanced")
	}
	s.Apply(ActionStep)
	if !s.Advance() {
		t.Fatal("single step did not run")
	}
	if s.Advance() {
		t.Fatal("single step ran twice")
	}
	if sk.updates != 2 || s.Frames() != 2 {
		t.Fatalf("updates = %d frames = %d, want 2", sk.updates, s.Frames())
	}
	s.Apply(ActionPause)
	if !s.Advance() {
		t.Fatal("resumed session did not advance")
	}
}

func TestSessionResetAndReseed(t *testing.T) {
	sk := &countingSketch{}
	s := NewSession(sk, 5, 60, nil)
	s.NewSeed = func() int64 { return 77 }
	s.Advance()

	s.Apply(ActionReset)
	if s.Seed() != 5 || s.Frames() != 0 {
		t.Fatalf("reset: seed %d frames %d", s.Seed(), s.Frames())
	}
	s.Apply(ActionReseed)
	if s.Seed() != 77 {
		t.Fatalf("reseed: seed %d, want 77", s.Seed())
	}
	want := []int64{5, 5, 77}
	for i, seed := range want {
		if sk.seeds[i] != seed {
			t.Fatalf("seeds = %v, want %v", sk.seeds, want)
		}
	}
}

func TestSessionQuitAndToggles(t *testing.T) {
	hud := ui.NewHUD(100)
	s := NewSession(&countingSketch{}, 1, 60, hud)
	if !s.Apply(ActionQuit) {
		t.Fatal("quit not reported")
	}
	if s.Apply(ActionNone) {
		t.Fatal("no-op action reported quit")
	}

	hudBefore := hud.Visible()
	s.Apply(ActionHUD)
	if hud.Visible() == hudBefore {
		t.Fatal("HUD toggle had no effect")
	}

	rec := render.NewRecorder()
	s.Draw(rec)
	if rec.Count(render.OpStrokeLine) != 0 {
		t.Fatal("overlay drawn before being enabled")
	}
	s.Apply(ActionOverlay)
	rec.Reset()
	s.Draw(rec)
	if rec.Count(render.OpFillRect) != 1 || rec.Count(render.OpStrokeLine) != 1 {
		t.Fatalf("draw counts = %v", rec.Counts())
	}
}

func TestSessionHUDLines(t *testing.T) {
	s := NewSession(&countingSketch{}, 9, 60, nil)
	s.Advance()
	lines := s.HUDLines()
	if lines[0] != "counting" {
		t.Fatalf("title = %q", lines[0])
	}
	found := false
	for _, l := range lines {
		if l == "  Updates: 1" {
			found = true
		}
	}
	if !found {
		t.Fatalf("parameters missing from HUD: %q", lines)
	}
}

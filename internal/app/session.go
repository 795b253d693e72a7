package app

import (
	"errors"
	"time"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/ui"
)

// ErrNoDisplay is returned by Run in builds without the ebiten tag.
var ErrNoDisplay = errors.New("app: window support requires building with -tags ebiten")

// Action is a user command, independent of how it was triggered.
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionPause
	ActionStep
	ActionReset
	ActionReseed
	ActionOverlay
	ActionHUD
)

// Session owns a running sketch: its clock, pause state, seed and overlays.
// It holds everything the window loop does apart from input and drawing to
// the screen.
type Session struct {
	sketch   core.Sketch
	clock    *core.Clock
	tps      int
	seed     int64
	paused   bool
	tickOnce bool

	overlay *ui.Overlay
	hud     *ui.HUD

	// NewSeed picks the seed for ActionReseed.
	NewSeed func() int64
}

// NewSession resets s with seed and prepares it to run at tps.
func NewSession(s core.Sketch, seed int64, tps int, hud *ui.HUD) *Session {
	if tps <= 0 {
		tps = 60
	}
	sess := &Session{
		sketch:  s,
		clock:   core.NewClock(tps),
		tps:     tps,
		overlay: ui.NewOverlay(s),
		hud:     hud,
		NewSeed: func() int64 { return time.Now().UnixNano() },
	}
	sess.Reset(seed)
	return sess
}

// Sketch returns the running sketch.
func (s *Session) Sketch() core.Sketch { return s.sketch }

// Seed returns the seed of the last reset.
func (s *Session) Seed() int64 { return s.seed }

// Paused reports whether updates are suspended.
func (s *Session) Paused() bool { return s.paused }

// Frames returns the number of updates since the last reset.
func (s *Session) Frames() int { return s.clock.Frames() }

// Overlay returns the grid overlay.
func (s *Session) Overlay() *ui.Overlay { return s.overlay }

// Reset reinitializes the sketch with the provided seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.sketch.Reset(seed)
	s.clock.Reset()
	s.tickOnce = false
	core.Logger().Info("reset", "sketch", s.sketch.Name(), "seed", seed)
}

// Apply performs a. It reports true when the session should end.
func (s *Session) Apply(a Action) bool {
	switch a {
	case ActionQuit:
		return true
	case ActionPause:
		s.paused = !s.paused
	case ActionStep:
		s.tickOnce = true
	case ActionReset:
		s.Reset(s.seed)
	case ActionReseed:
		s.Reset(s.NewSeed())
	case ActionOverlay:
		s.overlay.Toggle()
	case ActionHUD:
		if s.hud != nil {
			s.hud.Toggle()
		}
	}
	return false
}

// Advance runs one fixed-step update unless paused. A pending single step
// runs even while paused. It reports whether the sketch was updated.
func (s *Session) Advance() bool {
	if s.paused && !s.tickOnce {
		return false
	}
	s.sketch.Update(s.clock.Tick())
	s.tickOnce = false
	return true
}

// Draw renders the sketch and, when enabled, its grid overlay.
func (s *Session) Draw(c core.Canvas) {
	s.sketch.Draw(c)
	s.overlay.Draw(c)
}

// HUDLines formats the HUD text for the current state.
func (s *Session) HUDLines() []string {
	var snap core.ParameterSnapshot
	if p, ok := s.sketch.(core.ParameterProvider); ok {
		snap = p.Parameters()
	}
	return ui.Lines(ui.Status{
		Sketch:  s.sketch.Name(),
		Seed:    s.seed,
		TPS:     s.tps,
		Frame:   s.clock.Frames(),
		Paused:  s.paused,
		Overlay: s.overlay.Visible(),
	}, snap)
}

//go:build ebiten

package app

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/riverfr0zen/sketches-sub000/internal/config"
	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/internal/render"
	"github.com/riverfr0zen/sketches-sub000/internal/ui"
)

const hudWidth = 260

var keyActions = []struct {
	keys   []ebiten.Key
	action Action
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, ActionQuit},
	{[]ebiten.Key{ebiten.KeySpace}, ActionPause},
	{[]ebiten.Key{ebiten.KeyN}, ActionStep},
	{[]ebiten.Key{ebiten.KeyR}, ActionReset},
	{[]ebiten.Key{ebiten.KeyS}, ActionReseed},
	{[]ebiten.Key{ebiten.KeyG}, ActionOverlay},
	{[]ebiten.Key{ebiten.KeyH}, ActionHUD},
}

// Game adapts a Session to the ebiten.Game interface. The sketch draws into
// an offscreen frame at its own size, which is then scaled onto the screen.
type Game struct {
	session *Session
	hud     *ui.HUD
	frame   *ebiten.Image
	canvas  *render.EbitenCanvas
	scale   int
}

// New constructs a Game for the provided sketch.
func New(s core.Sketch, scale int, seed int64, tps int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := s.Size()
	frame := ebiten.NewImage(size.W, size.H)
	hud := ui.NewHUD(hudWidth)
	return &Game{
		session: NewSession(s, seed, tps, hud),
		hud:     hud,
		frame:   frame,
		canvas:  render.NewEbitenCanvas(frame),
		scale:   scale,
	}
}

// Update handles input and advances the sketch.
func (g *Game) Update() error {
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if inpututil.IsKeyJustPressed(k) && g.session.Apply(ka.action) {
				return ebiten.Termination
			}
		}
	}
	g.session.Advance()
	return nil
}

// Draw renders the current sketch state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.session.Draw(g.canvas)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.frame, op)
	g.hud.Draw(screen, g.session.HUDLines())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.session.Sketch().Size()
	return s.W * g.scale, s.H * g.scale
}

// Run opens a window and runs s until the user quits.
func Run(s core.Sketch, cfg *config.Config) error {
	game := New(s, cfg.Scale, cfg.Seed, cfg.TPS)
	size := s.Size()

	ebiten.SetWindowTitle("sketchbook - " + s.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*game.scale, size.H*game.scale)

	core.Logger().Info("window opened", "sketch", s.Name(), "width", size.W, "height", size.H, "scale", game.scale)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("app: %w", err)
	}
	return nil
}

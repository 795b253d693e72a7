//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 15
	baseline     = 11
)

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 210}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor   = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	footerColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

// HUD renders a translucent text panel in the top-left corner.
type HUD struct {
	width   int
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a visible HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{width: width, visible: true}
}

// Toggle flips visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the HUD is shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Draw paints lines followed by the key help onto screen.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	if !h.Visible() || h.width <= 0 {
		return
	}
	help := Help()
	height := panelPadding*2 + (len(lines)+len(help)+1)*lineHeight
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(panelColor)

	face := basicfont.Face7x13
	y := panelPadding + baseline
	for i, line := range lines {
		col := textColor
		if i == 0 {
			col = titleColor
		}
		text.Draw(h.panel, line, face, panelPadding, y, col)
		y += lineHeight
	}
	y += lineHeight
	for _, line := range help {
		text.Draw(h.panel, line, face, panelPadding, y, footerColor)
		y += lineHeight
	}
	screen.DrawImage(h.panel, &ebiten.DrawImageOptions{})
}

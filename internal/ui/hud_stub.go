//go:build !ebiten

package ui

// HUD is a no-op placeholder for headless builds.
type HUD struct{ visible bool }

// NewHUD returns a hidden HUD in the headless build.
func NewHUD(int) *HUD { return &HUD{} }

// Toggle flips visibility.
func (h *HUD) Toggle() { h.visible = !h.visible }

// Visible reports whether the HUD would be shown.
func (h *HUD) Visible() bool { return h != nil && h.visible }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, []string) {}

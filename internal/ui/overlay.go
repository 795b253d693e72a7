package ui

import "github.com/riverfr0zen/sketches-sub000/internal/core"

// Overlay draws the grid outline of sketches that implement
// core.GridOverlayer. It starts hidden.
type Overlay struct {
	sketch  core.Sketch
	visible bool
}

// NewOverlay constructs an overlay for s.
func NewOverlay(s core.Sketch) *Overlay {
	return &Overlay{sketch: s}
}

// Supported reports whether the sketch can draw a grid overlay.
func (o *Overlay) Supported() bool {
	_, ok := o.sketch.(core.GridOverlayer)
	return ok
}

// Toggle flips visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the overlay is shown.
func (o *Overlay) Visible() bool { return o.visible }

// Draw renders the overlay onto c when visible.
func (o *Overlay) Draw(c core.Canvas) {
	if o == nil || !o.visible {
		return
	}
	if g, ok := o.sketch.(core.GridOverlayer); ok {
		g.DrawGridOverlay(c)
	}
}

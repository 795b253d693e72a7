//go:build !ebiten

package app

import (
	"github.com/riverfr0zen/sketches-sub000/internal/config"
	"github.com/riverfr0zen/sketches-sub000/internal/core"
)

// Run always fails in the headless build.
func Run(core.Sketch, *config.Config) error {
	return ErrNoDisplay
}

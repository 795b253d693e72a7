// Command sketchbook lists, renders and runs the grid sketches.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/riverfr0zen/sketches-sub000/internal/app"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/brain"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/elementary"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/life"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/mosaic"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/pulse"
	_ "github.com/riverfr0zen/sketches-sub000/internal/sketches/truchet"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		if errors.Is(err, app.ErrNoDisplay) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

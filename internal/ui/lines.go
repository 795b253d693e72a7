package ui

import (
	"fmt"
	"strings"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
)

// Status is the run state shown at the top of the HUD.
type Status struct {
	Sketch  string
	Seed    int64
	TPS     int
	Frame   int
	Paused  bool
	Overlay bool
}

// Lines formats the HUD text: a status header followed by one block per
// parameter group.
func Lines(st Status, snap core.ParameterSnapshot) []string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		st.Sketch,
		fmt.Sprintf("seed %d  tps %d  frame %d  %s", st.Seed, st.TPS, st.Frame, state),
	}
	if st.Overlay {
		lines = append(lines, "grid overlay on")
	}
	for _, g := range snap.Groups {
		if len(g.Params) == 0 {
			continue
		}
		header := g.Name
		if g.Summary != "" {
			header += " (" + g.Summary + ")"
		}
		lines = append(lines, "", strings.ToUpper(header))
		for _, p := range g.Params {
			label := p.Label
			if label == "" {
				label = p.Key
			}
			lines = append(lines, fmt.Sprintf("  %s: %s", label, p.Value))
		}
	}
	return lines
}

// Help lists the keyboard controls.
func Help() []string {
	return []string{
		"space pause   n step",
		"r reset   s new seed",
		"g grid   h hud   q quit",
	}
}

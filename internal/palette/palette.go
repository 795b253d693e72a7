// Package palette builds colour palettes for sketches. Random palettes are
// derived from the caller's RNG so they are reproducible per seed.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"

	colorful "github.com/lucasb-eyer/go-colorful"

	pcore "github.com/riverfr0zen/sketches-sub000/pkg/core"
)

// ErrInvalidHex is returned by FromHex for unparsable colour strings.
var ErrInvalidHex = errors.New("palette: invalid hex colour")

// ErrUnknownPalette is returned by Resolve for names that are neither named
// palettes nor "random".
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Random is the palette name that selects a seeded random palette.
const Random = "random"

const goldenAngle = 137.50776405003785

// Palette is an ordered list of opaque colours.
type Palette []color.RGBA

var named = map[string][]string{
	"dusk":   {"#2b2d42", "#5c4d7d", "#a05195", "#d45087", "#f95d6a", "#ffa600"},
	"sea":    {"#03045e", "#0077b6", "#00b4d8", "#90e0ef", "#caf0f8"},
	"forest": {"#1b2d1f", "#2d6a4f", "#40916c", "#74c69d", "#d8f3dc"},
	"mono":   {"#111111", "#444444", "#777777", "#aaaaaa", "#eeeeee"},
	"sorbet": {"#ffadad", "#ffd6a5", "#fdffb6", "#caffbf", "#9bf6ff", "#bdb2ff"},
	"ember":  {"#160f0f", "#6a040f", "#d00000", "#e85d04", "#faa307"},
	"paper":  {"#f4f1ea", "#1d1d1d"},
}

// Generate builds n colours spaced around the HCL hue wheel from a random
// starting hue, with lightness and chroma jittered per colour.
func Generate(rng *pcore.RNG, n int) Palette {
	if n <= 0 {
		return nil
	}
	base := rng.Range(0, 360)
	p := make(Palette, n)
	for i := range p {
		h := math.Mod(base+float64(i)*goldenAngle, 360)
		c := rng.Range(0.35, 0.75)
		l := rng.Range(0.45, 0.85)
		p[i] = toRGBA(colorful.Hcl(h, c, l))
	}
	return p
}

// Gradient returns n colours blended from a to b in Luv space, endpoints
// included.
func Gradient(a, b color.Color, n int) Palette {
	if n <= 0 {
		return nil
	}
	ca, _ := colorful.MakeColor(a)
	cb, _ := colorful.MakeColor(b)
	p := make(Palette, n)
	for i := range p {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		p[i] = toRGBA(ca.BlendLuv(cb, t))
	}
	return p
}

// FromHex parses "#rrggbb" strings into a palette.
func FromHex(hexes ...string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidHex, h)
		}
		p = append(p, toRGBA(c))
	}
	return p, nil
}

// Named returns a built-in palette.
func Named(name string) (Palette, bool) {
	hexes, ok := named[name]
	if !ok {
		return nil, false
	}
	p, err := FromHex(hexes...)
	if err != nil {
		return nil, false
	}
	return p, true
}

// Names lists the built-in palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve returns the named palette, or a generated one of n colours when
// name is "random" or empty.
func Resolve(name string, rng *pcore.RNG, n int) (Palette, error) {
	if name == "" || name == Random {
		return Generate(rng, n), nil
	}
	if p, ok := Named(name); ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// At returns the colour at i, wrapping around. An empty palette yields opaque
// black.
func (p Palette) At(i int) color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 255}
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Pick returns a random colour from the palette.
func (p Palette) Pick(rng *pcore.RNG) color.RGBA {
	return p.At(rng.IntN(len(p)))
}

// Darkest returns the colour with the lowest Lab lightness, useful as a
// background.
func (p Palette) Darkest() color.RGBA {
	if len(p) == 0 {
		return color.RGBA{A: 255}
	}
	best, bestL := p[0], math.Inf(1)
	for _, c := range p {
		cc, _ := colorful.MakeColor(c)
		if l, _, _ := cc.Lab(); l < bestL {
			best, bestL = c, l
		}
	}
	return best
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// Valid reports whether Resolve accepts name.
func Valid(name string) bool {
	if name == "" || name == Random {
		return true
	}
	_, ok := named[name]
	return ok
}

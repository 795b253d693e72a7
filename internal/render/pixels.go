package render

import (
	"image"
	"image/color"

	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

// nrgba converts any colour into non-premultiplied 8-bit RGBA. A nil colour is
// transparent.
func nrgba(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// CellImage rasterises a byte grid into an image with one pixel per cell,
// looking each value up in palette. Values past the end of the palette use
// its last colour. An empty palette yields a transparent image.
func CellImage(g *gridutils.Grid[uint8], palette []color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, max(g.Cols(), 0), max(g.Rows(), 0)))
	if len(palette) == 0 {
		return img
	}
	last := len(palette) - 1
	for i, v := range g.Data() {
		idx := min(int(v), last)
		col := palette[idx]
		base := i * 4
		img.Pix[base+0] = col.R
		img.Pix[base+1] = col.G
		img.Pix[base+2] = col.B
		img.Pix[base+3] = col.A
	}
	return img
}

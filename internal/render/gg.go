package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

var (
	// ErrInvalidFrameCount is returned when a negative number of frames is
	// requested.
	ErrInvalidFrameCount = errors.New("render: invalid frame count")
	// ErrEmptyCanvas is returned for sketches reporting a zero or negative size.
	ErrEmptyCanvas = errors.New("render: empty canvas")
)

// GGCanvas draws into an offscreen gogpu/gg context. The first drawing error
// is kept and reported by Err.
type GGCanvas struct {
	dc     *gg.Context
	err    error
	closed bool
}

// NewGGCanvas allocates a w x h canvas.
func NewGGCanvas(w, h int) *GGCanvas {
	return &GGCanvas{dc: gg.NewContext(w, h)}
}

// Width returns the canvas width in pixels.
func (c *GGCanvas) Width() int { return c.dc.Width() }

// Height returns the canvas height in pixels.
func (c *GGCanvas) Height() int { return c.dc.Height() }

// Image returns the rendered pixels.
func (c *GGCanvas) Image() image.Image { return c.dc.Image() }

// Err reports the first error returned by a fill or stroke.
func (c *GGCanvas) Err() error { return c.err }

// Close releases the context. Later calls are no-ops.
func (c *GGCanvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

// EncodePNG writes the canvas as PNG.
func (c *GGCanvas) EncodePNG(w io.Writer) error { return c.dc.EncodePNG(w) }

// SavePNG writes the canvas to path, creating parent directories.
func (c *GGCanvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return c.dc.SavePNG(path)
}

func (c *GGCanvas) check(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *GGCanvas) Clear(col color.Color) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

func (c *GGCanvas) FillRect(r gridutils.Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.check(c.dc.Fill())
}

func (c *GGCanvas) StrokeRect(r gridutils.Rect, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.check(c.dc.Stroke())
}

func (c *GGCanvas) StrokeLine(from, to gridutils.Vec2, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(from.X, from.Y, to.X, to.Y)
	c.check(c.dc.Stroke())
}

func (c *GGCanvas) FillCircle(center gridutils.Vec2, radius float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.check(c.dc.Fill())
}

func (c *GGCanvas) StrokeCircle(center gridutils.Vec2, radius, width float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.DrawCircle(center.X, center.Y, radius)
	c.check(c.dc.Stroke())
}

func (c *GGCanvas) StrokePolyline(points []gridutils.Vec2, width float64, col color.Color) {
	if len(points) < 2 {
		return
	}
	c.dc.SetColor(col)
	c.dc.SetLineWidth(width)
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.check(c.dc.Stroke())
}

// Options controls headless rendering.
type Options struct {
	// Frames is the number of updates to run before drawing.
	Frames int
	// TPS sets the simulated tick rate. Zero means 60.
	TPS int
	// Overlay draws the grid overlay for sketches that support it.
	Overlay bool
}

// RenderFrames advances s by opts.Frames fixed steps and draws the final
// state into a new canvas sized to the sketch.
func RenderFrames(s core.Sketch, opts Options) (*GGCanvas, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, opts.Frames)
	}
	size := s.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrEmptyCanvas, s.Name(), size.W, size.H)
	}
	clock := core.NewClock(opts.TPS)
	for i := 0; i < opts.Frames; i++ {
		s.Update(clock.Tick())
	}
	c := NewGGCanvas(size.W, size.H)
	if err := draw(c, s, opts.Overlay); err != nil {
		c.Close()
		return nil, err
	}
	core.Logger().Debug("rendered", "sketch", s.Name(), "frames", clock.Frames(), "elapsed", clock.Elapsed())
	return c, nil
}

// WritePNG renders s and saves it to path.
func WritePNG(s core.Sketch, path string, opts Options) error {
	c, err := RenderFrames(s, opts)
	if err != nil {
		return err
	}
	defer c.Close()
	if err := c.SavePNG(path); err != nil {
		return fmt.Errorf("render: save %s: %w", path, err)
	}
	core.Logger().Info("frame written", "sketch", s.Name(), "path", path)
	return nil
}

// WriteSequence renders opts.Frames updates of s and saves a PNG every
// `every` frames (and for the initial state) into dir as frame_NNNN.png. It
// returns the written paths in order.
func WriteSequence(s core.Sketch, dir string, every int, opts Options) ([]string, error) {
	if opts.Frames < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFrameCount, opts.Frames)
	}
	if every <= 0 {
		every = 1
	}
	size := s.Size()
	if size.W <= 0 || size.H <= 0 {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrEmptyCanvas, s.Name(), size.W, size.H)
	}
	c := NewGGCanvas(size.W, size.H)
	defer c.Close()

	var paths []string
	save := func(frame int) error {
		if err := draw(c, s, opts.Overlay); err != nil {
			return err
		}
		path := filepath.Join(dir, fmt.Sprintf("frame_%04d.png", frame))
		if err := c.SavePNG(path); err != nil {
			return fmt.Errorf("render: save %s: %w", path, err)
		}
		core.Logger().Debug("frame written", "sketch", s.Name(), "path", path)
		paths = append(paths, path)
		return nil
	}

	if err := save(0); err != nil {
		return nil, err
	}
	clock := core.NewClock(opts.TPS)
	for i := 1; i <= opts.Frames; i++ {
		s.Update(clock.Tick())
		if i%every == 0 {
			if err := save(i); err != nil {
				return paths, err
			}
		}
	}
	return paths, nil
}

func draw(c *GGCanvas, s core.Sketch, overlay bool) error {
	s.Draw(c)
	if overlay {
		if o, ok := s.(core.GridOverlayer); ok {
			o.DrawGridOverlay(c)
		}
	}
	if err := c.Err(); err != nil {
		return fmt.Errorf("render: draw %s: %w", s.Name(), err)
	}
	return nil
}

// CellSource is implemented by sketches whose state is a byte grid with a
// palette.
type CellSource interface {
	CellGrid() *gridutils.Grid[uint8]
	CellPalette() []color.RGBA
}

// WriteCellPNG saves the raw cell state of src, one pixel per cell.
func WriteCellPNG(src CellSource, w io.Writer) error {
	return png.Encode(w, CellImage(src.CellGrid(), src.CellPalette()))
}

package main

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riverfr0zen/sketches-sub000/internal/config"
	"github.com/riverfr0zen/sketches-sub000/internal/core"
	"github.com/riverfr0zen/sketches-sub000/pkg/gridutils"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { core.SetLogger(nil) })
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestListShowsEverySketch(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	for _, name := range []string{"brain", "elementary", "life", "mosaic", "pulse", "truchet"} {
		assert.Contains(t, out, name)
	}
}

func TestDescribe(t *testing.T) {
	out, err := execute(t, "describe", "mosaic", "--set", "rows=2,cols=3", "--width", "90", "--height", "60")
	require.NoError(t, err)
	assert.Contains(t, out, "mosaic")
	assert.Contains(t, out, "90x60")
	assert.Contains(t, out, "rows")
	assert.Contains(t, out, "Draw calls")
	assert.Contains(t, out, "clear")
}

func TestDescribeUnknownSketch(t *testing.T) {
	_, err := execute(t, "describe", "nope")
	assert.True(t, errors.Is(err, core.ErrUnknownSketch), "err = %v", err)
}

func TestRenderWritesPNG(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "brain.png")
	cells := filepath.Join(dir, "cells.png")
	stdout, err := execute(t, "render", "brain", "--frames", "3", "--width", "40", "--height", "40",
		"--set", "rows=10,cols=10", "-o", out, "--cells", cells)
	require.NoError(t, err)
	assert.FileExists(t, out)
	assert.FileExists(t, cells)
	assert.Contains(t, stdout, out)
}

func TestRenderCellsNeedsCellGrid(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "render", "mosaic", "--frames", "0", "--width", "32", "--height", "32",
		"-o", filepath.Join(dir, "m.png"), "--cells", filepath.Join(dir, "c.png"))
	assert.ErrorContains(t, err, "no cell grid")
}

type cellStub struct{ grid *gridutils.Grid[uint8] }

func (c cellStub) CellGrid() *gridutils.Grid[uint8] { return c.grid }
func (c cellStub) CellPalette() []color.RGBA {
	return []color.RGBA{{A: 255}, {R: 255, A: 255}}
}

func TestWriteCells(t *testing.T) {
	src := cellStub{grid: gridutils.New[uint8](3, 5, gridutils.Vec2{X: 50, Y: 30}, nil, nil)}
	src.grid.Set(1, 2, 1)

	path := filepath.Join(t.TempDir(), "cells.png")
	require.NoError(t, writeCells(src, path))
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 3, img.Bounds().Dy())
	r, _, _, _ := img.At(2, 1).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	err = writeCells(src, filepath.Join(t.TempDir(), "missing", "cells.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRenderSequence(t *testing.T) {
	dir := t.TempDir()
	_, err := execute(t, "render", "truchet", "--frames", "4", "--every", "2", "--width", "32", "--height", "32",
		"--sequence", dir)
	require.NoError(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Sketch = "life"
	cfg.Width, cfg.Height = 30, 20
	cfg.Frames = 1
	cfg.Output = filepath.Join(dir, "from-config.png")
	cfgPath := filepath.Join(dir, "cfg.yaml")
	require.NoError(t, config.Save(cfgPath, cfg))

	_, err := execute(t, "--config", cfgPath, "render")
	require.NoError(t, err)
	assert.FileExists(t, cfg.Output)
}

func TestRenderRejectsBadFlags(t *testing.T) {
	_, err := execute(t, "render", "life", "--tps", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSweep(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "sweep", "pulse", "--count", "3", "--workers", "2", "--frames", "1",
		"--width", "24", "--height", "24", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, ".png"))
	for _, seed := range []string{"42", "43", "44"} {
		assert.FileExists(t, filepath.Join(dir, "pulse_seed"+seed+".png"))
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketch.yaml")
	_, err := execute(t, "config", "init", path)
	require.NoError(t, err)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), loaded)

	_, err = execute(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")
	_, err = execute(t, "config", "init", path, "--force")
	assert.NoError(t, err)
}

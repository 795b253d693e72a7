package core

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownSketch is returned by Lookup for names that were never registered.
var ErrUnknownSketch = errors.New("sketchbook: unknown sketch")

// Size describes the pixel dimensions of a sketch canvas.
type Size struct {
	W int
	H int
}

// Sketch defines the minimal contract a visual sketch must implement. The host
// loop calls Update once per tick and Draw once per frame.
type Sketch interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Update(dt float64)
	Draw(c Canvas)
}

// ParameterProvider is implemented by sketches that expose their tunables.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// GridOverlayer is implemented by sketches that can outline their grid.
type GridOverlayer interface {
	DrawGridOverlay(c Canvas)
}

// Factory constructs a Sketch using an optional configuration map.
type Factory func(cfg map[string]string) Sketch

var sketches = map[string]Factory{}

// Register adds a sketch factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sketches[name] = f
}

// Sketches exposes the registry of available sketch factories.
func Sketches() map[string]Factory {
	return sketches
}

// Names returns the registered sketch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sketches))
	for name := range sketches {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, error) {
	f, ok := sketches[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSketch, name)
	}
	return f, nil
}

// Package config loads sketchbook settings from YAML files and command-line
// flags. Flags that were set explicitly override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/riverfr0zen/sketches-sub000/internal/core"
)

// ErrInvalidConfig wraps every validation and decoding failure.
var ErrInvalidConfig = errors.New("config: invalid config")

const (
	DefaultSketch = "mosaic"
	DefaultSeed   = 42
	DefaultTPS    = 60
	DefaultScale  = 1
	DefaultFrames = 120
	DefaultOutput = "out.png"
)

// Config holds the settings shared by the render and run commands.
type Config struct {
	Sketch  string            `yaml:"sketch"`
	Width   int               `yaml:"width"`
	Height  int               `yaml:"height"`
	Seed    int64             `yaml:"seed"`
	TPS     int               `yaml:"tps"`
	Scale   int               `yaml:"scale"`
	Frames  int               `yaml:"frames"`
	Output  string            `yaml:"output"`
	Overlay bool              `yaml:"overlay"`
	Params  map[string]string `yaml:"params,omitempty"`
}

// DefaultConfig returns a Config populated with sensible defaults. Width and
// Height are zero, meaning each sketch picks its own size.
func DefaultConfig() *Config {
	return &Config{
		Sketch: DefaultSketch,
		Seed:   DefaultSeed,
		TPS:    DefaultTPS,
		Scale:  DefaultScale,
		Frames: DefaultFrames,
		Output: DefaultOutput,
		Params: map[string]string{},
	}
}

// Load reads a YAML file on top of the defaults. Unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.Logger().Info("config loaded", "path", path, "sketch", cfg.Sketch)
	return cfg, nil
}

// Save writes cfg as YAML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	core.Logger().Info("config saved", "path", path)
	return nil
}

// Validate reports every out-of-range field, each wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}
	if c.Sketch == "" {
		bad("sketch must be set")
	}
	if c.Width < 0 || c.Height < 0 {
		bad("size %dx%d must not be negative", c.Width, c.Height)
	}
	if c.TPS <= 0 {
		bad("tps %d must be positive", c.TPS)
	}
	if c.Scale < 1 {
		bad("scale %d must be at least 1", c.Scale)
	}
	if c.Frames < 0 {
		bad("frames %d must not be negative", c.Frames)
	}
	return errors.Join(errs...)
}

// SketchParams returns the options handed to a sketch factory: the Params map
// plus width and height when they are set.
func (c *Config) SketchParams() map[string]string {
	out := make(map[string]string, len(c.Params)+2)
	maps.Copy(out, c.Params)
	if c.Width > 0 {
		out["width"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		out["height"] = strconv.Itoa(c.Height)
	}
	return out
}

// Bind attaches the configuration to the provided FlagSet. Sketch is not
// bound; commands take it as an argument.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for sketch reset")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "window scale multiplier")
	fs.IntVar(&c.Width, "width", c.Width, "canvas width in pixels (0 = sketch default)")
	fs.IntVar(&c.Height, "height", c.Height, "canvas height in pixels (0 = sketch default)")
	fs.IntVar(&c.Frames, "frames", c.Frames, "updates to run before rendering")
	fs.StringVarP(&c.Output, "out", "o", c.Output, "output PNG path")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "draw the grid overlay")
	fs.StringToStringVar(&c.Params, "set", nil, "sketch parameter as key=value (repeatable)")
}

// Resolve builds the effective configuration: defaults, then the file at path
// (if any), then every flag in fs that was set explicitly, read from flags.
// flags must be the Config that was bound to fs.
func Resolve(path string, fs *pflag.FlagSet, flags *Config) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if fs != nil && flags != nil {
		fs.Visit(func(f *pflag.Flag) {
			switch f.Name {
			case "seed":
				cfg.Seed = flags.Seed
			case "tps":
				cfg.TPS = flags.TPS
			case "scale":
				cfg.Scale = flags.Scale
			case "width":
				cfg.Width = flags.Width
			case "height":
				cfg.Height = flags.Height
			case "frames":
				cfg.Frames = flags.Frames
			case "out":
				cfg.Output = flags.Output
			case "overlay":
				cfg.Overlay = flags.Overlay
			case "set":
				maps.Copy(cfg.Params, flags.Params)
			}
		})
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

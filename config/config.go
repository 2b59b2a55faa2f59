// Package config loads and saves bitpaint settings as TOML or YAML.
//
// Files are decoded on top of Default, so missing keys keep their default
// values. LoadOrCreate writes the defaults when the file does not exist and
// rewrites files that lack keys present in the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/convert"
)

// Sentinel errors.
var (
	ErrUnsupportedFormat = errors.New("config: unsupported file format")
	ErrInvalid           = errors.New("config: invalid value")
)

// Config is the complete bitpaint configuration.
type Config struct {
	Debug  bool   `toml:"debug" yaml:"debug"`
	Paths  Paths  `toml:"paths" yaml:"paths"`
	Render Render `toml:"render" yaml:"render"`
}

// Paths holds the default directories of the commands.
type Paths struct {
	Input  string `toml:"default_input" yaml:"default_input"`
	Output string `toml:"default_output" yaml:"default_output"`
}

// Render holds the default rendering parameters.
type Render struct {
	Width     int     `toml:"width" yaml:"width"`
	Height    int     `toml:"height" yaml:"height"`
	LineWidth float64 `toml:"line_width" yaml:"line_width"`
	Fill      bool    `toml:"fill" yaml:"fill"`
	// Zero and One are the colors of Black and White pixels in exported
	// images, as hex values or color keywords.
	Zero string `toml:"zero_color" yaml:"zero_color"`
	One  string `toml:"one_color" yaml:"one_color"`
	// Threshold is the gray level in [0, 1] above which imported pixels
	// become White.
	Threshold float64 `toml:"threshold" yaml:"threshold"`
}

// Default returns the embedded default configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			Input:  "input",
			Output: "output",
		},
		Render: Render{
			Width:     512,
			Height:    512,
			LineWidth: 1,
			Fill:      true,
			Zero:      "#000000",
			One:       "#ffffff",
			Threshold: 0.5,
		},
	}
}

// Validate checks the value ranges.
func (c Config) Validate() error {
	r := c.Render
	if r.Width < 1 || r.Height < 1 {
		return fmt.Errorf("%w: render size %dx%d", ErrInvalid, r.Width, r.Height)
	}
	if !(r.LineWidth > 0) {
		return fmt.Errorf("%w: line width %g", ErrInvalid, r.LineWidth)
	}
	if r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("%w: threshold %g", ErrInvalid, r.Threshold)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Palette returns the export palette.
func (c Config) Palette() (convert.Palette, error) {
	return convert.NewPalette(c.Render.Zero, c.Render.One)
}

// RenderOptions returns the shape rendering options for the unit viewport.
func (c Config) RenderOptions() bitpaint.RenderOptions {
	return bitpaint.RenderOptions{
		Fill:      c.Render.Fill,
		LineWidth: c.Render.LineWidth,
		Viewport:  bitpaint.UnitViewport,
	}
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, path)
	}
}

func (f format) marshal(v any) ([]byte, error) {
	if f == formatYAML {
		return yaml.Marshal(v)
	}
	return toml.Marshal(v)
}

func (f format) unmarshal(data []byte, v any) error {
	if f == formatYAML {
		return yaml.Unmarshal(data, v)
	}
	return toml.Unmarshal(data, v)
}

// Load reads path and decodes it on top of Default.
func Load(path string) (Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// load also reports whether the file lacks keys present in the defaults.
func load(path string) (Config, bool, error) {
	f, err := formatOf(path)
	if err != nil {
		return Config{}, false, err
	}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return Config{}, false, err
	}

	cfg := Default()
	if err := f.unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false, fmt.Errorf("config: %s: %w", path, err)
	}

	missing, err := missingKeys(f, data)
	if err != nil {
		return Config{}, false, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, missing, nil
}

// LoadOrCreate loads path, writing the defaults first if it does not exist.
// A file that lacks keys is rewritten with the missing defaults filled in.
func LoadOrCreate(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := Default()
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
		bitpaint.Logger().Info("config: defaults written", "path", path)
		return cfg, nil
	}

	cfg, missing, err := load(path)
	if err != nil {
		return Config{}, err
	}
	if missing {
		bitpaint.Logger().Warn("config: file rewritten with missing defaults", "path", path)
		if err := Save(path, cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Save writes cfg to path in the format given by the extension.
func Save(path string, cfg Config) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}
	data, err := f.marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644) //nolint:gosec // config files are not secret
}

// missingKeys reports whether data lacks a key that the encoded defaults have.
func missingKeys(f format, data []byte) (bool, error) {
	var have map[string]any
	if err := f.unmarshal(data, &have); err != nil {
		return false, err
	}
	defData, err := f.marshal(Default())
	if err != nil {
		return false, err
	}
	var want map[string]any
	if err := f.unmarshal(defData, &want); err != nil {
		return false, err
	}
	return lacks(have, want), nil
}

func lacks(have, want map[string]any) bool {
	for k, wv := range want {
		hv, ok := have[k]
		if !ok {
			return true
		}
		wm, wok := wv.(map[string]any)
		if !wok {
			continue
		}
		hm, hok := hv.(map[string]any)
		if !hok || lacks(hm, wm) {
			return true
		}
	}
	return false
}

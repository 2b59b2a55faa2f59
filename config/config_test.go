package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/bitpaint/convert"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	p, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, convert.Monochrome, p)

	opts := cfg.RenderOptions()
	assert.True(t, opts.Fill)
	assert.Equal(t, 1.0, opts.LineWidth)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero width", func(c *Config) { c.Render.Width = 0 }},
		{"negative height", func(c *Config) { c.Render.Height = -1 }},
		{"zero line width", func(c *Config) { c.Render.LineWidth = 0 }},
		{"threshold above one", func(c *Config) { c.Render.Threshold = 1.5 }},
		{"bad color", func(c *Config) { c.Render.One = "nope" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.Debug = true
	cfg.Paths.Output = "renders"
	cfg.Render.Width = 640
	cfg.Render.One = "orange"

	for _, name := range []string{"c.toml", "c.yaml", "c.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, cfg))
			got, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, cfg, got)
		})
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	dir := t.TempDir()

	toml := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(toml, []byte("debug = true\n[render]\nwidth = 100\n"), 0o644))
	got, err := Load(toml)
	require.NoError(t, err)
	assert.True(t, got.Debug)
	assert.Equal(t, 100, got.Render.Width)
	assert.Equal(t, 512, got.Render.Height)
	assert.Equal(t, "input", got.Paths.Input)

	yml := filepath.Join(dir, "partial.yaml")
	require.NoError(t, os.WriteFile(yml, []byte("render:\n  fill: false\n"), 0o644))
	got, err = Load(yml)
	require.NoError(t, err)
	assert.False(t, got.Render.Fill)
	assert.Equal(t, 0.5, got.Render.Threshold)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "c.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[render\nwidth = "), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("render:\n  width: 0\n"), 0o644))
	_, err = Load(invalid)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadOrCreate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "bitpaint.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.FileExists(t, path)

	again, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestLoadOrCreateFillsMissingKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bitpaint.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug: true\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.True(t, cfg.Debug)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_output")
	assert.Contains(t, string(data), "threshold")

	missing, err := missingKeys(formatYAML, data)
	require.NoError(t, err)
	assert.False(t, missing)
}

func TestLacks(t *testing.T) {
	want := map[string]any{"a": 1, "b": map[string]any{"c": 2}}
	assert.False(t, lacks(map[string]any{"a": 3, "b": map[string]any{"c": 4, "d": 5}}, want))
	assert.True(t, lacks(map[string]any{"a": 3}, want))
	assert.True(t, lacks(map[string]any{"a": 3, "b": map[string]any{}}, want))
	assert.True(t, lacks(map[string]any{"a": 3, "b": 7}, want))
}

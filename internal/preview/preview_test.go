package preview

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/config"
	"github.com/gogpu/bitpaint/convert"
)

func smallConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Render.Width, cfg.Render.Height = 64, 64
	cfg.Paths.Output = t.TempDir()
	return cfg
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	got, ok := next.(Model)
	require.True(t, ok)
	return got
}

func TestBraille(t *testing.T) {
	t.Run("single dot", func(t *testing.T) {
		bm := bitpaint.NewBitmapOfSize(4, 4, bitpaint.Black)
		c := bm.Canvas()
		c.Line(bitpaint.V2(0, 0), bitpaint.V2(0, 0), 1)
		assert.Equal(t, []string{"⠁ "}, Braille(c.Bitmap(), 2, 1))
	})

	t.Run("full", func(t *testing.T) {
		bm := bitpaint.NewBitmapOfSize(8, 8, bitpaint.White)
		assert.Equal(t, []string{"⣿⣿⣿⣿", "⣿⣿⣿⣿"}, Braille(bm, 4, 2))
	})

	t.Run("thin line survives downscaling", func(t *testing.T) {
		c := bitpaint.NewCanvas(64, 64)
		c.Line(bitpaint.V2(0, 0), bitpaint.V2(63, 0), 1)
		got := Braille(c.Bitmap(), 4, 2)
		assert.Equal(t, []string{"⠉⠉⠉⠉", "    "}, got)
	})

	t.Run("aspect kept", func(t *testing.T) {
		bm := bitpaint.NewBitmapOfSize(64, 16, bitpaint.White)
		got := Braille(bm, 10, 10)
		// 20 dots wide, 5 dots high: 10 cells by 2 cells.
		require.Len(t, got, 2)
		assert.Equal(t, 10, len([]rune(got[0])))
	})

	t.Run("no room", func(t *testing.T) {
		assert.Nil(t, Braille(bitpaint.NewBitmapOfSize(4, 4, bitpaint.White), 0, 3))
	})
}

func TestNewLoadsFirstSource(t *testing.T) {
	m := New(smallConfig(t), "")
	require.NotNil(t, m.view)
	assert.Equal(t, "bullseye", m.name)
	assert.Len(t, m.l.Items(), len(builtinSources(m.cfg)))
}

func TestBuiltinSourcesRender(t *testing.T) {
	for _, src := range builtinSources(smallConfig(t)) {
		t.Run(src.title, func(t *testing.T) {
			bm, err := src.load()
			require.NoError(t, err)
			assert.Equal(t, 64, bm.Width())
			assert.Positive(t, bm.Count())
		})
	}
}

func TestFileSources(t *testing.T) {
	dir := t.TempDir()
	bm := bitpaint.NewBitmapOfSize(16, 8, bitpaint.White)
	require.NoError(t, convert.Save(filepath.Join(dir, "b.png"), bm, convert.Monochrome, nil))
	require.NoError(t, convert.Save(filepath.Join(dir, "a.bmp"), bm, convert.Monochrome, nil))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	srcs, err := fileSources(dir, 0.5)
	require.NoError(t, err)
	require.Len(t, srcs, 2)
	assert.Equal(t, "a.bmp", srcs[0].title)
	assert.Equal(t, "png", srcs[1].desc)

	got, err := srcs[1].load()
	require.NoError(t, err)
	assert.True(t, got.Equal(bm))

	_, err = fileSources(filepath.Join(dir, "missing"), 0.5)
	assert.Error(t, err)
}

func TestViewOperations(t *testing.T) {
	dir := t.TempDir()
	c := bitpaint.NewCanvas(16, 8)
	c.Rectangle(bitpaint.V2(0, 0), bitpaint.V2(7, 7))
	path := filepath.Join(dir, "half.png")
	require.NoError(t, convert.SavePNG(path, c.Bitmap(), convert.Monochrome, nil))

	cfg := smallConfig(t)
	m := NewWithPath(cfg, path)
	require.Equal(t, "half.png", m.name)
	base := m.base

	m = update(t, m, key("i"))
	assert.True(t, m.view.Equal(base.Invert()))

	m = update(t, m, key("i"))
	m = update(t, m, key("e"))
	assert.True(t, m.view.Equal(base.EdgeDetect()))

	m = update(t, m, key("0"))
	m = update(t, m, key("r"))
	assert.Equal(t, 8, m.view.Width())
	assert.Equal(t, 16, m.view.Height())
	assert.Equal(t, base.Count(), m.view.Count())

	m = update(t, m, key("0"))
	assert.True(t, m.view.Equal(base))

	m = update(t, m, key("s"))
	assert.FileExists(t, filepath.Join(cfg.Paths.Output, "half.png"))
	assert.Contains(t, m.status, "saved")
}

func TestSaveCreatesOutputDir(t *testing.T) {
	cfg := smallConfig(t)
	cfg.Paths.Output = filepath.Join(t.TempDir(), "renders", "guides")
	m := New(cfg, "")

	m = update(t, m, key("s"))
	require.Contains(t, m.status, "saved")
	got, _, err := convert.Load(filepath.Join(cfg.Paths.Output, "bullseye.png"), 0.5)
	require.NoError(t, err)
	assert.True(t, got.Equal(m.view))

	blocked := smallConfig(t)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	blocked.Paths.Output = filepath.Join(file, "sub")
	m = New(blocked, "")
	m = update(t, m, key("s"))
	assert.Contains(t, m.status, "save error")
}

func TestLoadError(t *testing.T) {
	m := New(smallConfig(t), "")
	prev := m.view
	m.load(fileSource(filepath.Join(t.TempDir(), "missing.png"), 0.5))
	assert.Contains(t, m.status, "load error")
	assert.Same(t, prev, m.view)
}

func TestViewAndQuit(t *testing.T) {
	m := New(smallConfig(t), "")
	assert.Empty(t, m.View())

	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 30})
	out := m.View()
	assert.Contains(t, out, "bitview")
	assert.Contains(t, out, "q quit")

	m = update(t, m, key("h"))
	assert.NotContains(t, m.View(), "q quit")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

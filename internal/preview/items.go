package preview

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/config"
	"github.com/gogpu/bitpaint/convert"
	"github.com/gogpu/bitpaint/patterns"
	"github.com/gogpu/bitpaint/shapes"
)

// source is a list entry that produces a bitmap on demand.
type source struct {
	title, desc string
	load        func() (*bitpaint.Bitmap, error)
}

func (s source) Title() string       { return s.title }
func (s source) Description() string { return s.desc }
func (s source) FilterValue() string { return s.title }

// imageExts are the file extensions offered in the file list.
var imageExts = map[string]bool{
	".png": true, ".bmp": true, ".tif": true, ".tiff": true,
	".webp": true, ".gif": true, ".jpg": true, ".jpeg": true,
}

// builtinSources returns generated guide images sized by cfg.
func builtinSources(cfg config.Config) []source {
	w, h := cfg.Render.Width, cfg.Render.Height
	opts := cfg.RenderOptions()
	shape := func(mk func() (*bitpaint.Shape, error)) func() (*bitpaint.Bitmap, error) {
		return func() (*bitpaint.Bitmap, error) {
			s, err := mk()
			if err != nil {
				return nil, err
			}
			return bitpaint.Render(s, w, h, opts)
		}
	}
	rings := patterns.Rings{
		Width: w, Height: h,
		LineWidthX: max(1, w/32), LineWidthY: max(1, h/32),
		CenterX: w / 2, CenterY: h / 2,
	}

	return []source{
		{"bullseye", "pattern", func() (*bitpaint.Bitmap, error) { return patterns.Bullseye(rings) }},
		{"rectangular bullseye", "pattern", func() (*bitpaint.Bitmap, error) { return patterns.RectangularBullseye(rings) }},
		{"checkerboard", "pattern", func() (*bitpaint.Bitmap, error) { return patterns.Checkerboard(w, h, 8, 8) }},
		{"ellipse", "pattern", func() (*bitpaint.Bitmap, error) {
			return patterns.Ellipse(patterns.Box{
				BitmapWidth: w, BitmapHeight: h,
				Width: float64(w) / 2, Height: float64(h) / 2,
				CenterX: float64(w) / 2, CenterY: float64(h) / 2,
			})
		}},
		{"hexagon", "shape", shape(func() (*bitpaint.Shape, error) {
			return shapes.NPolygon(0.5, 0.5, 0.5, 0.5, 6)
		})},
		{"star", "shape", shape(func() (*bitpaint.Shape, error) {
			return shapes.Star(5, 0.8, 0.36, 0.5, 0.5)
		})},
		{"hexagon grid", "shape", shape(func() (*bitpaint.Shape, error) {
			hex, err := shapes.NPolygon(1, 1, 0.5, 0.5, 6)
			if err != nil {
				return nil, err
			}
			return shapes.Grid(hex, shapes.GridOptions{Width: 0.9, Height: 0.9, Columns: 6, Rows: 6, InbetweenSkip: 1, RowSkipOffset: 1})
		})},
		{"square spiral", "shape", shape(func() (*bitpaint.Shape, error) {
			return shapes.Copycat(shapes.Rectangle(0.6, 0.6, 0.5, 0.5), 12, shapes.Step{Degrees: 7.5, ScaleX: 0.92, ScaleY: 0.92})
		})},
	}
}

// fileSources lists the image files in dir, sorted by name.
func fileSources(dir string, threshold float64) ([]source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []source
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !imageExts[ext] {
			continue
		}
		p := filepath.Join(dir, e.Name())
		out = append(out, fileSource(p, threshold))
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].title < out[j].title })
	return out, nil
}

func fileSource(path string, threshold float64) source {
	return source{
		title: filepath.Base(path),
		desc:  strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
		load: func() (*bitpaint.Bitmap, error) {
			bm, _, err := convert.Load(path, threshold)
			if err != nil {
				return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
			}
			return bm, nil
		},
	}
}

func listItems(srcs []source) []list.Item {
	items := make([]list.Item, len(srcs))
	for i, s := range srcs {
		items[i] = s
	}
	return items
}

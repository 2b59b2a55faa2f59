package bitpaint

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// dump renders a canvas region as text for test failure messages.
func dump(c *Canvas) string {
	var sb strings.Builder
	for y := 0; y < min(c.Height(), 40); y++ {
		for x := 0; x < min(c.Width(), 80); x++ {
			if c.Pixel(x, y).On() {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func canvasCount(c *Canvas) int {
	return c.plane.count()
}

func TestNewCanvas_Size(t *testing.T) {
	tests := []struct {
		w, h         float64
		wantW, wantH int
	}{
		{512, 512, 512, 512},
		{10.4, 9.6, 10, 10},
		{4, 4, 4, 4},
		{2, 2, 4, 4},
		{2, 8, 4, 16},
		{3, 100, 4, 133},
		{0, 0, 4, 4},
		{-5, 20, 4, 80},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%vx%v", tt.w, tt.h), func(t *testing.T) {
			c := NewCanvas(tt.w, tt.h)
			if c.Width() != tt.wantW || c.Height() != tt.wantH {
				t.Errorf("NewCanvas(%v, %v) = %dx%d, want %dx%d",
					tt.w, tt.h, c.Width(), c.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewCanvas_DefaultState(t *testing.T) {
	c := NewCanvas(32, 16)
	if canvasCount(c) != 0 {
		t.Error("new canvas is not cleared")
	}
	if c.Color() != White {
		t.Errorf("Color() = %v, want white", c.Color())
	}
	if !c.Fill() {
		t.Error("Fill() = false, want true")
	}
}

func TestCanvas_DrawState(t *testing.T) {
	c := NewCanvas(8, 8)
	c.FlipDrawColor()
	if c.Color() != Black {
		t.Errorf("FlipDrawColor: got %v", c.Color())
	}
	c.SetColorBool(true)
	if c.Color() != White {
		t.Errorf("SetColorBool(true): got %v", c.Color())
	}
	c.SetColor(ParseColor("black"))
	if c.Color() != Black {
		t.Errorf("SetColor(black): got %v", c.Color())
	}
	c.SetFill(false)
	if c.Fill() {
		t.Error("SetFill(false) ignored")
	}
}

func TestCanvas_RectangleScenario(t *testing.T) {
	c := NewCanvas(512, 512)
	c.Rectangle(V2(356, 306), V2(156, 206))

	if got, want := canvasCount(c), 201*101; got != want {
		t.Fatalf("count = %d, want %d", got, want)
	}
	inside := [][2]int{{156, 206}, {356, 206}, {156, 306}, {356, 306}, {256, 256}}
	for _, p := range inside {
		if !c.Pixel(p[0], p[1]).On() {
			t.Errorf("pixel %v should be white", p)
		}
	}
	outside := [][2]int{{155, 206}, {357, 306}, {256, 205}, {256, 307}, {0, 0}}
	for _, p := range outside {
		if c.Pixel(p[0], p[1]).On() {
			t.Errorf("pixel %v should be black", p)
		}
	}
}

func TestCanvas_RectangleOutline(t *testing.T) {
	c := NewCanvas(512, 512)
	c.SetFill(false)
	c.Rectangle(V2(156, 206), V2(356, 306))
	if got, want := canvasCount(c), 2*201+2*99; got != want {
		t.Errorf("outline count = %d, want %d", got, want)
	}
	if c.Pixel(256, 256).On() {
		t.Error("outline covers the interior")
	}
}

func TestCanvas_RectangleBlack(t *testing.T) {
	c := NewCanvas(16, 16)
	c.Rectangle(V2(0, 0), V2(15, 15))
	c.SetColor(Black)
	c.Rectangle(V2(4, 4), V2(11, 11))
	if got, want := canvasCount(c), 256-64; got != want {
		t.Errorf("count = %d, want %d", got, want)
	}
}

func TestCanvas_Ellipse(t *testing.T) {
	c := NewCanvas(40, 40)
	c.Ellipse(V2(30, 20), V2(10, 10))

	for _, p := range [][2]int{{20, 10}, {20, 20}, {10, 15}, {30, 15}, {20, 15}} {
		if !c.Pixel(p[0], p[1]).On() {
			t.Errorf("pixel %v should be inside\n%s", p, dump(c))
		}
	}
	for _, p := range [][2]int{{10, 10}, {30, 10}, {10, 20}, {30, 20}, {9, 15}, {31, 15}, {20, 9}, {20, 21}} {
		if c.Pixel(p[0], p[1]).On() {
			t.Errorf("pixel %v should be outside\n%s", p, dump(c))
		}
	}

	outline := NewCanvas(40, 40)
	outline.SetFill(false)
	outline.Ellipse(V2(10, 10), V2(30, 20))
	if outline.Pixel(20, 15).On() {
		t.Error("outline ellipse covers the center")
	}
	if !outline.Pixel(10, 15).On() {
		t.Error("outline ellipse misses the left extreme")
	}
}

func TestCanvas_Polygon(t *testing.T) {
	square := []Vec2{V2(2, 2), V2(7, 2), V2(7, 7), V2(2, 7)}

	tests := []struct {
		name   string
		fill   bool
		points []Vec2
		want   int
	}{
		{"filled square", true, square, 36},
		{"outlined square", false, square, 20},
		{"single point", true, []Vec2{V2(3, 3)}, 1},
		{"segment", true, []Vec2{V2(1, 1), V2(6, 1)}, 6},
		{"empty", true, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(10, 10)
			c.SetFill(tt.fill)
			c.Polygon(tt.points)
			if got := canvasCount(c); got != tt.want {
				t.Errorf("count = %d, want %d\n%s", got, tt.want, dump(c))
			}
		})
	}
}

func TestCanvas_Line(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Line(V2(0, 0), V2(9, 0), 1)
	if got := canvasCount(c); got != 10 {
		t.Errorf("hairline count = %d, want 10", got)
	}

	thick := NewCanvas(10, 10)
	thick.Line(V2(2, 5), V2(7, 5), 3)
	if got := canvasCount(thick); got != 18 {
		t.Errorf("thick line count = %d, want 18\n%s", got, dump(thick))
	}
}

func TestCanvas_FarGeometry(t *testing.T) {
	c := NewCanvas(32, 32)
	c.Line(V2(0, 10), V2(1e9, 10), 1)
	if got := canvasCount(c); got != 32 {
		t.Errorf("far hairline count = %d, want 32", got)
	}

	thick := NewCanvas(32, 32)
	thick.Line(V2(-1e9, 16), V2(1e9, 16), 3)
	if got := canvasCount(thick); got != 3*32 {
		t.Errorf("far thick line count = %d, want %d\n%s", got, 3*32, dump(thick))
	}

	e := NewCanvas(32, 32)
	e.Ellipse(V2(-1e30, -1e30), V2(1e30, 1e30))
	if got := canvasCount(e); got != 32*32 {
		t.Errorf("covering ellipse count = %d, want %d", got, 32*32)
	}
	e.Clear(Black)
	e.SetFill(false)
	e.Ellipse(V2(-1e30, -1e30), V2(1e30, 1e30))
	e.Rectangle(V2(math.NaN(), 0), V2(4, 4))
	if got := canvasCount(e); got != 0 {
		t.Errorf("count = %d, want 0\n%s", got, dump(e))
	}
}

func TestCanvas_Polyline(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Polyline([]Vec2{V2(0, 0), V2(9, 0), V2(9, 9)}, 1)
	if got := canvasCount(c); got != 19 {
		t.Errorf("count = %d, want 19\n%s", got, dump(c))
	}
}

func TestCanvas_MapToPixels(t *testing.T) {
	c := NewCanvas(512, 256)

	tests := []struct {
		name string
		v    Vec2
		vp   Viewport
		want Vec2
	}{
		{"origin", V2(0, 0), UnitViewport, V2(0, 0)},
		{"corner", V2(1, 1), UnitViewport, V2(511, 255)},
		{"center", V2(0.5, 0.5), UnitViewport, V2(255.5, 127.5)},
		{"offset viewport", V2(0, 0), Viewport{V2(-1, -1), V2(1, 1)}, V2(255.5, 127.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.MapToPixels(tt.v, tt.vp)
			if err != nil {
				t.Fatalf("MapToPixels() error = %v", err)
			}
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("MapToPixels(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
	if n := c.Diagnostics().OutOfViewport; n != 0 {
		t.Errorf("OutOfViewport = %d, want 0", n)
	}
}

func TestCanvas_MapToPixelsOutOfViewport(t *testing.T) {
	c := NewCanvas(100, 100)
	got, err := c.MapToPixels(V2(1.5, -0.5), UnitViewport)
	if err != nil {
		t.Fatalf("MapToPixels() error = %v", err)
	}
	if !got.Approx(V2(148.5, -49.5), epsilon) {
		t.Errorf("MapToPixels() = %v", got)
	}
	if n := c.Diagnostics().OutOfViewport; n != 1 {
		t.Errorf("OutOfViewport = %d, want 1", n)
	}
}

func TestCanvas_MapToPixelsInvalidViewport(t *testing.T) {
	c := NewCanvas(100, 100)
	_, err := c.MapToPixels(V2(0, 0), Viewport{V2(0, 0), V2(0, 1)})
	if !errors.Is(err, ErrInvalidViewport) {
		t.Errorf("error = %v, want ErrInvalidViewport", err)
	}
}

func TestCanvas_CombineXOR(t *testing.T) {
	a := NewCanvas(16, 16)
	a.Rectangle(V2(0, 0), V2(7, 15))
	b := a.ClearCopy()
	b.Rectangle(V2(4, 0), V2(11, 15))

	if err := a.CombineXOR(b); err != nil {
		t.Fatalf("CombineXOR() error = %v", err)
	}
	if got, want := canvasCount(a), 2*4*16; got != want {
		t.Errorf("count = %d, want %d", got, want)
	}
	if err := a.CombineXOR(b); err != nil {
		t.Fatal(err)
	}
	if got, want := canvasCount(a), 8*16; got != want {
		t.Errorf("double XOR count = %d, want %d", got, want)
	}
}

func TestCanvas_CombineXORMismatch(t *testing.T) {
	err := NewCanvas(16, 16).CombineXOR(NewCanvas(16, 17))
	var dm *DimensionMismatchError
	if !errors.As(err, &dm) {
		t.Fatalf("error = %v, want *DimensionMismatchError", err)
	}
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Error("error does not match ErrDimensionMismatch")
	}
	if dm.OtherHeight != 17 {
		t.Errorf("OtherHeight = %d, want 17", dm.OtherHeight)
	}
}

func TestCanvas_ClearCopy(t *testing.T) {
	c := NewCanvas(20, 10)
	c.SetColor(Black)
	c.SetFill(false)
	c.Clear(White)

	cp := c.ClearCopy()
	if cp.Width() != 20 || cp.Height() != 10 {
		t.Errorf("size = %dx%d", cp.Width(), cp.Height())
	}
	if canvasCount(cp) != 0 || cp.Color() != White || !cp.Fill() {
		t.Error("ClearCopy is not in the default state")
	}
}

func TestCanvas_BitmapSnapshot(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Rectangle(V2(0, 0), V2(1, 1))
	bm := c.Bitmap()
	c.Rectangle(V2(4, 4), V2(7, 7))

	if bm.Count() != 4 {
		t.Errorf("snapshot count = %d, want 4", bm.Count())
	}
}

func TestCanvas_Text(t *testing.T) {
	c := NewCanvas(64, 32)
	c.Text(V2(2, 14), "Hi")

	n := canvasCount(c)
	if n == 0 {
		t.Fatal("text drew nothing")
	}
	w, h := TextBounds("Hi")
	if w != 14 || h != 13 {
		t.Errorf("TextBounds = %dx%d, want 14x13", w, h)
	}
	for y := 0; y < c.Height(); y++ {
		for x := 0; x < c.Width(); x++ {
			if c.Pixel(x, y).On() && (x < 2 || x >= 2+w || y < 14-11 || y >= 14+2) {
				t.Fatalf("glyph pixel (%d,%d) outside the label box\n%s", x, y, dump(c))
			}
		}
	}

	c.SetColor(Black)
	c.Text(V2(2, 14), "Hi")
	if got := canvasCount(c); got != 0 {
		t.Errorf("erasing text left %d pixels", got)
	}
}

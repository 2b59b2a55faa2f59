package bitpaint

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestVec2_Creation(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"zero", 0, 0},
		{"positive", 3, 4},
		{"negative", -1, -2},
		{"fractional", 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V2(tt.x, tt.y)
			x, y := v.AsTuple()
			if x != tt.x || y != tt.y {
				t.Errorf("V2(%v, %v).AsTuple() = (%v, %v)", tt.x, tt.y, x, y)
			}
		})
	}
}

func TestVec2_Arithmetic(t *testing.T) {
	a, b := V2(1, 2), V2(3, -5)

	tests := []struct {
		name string
		got  Vec2
		want Vec2
	}{
		{"add", a.Add(b), V2(4, -3)},
		{"sub", a.Sub(b), V2(-2, 7)},
		{"mul", a.Mul(2.5), V2(2.5, 5)},
		{"mul zero", b.Mul(0), V2(0, 0)},
		{"neg", b.Neg(), V2(-3, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Approx(tt.want, epsilon) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if a != V2(1, 2) || b != V2(3, -5) {
		t.Error("operands were modified")
	}
}

func TestVec2_Rotate(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec2
		degrees float64
		want    Vec2
	}{
		{"zero", V2(1, 0), 0, V2(1, 0)},
		{"90", V2(1, 0), 90, V2(0, 1)},
		{"180", V2(1, 0), 180, V2(-1, 0)},
		{"270", V2(1, 0), 270, V2(0, -1)},
		{"-90", V2(0, 1), -90, V2(1, 0)},
		{"45", V2(1, 1), 45, V2(0, math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rotate(tt.degrees)
			if !got.Approx(tt.want, epsilon) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.v, tt.degrees, got, tt.want)
			}
		})
	}
}

func TestVec2_RotatePeriodicity(t *testing.T) {
	for _, v := range []Vec2{V2(1, 0), V2(-3.5, 2), V2(1e3, -7e2), V2(0, 0)} {
		full := v.Rotate(360)
		none := v.Rotate(0)
		if !full.Approx(v, 1e-9*math.Max(1, v.Length())) {
			t.Errorf("%v.Rotate(360) = %v", v, full)
		}
		if !none.Approx(v, epsilon) {
			t.Errorf("%v.Rotate(0) = %v", v, none)
		}
	}
}

func TestVec2_RotateAround(t *testing.T) {
	c := V2(0.5, 0.5)
	got := V2(1, 0.5).RotateAround(c, 90)
	want := V2(0.5, 1)
	if !got.Approx(want, epsilon) {
		t.Errorf("RotateAround = %v, want %v", got, want)
	}
	if d := got.Distance(c); math.Abs(d-0.5) > epsilon {
		t.Errorf("distance to center = %v, want 0.5", d)
	}
}

func TestVec2_Length(t *testing.T) {
	if got := V2(3, 4).Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := V2(1, 1).Distance(V2(4, 5)); got != 5 {
		t.Errorf("Distance() = %v, want 5", got)
	}
}

func TestVec2_Coord(t *testing.T) {
	v := V2(1.25, -3)
	if got := FromCoord(v.Coord()); got != v {
		t.Errorf("FromCoord(Coord()) = %v, want %v", got, v)
	}
}

func TestBoundsOf(t *testing.T) {
	tests := []struct {
		name string
		pts  []Vec2
		want Box
	}{
		{"empty", nil, UnitBox},
		{"single", []Vec2{V2(2, 3)}, Box{V2(2, 3), V2(2, 3)}},
		{"spread", []Vec2{V2(1, 5), V2(-2, 3), V2(4, -1)}, Box{V2(-2, -1), V2(4, 5)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoundsOf(tt.pts); !got.Approx(tt.want, epsilon) {
				t.Errorf("BoundsOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBox_Union(t *testing.T) {
	a := Box{V2(0, 0), V2(1, 1)}
	b := Box{V2(2, -1), V2(3, 0.5)}
	want := Box{V2(0, -1), V2(3, 1)}
	if got := a.Union(b); !got.Approx(want, epsilon) {
		t.Errorf("Union() = %v, want %v", got, want)
	}
	if got := want.Center(); !got.Approx(V2(1.5, 0), epsilon) {
		t.Errorf("Center() = %v", got)
	}
	if got := want.Dimensions(); !got.Approx(V2(3, 2), epsilon) {
		t.Errorf("Dimensions() = %v", got)
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		name    string
		min     Vec2
		max     Vec2
		wantErr bool
	}{
		{"unit", V2(0, 0), V2(1, 1), false},
		{"offset", V2(-1, 2), V2(3, 4), false},
		{"zero width", V2(1, 0), V2(1, 1), true},
		{"zero height", V2(0, 1), V2(1, 1), true},
		{"inverted", V2(1, 1), V2(0, 0), true},
		{"nan", V2(math.NaN(), 0), V2(1, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewViewport(tt.min, tt.max)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewViewport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	vp := Viewport{Min: V2(-1, 2), Max: V2(3, 4)}
	if got := vp.Normalize(V2(1, 3)); !got.Approx(V2(0.5, 0.5), epsilon) {
		t.Errorf("Normalize() = %v", got)
	}
	if !vp.Contains(V2(3, 4)) || vp.Contains(V2(3.1, 4)) {
		t.Error("Contains() borders wrong")
	}
}

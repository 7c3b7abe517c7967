package fmath

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func TestSmoothstepAscending(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect float64
	}{
		{name: "below edge0", x: -1.0, expect: 0},
		{name: "at edge0", x: 0.0, expect: 0},
		{name: "midpoint", x: 0.5, expect: 0.5},
		{name: "at edge1", x: 1.0, expect: 1},
		{name: "above edge1", x: 2.0, expect: 1},
		{name: "quarter", x: 0.25, expect: 0.25 * 0.25 * (3 - 2*0.25)},
	}

	for _, tc := range tests {
		if got := Smoothstep(0, 1, tc.x); math.Abs(got-tc.expect) > epsilon {
			t.Errorf("%s: Smoothstep(0,1,%f) = %f, want %f", tc.name, tc.x, got, tc.expect)
		}
	}
}

// The orange-shift weighting uses edge0 > edge1, so the ramp must run
// downhill: 1 at or below edge1, 0 at or above edge0.
func TestSmoothstepDescending(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		expect float64
	}{
		{name: "at zero", x: 0.0, expect: 1},
		{name: "below zero", x: -0.5, expect: 1},
		{name: "at edge0", x: 0.4, expect: 0},
		{name: "above edge0", x: 0.9, expect: 0},
		{name: "midpoint", x: 0.2, expect: 0.5},
	}

	for _, tc := range tests {
		if got := Smoothstep(0.4, 0.0, tc.x); math.Abs(got-tc.expect) > epsilon {
			t.Errorf("%s: Smoothstep(0.4,0,%f) = %f, want %f", tc.name, tc.x, got, tc.expect)
		}
	}
}

func TestSmoothstepDescendingMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for x := -0.2; x <= 0.7; x += 0.01 {
		got := Smoothstep(0.4, 0.0, x)
		if got > prev+epsilon {
			t.Fatalf("Smoothstep(0.4,0,x) not monotonically decreasing at x=%f: %f > %f", x, got, prev)
		}
		prev = got
	}
}

func TestFrac(t *testing.T) {
	tests := []struct{ in, expect float64 }{
		{0.0, 0.0},
		{0.25, 0.25},
		{1.75, 0.75},
		{42.5, 0.5},
		{-0.25, 0.75}, // frac = v - floor(v), so negatives wrap up
	}
	for _, tc := range tests {
		if got := Frac(tc.in); math.Abs(got-tc.expect) > epsilon {
			t.Errorf("Frac(%f) = %f, want %f", tc.in, got, tc.expect)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-0.5, 0, 1); got != 0 {
		t.Errorf("Clamp(-0.5,0,1) = %f, want 0", got)
	}
	if got := Clamp(1.5, 0, 1); got != 1 {
		t.Errorf("Clamp(1.5,0,1) = %f, want 1", got)
	}
	if got := Clamp(0.3, 0, 1); got != 0.3 {
		t.Errorf("Clamp(0.3,0,1) = %f, want 0.3", got)
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(2, 4, 0.5); math.Abs(got-3) > epsilon {
		t.Errorf("Lerp(2,4,0.5) = %f, want 3", got)
	}
	if got := Lerp(2, 4, 0); got != 2 {
		t.Errorf("Lerp(2,4,0) = %f, want 2", got)
	}
	if got := Lerp(2, 4, 1); got != 4 {
		t.Errorf("Lerp(2,4,1) = %f, want 4", got)
	}
}

func TestHash2(t *testing.T) {
	// Deterministic: same seed, same value
	a := Hash2(Vec2{0.3, 0.7})
	b := Hash2(Vec2{0.3, 0.7})
	if a != b {
		t.Errorf("Hash2 not deterministic: %f != %f", a, b)
	}

	// Always lands in [0, 1)
	for x := 0.0; x < 2.0; x += 0.13 {
		for y := 0.0; y < 2.0; y += 0.17 {
			if v := Hash2(Vec2{x, y}); v < 0 || v >= 1 {
				t.Errorf("Hash2(%f,%f) = %f, outside [0,1)", x, y, v)
			}
		}
	}

	// Nearby seeds decorrelate
	if Hash2(Vec2{0.5, 0.5}) == Hash2(Vec2{0.5005, 0.5}) {
		t.Errorf("Hash2 returned identical values for nearby seeds")
	}
}

func TestVec2Ops(t *testing.T) {
	v := Vec2{1, 2}.Add(Vec2{3, 4})
	if v != (Vec2{4, 6}) {
		t.Errorf("Add = %v, want (4,6)", v)
	}
	if s := (Vec2{1, 2}).Scale(2); s != (Vec2{2, 4}) {
		t.Errorf("Scale = %v, want (2,4)", s)
	}
	if d := (Vec2{1, 2}).Dot(Vec2{3, 4}); d != 11 {
		t.Errorf("Dot = %f, want 11", d)
	}
	if a := (Vec2{1, 2}).AddScalar(0.5); a != (Vec2{1.5, 2.5}) {
		t.Errorf("AddScalar = %v, want (1.5,2.5)", a)
	}
}

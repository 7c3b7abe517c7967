package fmath

import "math"

// Some small scalar helpers shared by the filter kernel. They mirror the
// semantics of the usual shading-language intrinsics, which are not quite
// the same as the obvious Go one-liners (see Smoothstep).

// Clamp pins v into [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo { return lo }
	if v > hi { return hi }
	return v
}

// Lerp blends from a to b as t goes 0 -> 1. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Frac returns the fractional part of v, i.e. v - floor(v).
func Frac(v float64) float64 {
	return v - math.Floor(v)
}

// Smoothstep is the standard cubic Hermite ramp. Unlike some library
// versions, it does NOT require edge0 < edge1: with edge0 > edge1 the
// ramp runs downhill (1 at x <= edge1's side, 0 at x >= edge0's side),
// which the grading stage relies on for its shadow weighting.
//
// Smoothstep(edge0, edge0, x) divides by zero; callers must not pass
// equal edges.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

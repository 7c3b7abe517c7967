package fmath

import (
	"fmt"
	"math"
)

// A Vec2 is a point or offset in normalized image coordinates, where
// (0,0) is the top-left of the frame and (1,1) the bottom-right.
type Vec2 [2]float64

func (v Vec2)X() float64 { return v[0] }
func (v Vec2)Y() float64 { return v[1] }

func (v Vec2)Add(w Vec2) Vec2       { return Vec2{v[0] + w[0], v[1] + w[1]} }
func (v Vec2)Scale(s float64) Vec2  { return Vec2{v[0] * s, v[1] * s} }

// AddScalar shifts both components, e.g. to fold a time term into a
// coordinate before hashing it.
func (v Vec2)AddScalar(s float64) Vec2 { return Vec2{v[0] + s, v[1] + s} }

func (v Vec2)Dot(w Vec2) float64 { return v[0]*w[0] + v[1]*w[1] }

func (v Vec2)String() string {
	return fmt.Sprintf("(%.6f, %.6f)", v[0], v[1])
}

// Hash2 is the classic one-liner shader hash: a deterministic map from
// a 2D coordinate to [0,1). It's what the grain stage uses, so the
// constants matter for reproducing the look.
func Hash2(v Vec2) float64 {
	return Frac(math.Sin(v.Dot(Vec2{12.9898, 78.233})) * 43758.5453123)
}

package filmlook

import (
	"math"

	"github.com/filmlook/filmlook/pkg/fcolor"
	"github.com/filmlook/filmlook/pkg/fmath"
)

// The per-pixel kernel. This is the whole of the look: shake the
// sampling coordinate, grade the base sample, scan the neighborhood
// once for the three glows, composite, grain, clamp. It's a pure
// function of (frame, coordinate, look, elapsed time) - no state
// survives a pixel, so pixels can be evaluated in any order on any
// number of goroutines.

// ShakeOffset computes the time-varying coordinate perturbation. Two
// incommensurate sinusoid pairs per axis keep the motion from reading
// as a repeating loop. The offset is bounded by intensity, and is
// exactly (0,0) when intensity is off.
func ShakeOffset(intensity, speed, elapsed float64) fmath.Vec2 {
	if intensity <= 0 {
		return fmath.Vec2{}
	}
	t := elapsed * speed
	x := (math.Sin(t*1.3+0.5) + math.Sin(t*2.7+1.2)) * 0.5
	y := (math.Cos(t*1.7-0.8) + math.Cos(t*3.1-0.3)) * 0.5
	return fmath.Vec2{x, y}.Scale(intensity)
}

// GradeColor applies the contrast curve and the two-way split-tone.
// Luma is taken from the post-contrast color, and both blends key off
// that same luma: highlights toward teal first, then shadows toward
// orange on top of the teal result. The orange ramp runs downhill
// (edge0 0.4 > edge1 0.0), fully on at luma 0 and off by luma 0.4.
func GradeColor(c fcolor.RGB, lk Look) fcolor.RGB {
	p := lk.Params
	graded := c.Pow(p.Contrast)
	luma := graded.Luma()
	graded = graded.Lerp(lk.Palette.Teal, fmath.Smoothstep(0.5, 1.0, luma)*p.TealAmount)
	graded = graded.Lerp(lk.Palette.Orange, fmath.Smoothstep(0.4, 0.0, luma)*p.OrangeAmount)
	return graded
}

// glowAccum is one effect's running weighted sum over the shared scan.
// It lives for a single pixel evaluation and is never persisted.
type glowAccum struct {
	sum   fcolor.RGB
	count float64
}

// mean normalizes to a weighted average. The count is zero when the
// effect is disabled or its radius admits no samples; the accumulator
// then stays at its zero value, with no division.
func (a glowAccum)mean() fcolor.RGB {
	if a.count > 0 {
		return a.sum.Scale(1 / a.count)
	}
	return a.sum
}

// accumulateGlows does the single shared pass over the square
// neighborhood. The scan bound is the max of the three radii; each
// effect has its own square cutoff and threshold inside the loop, so
// the frame is only resampled once rather than three times. A disabled
// effect (intensity <= 0) skips both the accumulation and its counter.
//
// A non-positive radius just means the cutoff never admits a sample for
// that effect: degenerate, not an error.
func accumulateGlows(f *Frame, shaken fmath.Vec2, lk Look) (bloom, halation, secondary fcolor.RGB) {
	p := lk.Params
	if !p.glowEnabled() {
		return
	}

	var bAcc, hAcc, sAcc glowAccum
	pixelSize := f.PixelSize()
	maxR := p.maxScanRadius()

	for x := -maxR; x <= maxR; x++ {
		for y := -maxR; y <= maxR; y++ {
			sampleUV := shaken.Add(fmath.Vec2{float64(x) * pixelSize[0], float64(y) * pixelSize[1]})
			sample := f.Sample(sampleUV).RGB
			luma := sample.Luma()

			if p.BloomIntensity > 0 && abs(x) <= p.BloomRadius && abs(y) <= p.BloomRadius {
				w := fmath.Smoothstep(p.BloomThreshold, 1.0, luma)
				bAcc.sum = bAcc.sum.Add(sample.Scale(w))
				bAcc.count++
			}

			if p.HalationIntensity > 0 && abs(x) <= p.HalationRadius && abs(y) <= p.HalationRadius {
				w := fmath.Smoothstep(p.HalationThreshold, 1.0, luma)
				tinted := sample.Mul(lk.Palette.HalationTint)
				hAcc.sum = hAcc.sum.Add(tinted.Scale(w))
				hAcc.count++
			}

			if p.SecondaryGlowIntensity > 0 && abs(x) <= p.SecondaryGlowRadius && abs(y) <= p.SecondaryGlowRadius {
				w := fmath.Smoothstep(p.SecondaryGlowThreshold, 1.0, luma)
				sAcc.sum = sAcc.sum.Add(sample.Mul(lk.Palette.SecondaryGlowTint).Scale(w))
				sAcc.count++
			}
		}
	}

	return bAcc.mean(), hAcc.mean(), sAcc.mean()
}

// EvaluatePixel runs the full kernel for one output pixel at normalized
// coordinate uv, returning the final clamped color. Alpha is carried
// over from the unshaken sample at the pixel center, untouched by any
// of the color stages.
func EvaluatePixel(f *Frame, uv fmath.Vec2, lk Look, elapsed float64) fcolor.RGBA {
	pre, alpha := evaluatePixel(f, uv, lk, elapsed)
	return fcolor.RGBA{RGB: pre.Clamped(), A: alpha}
}

// evaluatePixel is EvaluatePixel before the final clamp, for callers
// that want the raw composite (it can run well above 1.0 once bloom and
// the screen blends have stacked up).
func evaluatePixel(f *Frame, uv fmath.Vec2, lk Look, elapsed float64) (fcolor.RGB, float64) {
	p := lk.Params

	shaken := uv.Add(ShakeOffset(p.ShakeIntensity, p.ShakeSpeed, elapsed))

	base := f.Sample(shaken)
	final := GradeColor(base.RGB, lk)

	bloom, halation, secondary := accumulateGlows(f, shaken, lk)

	if p.BloomIntensity > 0 {
		final = final.Add(bloom.Scale(p.BloomIntensity))
	}
	if p.HalationIntensity > 0 {
		final = fcolor.Screen(final, halation.Scale(p.HalationIntensity))
	}
	if p.SecondaryGlowIntensity > 0 {
		final = fcolor.Screen(final, secondary.Scale(p.SecondaryGlowIntensity))
	}

	// Grain is unconditional - a zero intensity adds zero, no gate.
	// Folding frac(elapsed) into the seed cycles the pattern every time
	// unit instead of letting the hash domain drift unboundedly.
	seed := shaken.AddScalar(fmath.Frac(elapsed))
	grain := (fmath.Hash2(seed) - 0.5) * 2.0
	final = final.AddScalar(grain * p.GrainIntensity)

	return final, f.Sample(uv).A
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
